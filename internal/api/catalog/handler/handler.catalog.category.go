// Package cataloghdl - Handler cho domain catalog.
package cataloghdl

import (
	"fmt"
	"strings"

	basehdl "rf_commerce/internal/api/base/handler"
	catalogdto "rf_commerce/internal/api/catalog/dto"
	catalogmodels "rf_commerce/internal/api/catalog/models"
	catalogsvc "rf_commerce/internal/api/catalog/service"
	"rf_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
)

// CategoryHandler xử lý CRUD danh mục sản phẩm.
// CRUD chuẩn đi qua BaseHandler; thêm lookup theo title cho frontend.
type CategoryHandler struct {
	*basehdl.BaseHandler[catalogmodels.CategoryDocument, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
	CategoryService *catalogsvc.CategoryService
}

// NewCategoryHandler tạo CategoryHandler mới.
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("tạo CategoryService: %w", err)
	}
	h := &CategoryHandler{CategoryService: categoryService}
	h.BaseHandler = basehdl.NewBaseHandler[catalogmodels.CategoryDocument, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](categoryService)
	return h, nil
}

// HandleFindByTitle xử lý GET /categories/by-title?title=...
// Title khớp chính xác, phân biệt hoa thường.
func (h *CategoryHandler) HandleFindByTitle(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		title := strings.TrimSpace(c.Query("title"))
		if title == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu tham số title",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		doc, err := h.CategoryService.FindByTitle(c.Context(), title)
		h.HandleResponse(c, doc, err)
		return nil
	})
}
