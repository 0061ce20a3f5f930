package cataloghdl

import (
	"fmt"

	basehdl "rf_commerce/internal/api/base/handler"
	catalogdto "rf_commerce/internal/api/catalog/dto"
	catalogmodels "rf_commerce/internal/api/catalog/models"
	catalogsvc "rf_commerce/internal/api/catalog/service"
	"rf_commerce/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// ProductHandler xử lý mutation sản phẩm lồng trong CategoryDocument.
// Không có CRUD chuẩn: sản phẩm không phải collection riêng, mọi thao tác
// đi qua ProductService để đọc-sửa-ghi cả document danh mục.
type ProductHandler struct {
	*basehdl.BaseHandler[catalogmodels.CategoryDocument, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	ProductService *catalogsvc.ProductService
}

// NewProductHandler tạo ProductHandler mới.
func NewProductHandler() (*ProductHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProductService: %w", err)
	}
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("tạo CategoryService: %w", err)
	}
	h := &ProductHandler{ProductService: productService}
	h.BaseHandler = basehdl.NewBaseHandler[catalogmodels.CategoryDocument, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](categoryService)
	return h, nil
}

// HandleCreateProduct xử lý POST /products.
func (h *ProductHandler) HandleCreateProduct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(catalogdto.ProductCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		record, err := h.ProductService.CreateProduct(c.Context(), input.CategoryTitle, input.SubcategoryName, catalogsvc.ProductFields{
			Name:           input.Name,
			Image:          input.Image,
			Overview:       input.Overview,
			TableSpecs:     input.TableSpecs,
			Specifications: input.Specifications,
			Library:        input.Library,
		})
		if err == nil {
			logger.LogCRUD("create", "product", record.ID, c, nil)
		}
		h.HandleResponse(c, record, err)
		return nil
	})
}

// HandleUpdateProduct xử lý PUT /products/:id.
// Chỉ field có trong body được áp dụng, không đổi danh mục/subcategory.
func (h *ProductHandler) HandleUpdateProduct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		productID := c.Params("id")

		input := new(catalogdto.ProductUpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		record, err := h.ProductService.UpdateProduct(c.Context(), productID, catalogsvc.ProductPatch{
			Name:           input.Name,
			Image:          input.Image,
			Overview:       input.Overview,
			TableSpecs:     input.TableSpecs,
			Specifications: input.Specifications,
			Library:        input.Library,
		})
		if err == nil {
			logger.LogCRUD("update", "product", record.ID, c, nil)
		}
		h.HandleResponse(c, record, err)
		return nil
	})
}

// HandleDeleteProduct xử lý DELETE /products/:id.
func (h *ProductHandler) HandleDeleteProduct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		productID := c.Params("id")

		err := h.ProductService.DeleteProduct(c.Context(), productID)
		if err == nil {
			logger.LogCRUD("delete", "product", productID, c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}
