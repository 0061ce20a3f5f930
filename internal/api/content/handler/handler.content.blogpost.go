// Package contenthdl - Handler cho domain content.
package contenthdl

import (
	"fmt"
	"strconv"
	"strings"

	basehdl "rf_commerce/internal/api/base/handler"
	contentdto "rf_commerce/internal/api/content/dto"
	contentmodels "rf_commerce/internal/api/content/models"
	contentsvc "rf_commerce/internal/api/content/service"
	"rf_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
)

// BlogPostHandler xử lý CRUD bài viết.
type BlogPostHandler struct {
	*basehdl.BaseHandler[contentmodels.BlogPost, contentdto.BlogPostCreateInput, contentdto.BlogPostUpdateInput]
	BlogPostService *contentsvc.BlogPostService
}

// NewBlogPostHandler tạo BlogPostHandler mới.
func NewBlogPostHandler() (*BlogPostHandler, error) {
	blogPostService, err := contentsvc.NewBlogPostService()
	if err != nil {
		return nil, fmt.Errorf("tạo BlogPostService: %w", err)
	}
	h := &BlogPostHandler{BlogPostService: blogPostService}
	h.BaseHandler = basehdl.NewBaseHandler[contentmodels.BlogPost, contentdto.BlogPostCreateInput, contentdto.BlogPostUpdateInput](blogPostService)
	return h, nil
}

// HandleFindBySlug xử lý GET /blog-posts/by-slug/:slug.
func (h *BlogPostHandler) HandleFindBySlug(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		slug := strings.TrimSpace(c.Params("slug"))
		if slug == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu slug", common.StatusBadRequest, nil))
			return nil
		}
		post, err := h.BlogPostService.FindBySlug(c.Context(), slug)
		h.HandleResponse(c, post, err)
		return nil
	})
}

// HandleFindPublished xử lý GET /blog-posts/published?page=&limit=.
// Chỉ trả về bài đã xuất bản, mới nhất trước — frontend đọc công khai.
func (h *BlogPostHandler) HandleFindPublished(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page := int64(1)
		limit := int64(10)
		if s := c.Query("page"); s != "" {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
				page = n
			}
		}
		if s := c.Query("limit"); s != "" {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 && n <= 100 {
				limit = n
			}
		}
		result, err := h.BlogPostService.FindPublished(c.Context(), page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandlePublish xử lý POST /blog-posts/:id/publish.
func (h *BlogPostHandler) HandlePublish(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		post, err := h.BlogPostService.Publish(c.Context(), c.Params("id"))
		h.HandleResponse(c, post, err)
		return nil
	})
}
