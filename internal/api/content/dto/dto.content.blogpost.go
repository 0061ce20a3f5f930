// Package dto - DTO cho domain content (bài viết, sự kiện).
package dto

// BlogPostCreateInput dữ liệu tạo bài viết mới.
type BlogPostCreateInput struct {
	Title      string   `json:"title" validate:"required,no_xss"`
	Slug       string   `json:"slug" validate:"required,slug"`
	Excerpt    string   `json:"excerpt,omitempty"`
	Body       string   `json:"body" validate:"required"`
	CoverImage string   `json:"coverImage,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Status     string   `json:"status,omitempty" validate:"omitempty,oneof=draft published"`
}

// BlogPostUpdateInput dữ liệu cập nhật bài viết.
type BlogPostUpdateInput struct {
	Title      string   `json:"title,omitempty" validate:"omitempty,no_xss"`
	Slug       string   `json:"slug,omitempty" validate:"omitempty,slug"`
	Excerpt    string   `json:"excerpt,omitempty"`
	Body       string   `json:"body,omitempty"`
	CoverImage string   `json:"coverImage,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Status     string   `json:"status,omitempty" validate:"omitempty,oneof=draft published"`
}
