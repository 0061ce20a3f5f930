package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái bài viết
const (
	BlogPostStatusDraft     = "draft"     // Bản nháp, không hiển thị công khai
	BlogPostStatusPublished = "published" // Đã xuất bản
)

// BlogPost đại diện cho một bài viết tin tức / blog trên website.
// Body là HTML do admin soạn, frontend render trực tiếp.
type BlogPost struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của bài viết

	Title      string   `json:"title" bson:"title" index:"text"`                      // Tiêu đề bài viết
	Slug       string   `json:"slug" bson:"slug" index:"unique"`                      // Slug duy nhất, dùng trong URL
	Excerpt    string   `json:"excerpt,omitempty" bson:"excerpt,omitempty"`           // Tóm tắt ngắn hiển thị ở danh sách
	Body       string   `json:"body" bson:"body"`                                     // Nội dung HTML
	CoverImage string   `json:"coverImage,omitempty" bson:"coverImage,omitempty"`     // Ảnh đại diện
	Tags       []string `json:"tags,omitempty" bson:"tags,omitempty" index:"single:1"` // Nhãn phân loại

	Status      string `json:"status" bson:"status" index:"single:1"`                // Trạng thái: draft, published
	PublishedAt int64  `json:"publishedAt,omitempty" bson:"publishedAt,omitempty"`   // Thời điểm xuất bản (ms)

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
