package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryDocument là aggregate document cho một danh mục sản phẩm cấp cao nhất
// (ví dụ "RF and Microwave"). Toàn bộ subcategory và sản phẩm nằm lồng trong
// một document duy nhất; mọi thao tác sản phẩm đọc-sửa-ghi cả document.
type CategoryDocument struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của danh mục

	Title       string `json:"title" bson:"title" index:"unique"`                       // Tên danh mục, duy nhất toàn hệ thống
	HeaderImage string `json:"headerImage,omitempty" bson:"headerImage,omitempty"`      // Ảnh header (tùy chọn)

	// Danh sách subcategory theo thứ tự thêm vào
	Subcategories []Subcategory `json:"subcategories" bson:"subcategories"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// Subcategory là nhóm sản phẩm lồng trong CategoryDocument,
// không truy cập độc lập được. Lookup theo name khớp chính xác.
type Subcategory struct {
	Name     string          `json:"name" bson:"name"`
	Products []ProductRecord `json:"products" bson:"products"`
}

// ProductRecord là một sản phẩm lồng trong Subcategory.
// ID là khóa duy nhất toàn catalog, gán lúc tạo và không bao giờ đổi.
// Name duy nhất trong subcategory (so sánh không phân biệt hoa thường) lúc tạo.
type ProductRecord struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Image    string `json:"image,omitempty" bson:"image,omitempty"`
	Overview string `json:"overview,omitempty" bson:"overview,omitempty"`

	// Các payload hiển thị, mutation logic không ràng buộc gì về nội dung
	TableSpecs     map[string]interface{}   `json:"tableSpecs" bson:"tableSpecs"`
	Specifications map[string]interface{}   `json:"specifications" bson:"specifications"`
	Library        []map[string]interface{} `json:"library" bson:"library"`
}
