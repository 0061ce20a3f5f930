package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event đại diện cho một sự kiện (triển lãm, hội thảo) hiển thị trên website.
// StartAt/EndAt là mốc thời gian ms; sự kiện sắp diễn ra xác định theo StartAt.
type Event struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của sự kiện

	Title       string `json:"title" bson:"title" index:"text"`              // Tên sự kiện
	Description string `json:"description,omitempty" bson:"description,omitempty"` // Mô tả HTML
	Location    string `json:"location,omitempty" bson:"location,omitempty"` // Địa điểm tổ chức
	Image       string `json:"image,omitempty" bson:"image,omitempty"`       // Ảnh banner

	StartAt int64 `json:"startAt" bson:"startAt" index:"single:1"` // Thời gian bắt đầu (ms)
	EndAt   int64 `json:"endAt,omitempty" bson:"endAt,omitempty"`  // Thời gian kết thúc (ms)

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
