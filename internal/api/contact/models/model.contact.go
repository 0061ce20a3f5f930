// Package models - model cho domain contact.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact là một lượt gửi form liên hệ từ website.
// Mỗi lượt được lưu lại và chuyển tiếp qua email tới hộp thư liên hệ.
type Contact struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của lượt liên hệ

	Name    string `json:"name" bson:"name"`                         // Tên người gửi
	Email   string `json:"email" bson:"email" index:"single:1"`      // Email người gửi
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`   // Số điện thoại
	Company string `json:"company,omitempty" bson:"company,omitempty"` // Công ty
	Message string `json:"message" bson:"message"`                   // Nội dung liên hệ

	RelayedAt  int64  `json:"relayedAt,omitempty" bson:"relayedAt,omitempty"`   // Thời điểm chuyển tiếp email thành công (ms)
	RelayError string `json:"relayError,omitempty" bson:"relayError,omitempty"` // Lỗi chuyển tiếp nếu có

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
