// Package models - model cho domain chatbot.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultReply là câu trả lời khi không rule nào khớp tin nhắn
const DefaultReply = "Cảm ơn bạn đã liên hệ! Vui lòng để lại thông tin qua form liên hệ, đội ngũ của chúng tôi sẽ phản hồi sớm nhất."

// ChatRule là một luật trả lời của chatbot: tin nhắn chứa một trong các
// keyword (không phân biệt hoa thường) thì trả về Reply. Nhiều rule cùng
// khớp thì rule có Priority cao hơn thắng.
type ChatRule struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của rule

	Keywords []string `json:"keywords" bson:"keywords"`               // Từ khóa kích hoạt
	Reply    string   `json:"reply" bson:"reply"`                     // Câu trả lời
	Priority int      `json:"priority" bson:"priority" index:"single:-1"` // Độ ưu tiên, lớn hơn thắng
	Enabled  bool     `json:"enabled" bson:"enabled" index:"single:1"`    // Rule tắt không tham gia match

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
