package models

import (
	"rf_commerce/internal/mailer"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái chiến dịch
const (
	CampaignStatusDraft   = "draft"   // Soạn xong, chưa gửi
	CampaignStatusSending = "sending" // Đang gửi
	CampaignStatusSent    = "sent"    // Đã gửi xong
)

// Campaign đại diện cho một chiến dịch bản tin gửi tới toàn bộ subscriber
// đang hoạt động. Kết quả gửi từng người nhận được lưu lại trong Results.
type Campaign struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của chiến dịch

	Subject  string `json:"subject" bson:"subject"`   // Tiêu đề email
	HTMLBody string `json:"htmlBody" bson:"htmlBody"` // Nội dung HTML

	Status string `json:"status" bson:"status" index:"single:1"` // Trạng thái: draft, sending, sent

	// Kết quả gửi, ghi sau khi chiến dịch hoàn tất
	Results     []mailer.SendResult `json:"results,omitempty" bson:"results,omitempty"`
	SentCount   int                 `json:"sentCount" bson:"sentCount"`     // Số email gửi thành công
	FailedCount int                 `json:"failedCount" bson:"failedCount"` // Số email gửi thất bại
	SentAt      int64               `json:"sentAt,omitempty" bson:"sentAt,omitempty"` // Thời điểm gửi xong (ms)

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
