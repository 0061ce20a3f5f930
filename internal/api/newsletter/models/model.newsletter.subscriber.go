// Package models - model cho domain newsletter.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái người đăng ký nhận tin
const (
	SubscriberStatusSubscribed   = "subscribed"   // Đang nhận tin
	SubscriberStatusUnsubscribed = "unsubscribed" // Đã hủy nhận tin
)

// Subscriber đại diện cho một địa chỉ email đăng ký nhận bản tin.
// UnsubscribeToken gán lúc đăng ký, nhúng vào link hủy trong mỗi email.
type Subscriber struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của subscriber

	Email            string `json:"email" bson:"email" index:"unique"`                     // Địa chỉ email, duy nhất
	UnsubscribeToken string `json:"-" bson:"unsubscribeToken" index:"single:1"`            // Token hủy đăng ký, không trả ra API
	Status           string `json:"status" bson:"status" index:"single:1"`                 // Trạng thái: subscribed, unsubscribed

	SubscribedAt   int64 `json:"subscribedAt,omitempty" bson:"subscribedAt,omitempty"`     // Thời điểm đăng ký (ms)
	UnsubscribedAt int64 `json:"unsubscribedAt,omitempty" bson:"unsubscribedAt,omitempty"` // Thời điểm hủy (ms)

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
