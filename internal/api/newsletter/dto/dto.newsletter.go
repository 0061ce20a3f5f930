// Package dto - DTO cho domain newsletter.
package dto

// SubscribeInput dữ liệu đăng ký nhận bản tin (endpoint công khai).
type SubscribeInput struct {
	Email string `json:"email" validate:"required,email"`
}

// UnsubscribeInput dữ liệu hủy đăng ký theo token trong email.
type UnsubscribeInput struct {
	Token string `json:"token" validate:"required"`
}

// CampaignCreateInput dữ liệu tạo chiến dịch mới.
type CampaignCreateInput struct {
	Subject  string `json:"subject" validate:"required,no_xss"`
	HTMLBody string `json:"htmlBody" validate:"required"`
}

// CampaignUpdateInput dữ liệu cập nhật chiến dịch (chỉ khi còn draft).
type CampaignUpdateInput struct {
	Subject  string `json:"subject,omitempty" validate:"omitempty,no_xss"`
	HTMLBody string `json:"htmlBody,omitempty"`
}
