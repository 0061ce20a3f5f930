// Package dto - DTO cho domain chatbot.
package dto

// ChatRuleCreateInput dữ liệu tạo rule mới.
type ChatRuleCreateInput struct {
	Keywords []string `json:"keywords" validate:"required,min=1,dive,required"`
	Reply    string   `json:"reply" validate:"required"`
	Priority int      `json:"priority,omitempty"`
	Enabled  bool     `json:"enabled"`
}

// ChatRuleUpdateInput dữ liệu cập nhật rule.
// Priority và Enabled là con trỏ để phân biệt "không gửi" với "gửi giá trị zero":
// {"enabled": false} phải tắt được rule, {"priority": 0} phải reset được độ ưu tiên.
type ChatRuleUpdateInput struct {
	Keywords []string `json:"keywords,omitempty" validate:"omitempty,min=1,dive,required"`
	Reply    string   `json:"reply,omitempty"`
	Priority *int     `json:"priority,omitempty"`
	Enabled  *bool    `json:"enabled,omitempty"`
}

// AskInput tin nhắn người dùng gửi cho chatbot (endpoint công khai).
type AskInput struct {
	Message string `json:"message" validate:"required,max=1000"`
}

// AskResponse câu trả lời của chatbot.
type AskResponse struct {
	Reply   string `json:"reply"`
	Matched bool   `json:"matched"` // false nghĩa là dùng câu trả lời mặc định
}
