// Package dto - DTO cho domain contact.
package dto

// ContactSubmitInput dữ liệu form liên hệ (endpoint công khai).
type ContactSubmitInput struct {
	Name    string `json:"name" validate:"required,no_xss,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Company string `json:"company,omitempty" validate:"omitempty,no_xss,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}
