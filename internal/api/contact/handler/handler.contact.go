// Package contacthdl - Handler cho domain contact.
package contacthdl

import (
	"fmt"

	basehdl "rf_commerce/internal/api/base/handler"
	contactdto "rf_commerce/internal/api/contact/dto"
	contactmodels "rf_commerce/internal/api/contact/models"
	contactsvc "rf_commerce/internal/api/contact/service"

	"github.com/gofiber/fiber/v3"
)

// ContactHandler xử lý form liên hệ công khai và tra cứu cho admin.
type ContactHandler struct {
	*basehdl.BaseHandler[contactmodels.Contact, contactdto.ContactSubmitInput, contactdto.ContactSubmitInput]
	ContactService *contactsvc.ContactService
}

// NewContactHandler tạo ContactHandler mới.
func NewContactHandler() (*ContactHandler, error) {
	contactService, err := contactsvc.NewContactService()
	if err != nil {
		return nil, fmt.Errorf("tạo ContactService: %w", err)
	}
	h := &ContactHandler{ContactService: contactService}
	h.BaseHandler = basehdl.NewBaseHandler[contactmodels.Contact, contactdto.ContactSubmitInput, contactdto.ContactSubmitInput](contactService)
	return h, nil
}

// HandleSubmit xử lý POST /contact (công khai).
func (h *ContactHandler) HandleSubmit(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(contactdto.ContactSubmitInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		contact, err := h.ContactService.Submit(c.Context(), input)
		h.HandleResponse(c, contact, err)
		return nil
	})
}
