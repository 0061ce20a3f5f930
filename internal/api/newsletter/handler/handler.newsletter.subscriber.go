// Package newsletterhdl - Handler cho domain newsletter.
package newsletterhdl

import (
	"fmt"

	basehdl "rf_commerce/internal/api/base/handler"
	newsletterdto "rf_commerce/internal/api/newsletter/dto"
	newslettermodels "rf_commerce/internal/api/newsletter/models"
	newslettersvc "rf_commerce/internal/api/newsletter/service"

	"github.com/gofiber/fiber/v3"
)

// SubscriberHandler xử lý đăng ký / hủy đăng ký nhận bản tin.
// Hai endpoint công khai (form footer website), còn lại CRUD cho admin.
type SubscriberHandler struct {
	*basehdl.BaseHandler[newslettermodels.Subscriber, newsletterdto.SubscribeInput, newsletterdto.SubscribeInput]
	SubscriberService *newslettersvc.SubscriberService
}

// NewSubscriberHandler tạo SubscriberHandler mới.
func NewSubscriberHandler() (*SubscriberHandler, error) {
	subscriberService, err := newslettersvc.NewSubscriberService()
	if err != nil {
		return nil, fmt.Errorf("tạo SubscriberService: %w", err)
	}
	h := &SubscriberHandler{SubscriberService: subscriberService}
	h.BaseHandler = basehdl.NewBaseHandler[newslettermodels.Subscriber, newsletterdto.SubscribeInput, newsletterdto.SubscribeInput](subscriberService)
	return h, nil
}

// HandleSubscribe xử lý POST /newsletter/subscribe (công khai).
func (h *SubscriberHandler) HandleSubscribe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(newsletterdto.SubscribeInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		subscriber, err := h.SubscriberService.Subscribe(c.Context(), input.Email)
		h.HandleResponse(c, subscriber, err)
		return nil
	})
}

// HandleUnsubscribe xử lý POST /newsletter/unsubscribe (công khai, token từ link email).
func (h *SubscriberHandler) HandleUnsubscribe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(newsletterdto.UnsubscribeInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		subscriber, err := h.SubscriberService.Unsubscribe(c.Context(), input.Token)
		h.HandleResponse(c, subscriber, err)
		return nil
	})
}
