// Package chatbothdl - Handler cho domain chatbot.
package chatbothdl

import (
	"fmt"

	basehdl "rf_commerce/internal/api/base/handler"
	chatbotdto "rf_commerce/internal/api/chatbot/dto"
	chatbotmodels "rf_commerce/internal/api/chatbot/models"
	chatbotsvc "rf_commerce/internal/api/chatbot/service"

	"github.com/gofiber/fiber/v3"
)

// ChatRuleHandler xử lý CRUD rule và endpoint hỏi đáp công khai.
type ChatRuleHandler struct {
	*basehdl.BaseHandler[chatbotmodels.ChatRule, chatbotdto.ChatRuleCreateInput, chatbotdto.ChatRuleUpdateInput]
	ChatRuleService *chatbotsvc.ChatRuleService
}

// NewChatRuleHandler tạo ChatRuleHandler mới.
func NewChatRuleHandler() (*ChatRuleHandler, error) {
	chatRuleService, err := chatbotsvc.NewChatRuleService()
	if err != nil {
		return nil, fmt.Errorf("tạo ChatRuleService: %w", err)
	}
	h := &ChatRuleHandler{ChatRuleService: chatRuleService}
	h.BaseHandler = basehdl.NewBaseHandler[chatbotmodels.ChatRule, chatbotdto.ChatRuleCreateInput, chatbotdto.ChatRuleUpdateInput](chatRuleService)
	return h, nil
}

// HandleAsk xử lý POST /chatbot/ask (công khai, widget chat trên website).
func (h *ChatRuleHandler) HandleAsk(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(chatbotdto.AskInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		reply, matched, err := h.ChatRuleService.Answer(c.Context(), input.Message)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, chatbotdto.AskResponse{Reply: reply, Matched: matched}, nil)
		return nil
	})
}

// HandleInvalidateCache xử lý POST /chatbot/rules/invalidate-cache.
// Admin gọi sau khi sửa rule để thay đổi có hiệu lực ngay thay vì chờ cache hết hạn.
func (h *ChatRuleHandler) HandleInvalidateCache(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		h.ChatRuleService.InvalidateCache()
		h.HandleResponse(c, nil, nil)
		return nil
	})
}
