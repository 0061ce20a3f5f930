// Package router đăng ký các route thuộc domain chatbot.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	chatbothdl "rf_commerce/internal/api/chatbot/handler"
	"rf_commerce/internal/api/middleware"
	apirouter "rf_commerce/internal/api/router"
)

// Register đăng ký tất cả route chatbot lên v1.
// Hỏi đáp công khai, quản lý rule chỉ admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	chatRuleHandler, err := chatbothdl.NewChatRuleHandler()
	if err != nil {
		return fmt.Errorf("tạo ChatRuleHandler: %w", err)
	}

	// Widget chat trên website
	apirouter.RegisterRouteWithMiddleware(v1, "/chatbot", "POST", "/ask", nil, chatRuleHandler.HandleAsk)

	// Quản lý rule: chỉ admin
	r.RegisterCRUDRoutes(v1, "/chatbot/rules", chatRuleHandler, apirouter.ReadWriteConfig, "Chatbot")
	apirouter.RegisterRouteWithMiddleware(v1, "/chatbot/rules", "POST", "/invalidate-cache",
		[]fiber.Handler{middleware.AuthMiddleware("Chatbot.Update")}, chatRuleHandler.HandleInvalidateCache)

	return nil
}
