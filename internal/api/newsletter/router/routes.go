// Package router đăng ký các route thuộc domain newsletter: subscriber, campaign.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"rf_commerce/internal/api/middleware"
	newsletterhdl "rf_commerce/internal/api/newsletter/handler"
	apirouter "rf_commerce/internal/api/router"
)

// Register đăng ký tất cả route newsletter lên v1.
// Subscribe/unsubscribe công khai, quản lý subscriber và campaign chỉ admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	subscriberHandler, err := newsletterhdl.NewSubscriberHandler()
	if err != nil {
		return fmt.Errorf("tạo SubscriberHandler: %w", err)
	}
	campaignHandler, err := newsletterhdl.NewCampaignHandler()
	if err != nil {
		return fmt.Errorf("tạo CampaignHandler: %w", err)
	}

	// Endpoint công khai cho form đăng ký trên website
	apirouter.RegisterRouteWithMiddleware(v1, "/newsletter", "POST", "/subscribe", nil, subscriberHandler.HandleSubscribe)
	apirouter.RegisterRouteWithMiddleware(v1, "/newsletter", "POST", "/unsubscribe", nil, subscriberHandler.HandleUnsubscribe)

	// Quản lý subscriber: chỉ admin (không cho insert trực tiếp, phải qua subscribe)
	subscriberConfig := apirouter.CRUDConfig{
		Find: true, FindOne: true, FindById: true, Paginate: true,
		DelOne: true, DelById: true,
		Count: true, Exists: true,
	}
	r.RegisterCRUDRoutes(v1, "/newsletter/subscribers", subscriberHandler, subscriberConfig, "Newsletter")

	// Quản lý campaign: chỉ admin
	r.RegisterCRUDRoutes(v1, "/newsletter/campaigns", campaignHandler, apirouter.ReadWriteConfig, "Newsletter")
	apirouter.RegisterRouteWithMiddleware(v1, "/newsletter/campaigns", "POST", "/:id/send",
		[]fiber.Handler{middleware.AuthMiddleware("Newsletter.Send")}, campaignHandler.HandleSendCampaign)

	return nil
}
