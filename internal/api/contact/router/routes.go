// Package router đăng ký các route thuộc domain contact.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	contacthdl "rf_commerce/internal/api/contact/handler"
	apirouter "rf_commerce/internal/api/router"
)

// Register đăng ký tất cả route contact lên v1.
// Gửi form công khai, tra cứu lượt liên hệ chỉ admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	contactHandler, err := contacthdl.NewContactHandler()
	if err != nil {
		return fmt.Errorf("tạo ContactHandler: %w", err)
	}

	// Form liên hệ trên website
	apirouter.RegisterRouteWithMiddleware(v1, "/contact", "POST", "/", nil, contactHandler.HandleSubmit)

	// Tra cứu lượt liên hệ: chỉ admin, không cho insert/update trực tiếp
	adminConfig := apirouter.CRUDConfig{
		Find: true, FindOne: true, FindById: true, Paginate: true,
		DelOne: true, DelById: true,
		Count: true, Exists: true,
	}
	r.RegisterCRUDRoutes(v1, "/contact/messages", contactHandler, adminConfig, "Contact")

	return nil
}
