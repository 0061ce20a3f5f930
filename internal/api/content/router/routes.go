// Package router đăng ký các route thuộc domain content: bài viết, sự kiện.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	contenthdl "rf_commerce/internal/api/content/handler"
	"rf_commerce/internal/api/middleware"
	apirouter "rf_commerce/internal/api/router"
)

// Register đăng ký tất cả route content lên v1.
// Đọc công khai, ghi yêu cầu scope Content.*.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	blogPostHandler, err := contenthdl.NewBlogPostHandler()
	if err != nil {
		return fmt.Errorf("tạo BlogPostHandler: %w", err)
	}
	eventHandler, err := contenthdl.NewEventHandler()
	if err != nil {
		return fmt.Errorf("tạo EventHandler: %w", err)
	}

	writeConfig := apirouter.CRUDConfig{
		InsOne: true,
		UpdOne: true, UpdById: true,
		DelOne: true, DelById: true,
	}

	// Bài viết: đọc công khai, ghi chỉ admin
	r.RegisterCRUDRoutes(v1, "/blog-posts", blogPostHandler, apirouter.ReadOnlyConfig, "")
	r.RegisterCRUDRoutes(v1, "/blog-posts", blogPostHandler, writeConfig, "Content")
	apirouter.RegisterRouteWithMiddleware(v1, "/blog-posts", "GET", "/by-slug/:slug", nil, blogPostHandler.HandleFindBySlug)
	apirouter.RegisterRouteWithMiddleware(v1, "/blog-posts", "GET", "/published", nil, blogPostHandler.HandleFindPublished)
	apirouter.RegisterRouteWithMiddleware(v1, "/blog-posts", "POST", "/:id/publish",
		[]fiber.Handler{middleware.AuthMiddleware("Content.Update")}, blogPostHandler.HandlePublish)

	// Sự kiện: đọc công khai, ghi chỉ admin
	r.RegisterCRUDRoutes(v1, "/events", eventHandler, apirouter.ReadOnlyConfig, "")
	r.RegisterCRUDRoutes(v1, "/events", eventHandler, writeConfig, "Content")
	apirouter.RegisterRouteWithMiddleware(v1, "/events", "GET", "/upcoming", nil, eventHandler.HandleFindUpcoming)

	return nil
}
