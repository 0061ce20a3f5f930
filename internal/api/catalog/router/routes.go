// Package router đăng ký các route thuộc domain catalog: danh mục và sản phẩm.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "rf_commerce/internal/api/catalog/handler"
	"rf_commerce/internal/api/middleware"
	apirouter "rf_commerce/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
// Đọc công khai (frontend render trực tiếp), ghi yêu cầu scope Catalog.*.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("tạo CategoryHandler: %w", err)
	}
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("tạo ProductHandler: %w", err)
	}

	// Đọc danh mục: công khai
	r.RegisterCRUDRoutes(v1, "/categories", categoryHandler, apirouter.ReadOnlyConfig, "")

	// GET /categories/by-title?title=... — lookup chính xác theo tên danh mục
	apirouter.RegisterRouteWithMiddleware(v1, "/categories", "GET", "/by-title", nil, categoryHandler.HandleFindByTitle)

	// Ghi danh mục: chỉ admin
	writeConfig := apirouter.CRUDConfig{
		InsOne:  true,
		UpdOne:  true, UpdById: true,
		DelOne: true, DelById: true,
	}
	r.RegisterCRUDRoutes(v1, "/categories", categoryHandler, writeConfig, "Catalog")

	// Mutation sản phẩm: chỉ admin
	catalogWriteMiddleware := []fiber.Handler{middleware.AuthMiddleware("Catalog.Update")}
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "POST", "/", catalogWriteMiddleware, productHandler.HandleCreateProduct)
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "PUT", "/:id", catalogWriteMiddleware, productHandler.HandleUpdateProduct)
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "DELETE", "/:id", catalogWriteMiddleware, productHandler.HandleDeleteProduct)

	return nil
}
