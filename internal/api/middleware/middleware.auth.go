package middleware

import (
	"strings"

	"rf_commerce/internal/common"
	"rf_commerce/internal/global"
	"rf_commerce/internal/logger"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// AdminClaims là claims trong JWT của quản trị viên.
// Token được cấp ngoài hệ thống (ops), backend chỉ validate chữ ký và scope.
type AdminClaims struct {
	// Scopes liệt kê các quyền được cấp, ví dụ "Catalog.Update".
	// Scope "*" cho phép tất cả.
	Scopes []string `json:"scopes"`
	jwt.StandardClaims
}

// hasScope kiểm tra claims có chứa scope yêu cầu không
func (c *AdminClaims) hasScope(required string) bool {
	for _, s := range c.Scopes {
		if s == "*" || s == required {
			return true
		}
	}
	return false
}

// AuthMiddleware middleware xác thực JWT cho Fiber.
// requirePermission rỗng nghĩa là chỉ cần token hợp lệ, không yêu cầu scope cụ thể.
func AuthMiddleware(requirePermission string) fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Parse và validate chữ ký token
		claims := &AdminClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, common.ErrTokenInvalid
			}
			return []byte(global.ServerConfig.JwtSecret), nil
		})
		if err != nil {
			ve, ok := err.(*jwt.ValidationError)
			if ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
				HandleErrorResponse(c, common.ErrTokenExpired)
				return nil
			}
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token validation failed")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}
		if !token.Valid {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Lưu thông tin admin vào context
		c.Locals("admin_subject", claims.Subject)

		// Nếu không yêu cầu permission cụ thể, cho phép truy cập ngay
		if requirePermission == "" {
			return c.Next()
		}

		// Kiểm tra scope cần thiết
		if !claims.hasScope(requirePermission) {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"subject":             claims.Subject,
				"required_permission": requirePermission,
				"path":                c.Path(),
			}).Warn("❌ [AUTH] Token does not carry required scope")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Không có quyền truy cập. Token thiếu scope: "+requirePermission,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		return c.Next()
	}
}
