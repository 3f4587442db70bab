// Package authrouter - đăng ký route cho domain auth.
package authrouter

import (
	"github.com/gofiber/fiber/v3"

	authhdl "food_market/internal/api/auth/handler"
	"food_market/internal/api/middleware"
	"food_market/internal/api/router"
)

// RegisterRoutes đăng ký các route của domain auth:
// đăng ký/đăng nhập công khai, thông tin cá nhân và CRUD users cần token.
func RegisterRoutes(r *router.Router, api fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return err
	}

	authMiddleware := middleware.AuthMiddleware()

	// Các route công khai
	router.RegisterRouteWithMiddleware(api, "/auth", "POST", "/register", nil, userHandler.Register)
	router.RegisterRouteWithMiddleware(api, "/auth", "POST", "/login", nil, userHandler.Login)

	// Các route cần xác thực
	router.RegisterRouteWithMiddleware(api, "/auth", "GET", "/me", []fiber.Handler{authMiddleware}, userHandler.GetMyInfo)
	router.RegisterRouteWithMiddleware(api, "/auth", "PUT", "/change-password", []fiber.Handler{authMiddleware}, userHandler.ChangePassword)

	// CRUD users
	r.RegisterCRUDRoutes(api, "/users", userHandler, router.ReadWriteConfig)

	return nil
}
