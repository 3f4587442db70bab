// Package catalogrouter - đăng ký route cho domain catalog.
package catalogrouter

import (
	"github.com/gofiber/fiber/v3"

	cataloghdl "food_market/internal/api/catalog/handler"
	"food_market/internal/api/middleware"
	"food_market/internal/api/router"
)

// RegisterRoutes đăng ký các route của domain catalog:
// loại hình kinh doanh đọc công khai, các resource còn lại cần token.
func RegisterRoutes(r *router.Router, api fiber.Router) error {
	businessTypeHandler, err := cataloghdl.NewBusinessTypeHandler()
	if err != nil {
		return err
	}
	businessBranchHandler, err := cataloghdl.NewBusinessBranchHandler()
	if err != nil {
		return err
	}
	planHandler, err := cataloghdl.NewPlanHandler()
	if err != nil {
		return err
	}
	subscriptionHandler, err := cataloghdl.NewSubscriptionHandler()
	if err != nil {
		return err
	}
	giftCardHandler, err := cataloghdl.NewGiftCardHandler()
	if err != nil {
		return err
	}

	authMiddleware := middleware.AuthMiddleware()
	authChain := []fiber.Handler{authMiddleware}

	r.RegisterCRUDRoutes(api, "/business-types", businessTypeHandler, router.PublicReadConfig)
	r.RegisterCRUDRoutes(api, "/business-branches", businessBranchHandler, router.ReadWriteConfig)
	r.RegisterCRUDRoutes(api, "/plans", planHandler, router.PublicReadConfig)
	r.RegisterCRUDRoutes(api, "/subscriptions", subscriptionHandler, router.ReadWriteConfig)
	r.RegisterCRUDRoutes(api, "/gift-cards", giftCardHandler, router.ReadWriteConfig)

	// Danh sách theo bản ghi cha
	router.RegisterRouteWithMiddleware(api, "/business-branches", "GET", "/getByBusinessTypeId/:id", authChain,
		businessBranchHandler.FindByParentFactory("businessTypeId"))
	router.RegisterRouteWithMiddleware(api, "/subscriptions", "GET", "/getByBusinessBranchId/:id", authChain,
		subscriptionHandler.FindByParentFactory("businessBranchId"))
	router.RegisterRouteWithMiddleware(api, "/gift-cards", "GET", "/getByBusinessBranchId/:id", authChain,
		giftCardHandler.FindByParentFactory("businessBranchId"))

	return nil
}
