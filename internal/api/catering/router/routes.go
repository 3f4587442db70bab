// Package cateringrouter - đăng ký route cho domain catering.
package cateringrouter

import (
	"github.com/gofiber/fiber/v3"

	cateringhdl "food_market/internal/api/catering/handler"
	"food_market/internal/api/middleware"
	"food_market/internal/api/router"
)

// RegisterRoutes đăng ký các route của domain catering, tất cả đều cần token.
func RegisterRoutes(r *router.Router, api fiber.Router) error {
	eventHandler, err := cateringhdl.NewCateringEventHandler()
	if err != nil {
		return err
	}
	meetingHandler, err := cateringhdl.NewScheduleMeetingHandler()
	if err != nil {
		return err
	}
	reviewHandler, err := cateringhdl.NewReviewRequestHandler()
	if err != nil {
		return err
	}

	authChain := []fiber.Handler{middleware.AuthMiddleware()}

	r.RegisterCRUDRoutes(api, "/catering-events", eventHandler, router.ReadWriteConfig)
	r.RegisterCRUDRoutes(api, "/schedule-meetings", meetingHandler, router.ReadWriteConfig)
	r.RegisterCRUDRoutes(api, "/review-requests", reviewHandler, router.ReadWriteConfig)

	// Danh sách theo bản ghi cha
	router.RegisterRouteWithMiddleware(api, "/catering-events", "GET", "/getByBusinessBranchId/:id", authChain,
		eventHandler.FindByParentFactory("businessBranchId"))
	router.RegisterRouteWithMiddleware(api, "/schedule-meetings", "GET", "/getByCateringEventId/:id", authChain,
		meetingHandler.FindByParentFactory("cateringEventId"))
	router.RegisterRouteWithMiddleware(api, "/review-requests", "GET", "/getByBusinessBranchId/:id", authChain,
		reviewHandler.FindByParentFactory("businessBranchId"))

	return nil
}
