package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"food_market/internal/common"
	"food_market/internal/global"
)

// SystemHandler xử lý các route liên quan đến tình trạng hệ thống
type SystemHandler struct{}

// NewSystemHandler tạo một instance mới của SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HandleHealth kiểm tra trạng thái của API và kết nối database
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	services := fiber.Map{"api": "ok"}
	healthData := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services":  services,
	}

	if global.MongoDB_Session != nil {
		if err := global.MongoDB_Session.Ping(ctx, nil); err != nil {
			healthData["status"] = "degraded"
			services["database"] = "error"
			return c.Status(common.StatusServiceUnavailable).JSON(fiber.Map{
				"success":   false,
				"message":   "Hệ thống đang gặp sự cố",
				"data":      healthData,
				"timestamp": time.Now().Format(time.RFC3339),
			})
		}
		services["database"] = "ok"
	} else {
		healthData["status"] = "degraded"
		services["database"] = "not_initialized"
	}

	return c.Status(common.StatusOK).JSON(fiber.Map{
		"success":   true,
		"message":   common.MsgSuccess,
		"data":      healthData,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
