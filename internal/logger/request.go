package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về entry log kèm ngữ cảnh của request hiện tại
func WithRequest(c fiber.Ctx) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields{
		"method":    c.Method(),
		"path":      c.Path(),
		"ip":        c.IP(),
		"requestId": c.GetRespHeader("X-Request-ID"),
	})
}
