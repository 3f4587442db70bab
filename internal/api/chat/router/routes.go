// Package chatrouter - đăng ký route cho domain chat.
package chatrouter

import (
	"github.com/gofiber/fiber/v3"

	chathdl "food_market/internal/api/chat/handler"
	"food_market/internal/api/middleware"
	"food_market/internal/api/router"
)

// RegisterRoutes đăng ký các route của domain chat, tất cả đều cần token.
func RegisterRoutes(r *router.Router, api fiber.Router) error {
	messageHandler, err := chathdl.NewChatMessageHandler()
	if err != nil {
		return err
	}
	notificationHandler, err := chathdl.NewNotificationHandler()
	if err != nil {
		return err
	}

	authChain := []fiber.Handler{middleware.AuthMiddleware()}

	r.RegisterCRUDRoutes(api, "/chat-messages", messageHandler, router.ReadWriteConfig)
	r.RegisterCRUDRoutes(api, "/notifications", notificationHandler, router.ReadWriteConfig)

	// Hội thoại giữa người dùng đã xác thực và một người dùng khác
	router.RegisterRouteWithMiddleware(api, "/chat-messages", "GET", "/getConversation/:seqId", authChain,
		messageHandler.GetConversation)

	// Đánh dấu thông báo đã đọc
	router.RegisterRouteWithMiddleware(api, "/notifications", "PUT", "/markRead/:id", authChain,
		notificationHandler.MarkRead)

	return nil
}
