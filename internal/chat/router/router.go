package router

import (
	"entrust_service/internal/chat/app"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RegisterRoutes 注册聊天相关的路由, every chat route goes through auth
func RegisterRoutes(r fiber.Router, chatHandler *app.ChatHandler, chatWebsocket *app.ChatWebsocketHandler, auth fiber.Handler) {
	chat := r.Group("/chat", auth)

	chat.Post("/rooms", chatHandler.OpenRoom)
	chat.Get("/rooms", chatHandler.Rooms)
	chat.Get("/rooms/:roomId", chatHandler.RoomSummary)
	chat.Get("/rooms/:roomId/messages", chatHandler.ListMessages)
	chat.Post("/rooms/:roomId/messages", chatHandler.SendMessage)

	chat.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	chat.Get("/ws", websocket.New(chatWebsocket.HandleConnection))
}
