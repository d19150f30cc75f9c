package router

import (
	"entrust_service/internal/api/handlers"
	chatapp "entrust_service/internal/chat/app"
	chatrouter "entrust_service/internal/chat/router"
	entrustapp "entrust_service/internal/entrust/app"
	entrustrouter "entrust_service/internal/entrust/router"
	"entrust_service/pkg/config"
	"entrust_service/pkg/middlewares"
	"entrust_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/swagger"
)

// Handlers every HTTP handler the service mounts
type Handlers struct {
	Chat          *chatapp.ChatHandler
	ChatWebsocket *chatapp.ChatWebsocketHandler
	Entrust       *entrustapp.EntrustHandler
}

// RegisterRoutes 注册所有路由
// @title Entrust Service API
// @version 1.0
// @description API documentation for the pet entrust and chat service
// @host localhost:8080
// @BasePath /
func RegisterRoutes(app *fiber.App, issuer *token.Issuer, h Handlers) {
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/", handlers.ConnectCheck)
	app.Post("/debug", handlers.DebugLogFlag)

	if !config.IsProduction() {
		app.Use(pprof.New())
	}

	auth := middlewares.JWTMiddleware(issuer)

	if h.Entrust != nil {
		entrustrouter.RegisterRoutes(app, h.Entrust, auth)
	}
	if h.Chat != nil {
		chatrouter.RegisterRoutes(app, h.Chat, h.ChatWebsocket, auth)
	}
}
