package router

import (
	"entrust_service/internal/entrust/app"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes 注册托付相关的路由, reads are public and writes go through auth
func RegisterRoutes(r fiber.Router, entrustHandler *app.EntrustHandler, auth fiber.Handler) {
	entrust := r.Group("/entrust")

	// literal paths before /:eid
	entrust.Get("/pets", entrustHandler.ListPets)
	entrust.Get("/info", entrustHandler.Info)
	entrust.Get("/", entrustHandler.List)
	entrust.Get("/:eid", entrustHandler.Get)

	entrust.Post("/", auth, entrustHandler.Create)
	entrust.Put("/:eid", auth, entrustHandler.Update)
	entrust.Delete("/:eid", auth, entrustHandler.Delete)
}
