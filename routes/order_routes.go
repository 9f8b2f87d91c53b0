package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wekesa540/school_portal/handlers"
)

func OrderRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")
	api.Get("/orders", h.ListOrders)
	api.Post("/orders", h.CreateOrder)
	api.Get("/revenue", h.Revenue)
}
