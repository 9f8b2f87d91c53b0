package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wekesa540/school_portal/handlers"
)

func PublicRoutes(app *fiber.App, h *handlers.Handler) {
	app.Get("/", h.Root)
	app.Get("/health", h.Health)
	app.Get("/test", h.DatabaseTest)
}
