package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wekesa540/school_portal/handlers"
)

func PayoutRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")
	api.Get("/payouts", h.ListPayouts)
	api.Post("/payouts", h.CreatePayout)
}
