package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wekesa540/school_portal/handlers"
)

func AuthRoutes(app *fiber.App, h *handlers.Handler) {
	auth := app.Group("/api/auth")
	auth.Post("/signup", h.Signup)
	auth.Post("/login", h.Login)
}
