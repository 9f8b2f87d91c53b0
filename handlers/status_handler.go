package handlers

import (
	"github.com/gofiber/fiber/v2"
	config "github.com/wekesa540/school_portal/configs"
)

func (h *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "School Portal Backend Running"})
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// DatabaseTest reports store connectivity for quick deployment checks.
func (h *Handler) DatabaseTest(c *fiber.Ctx) error {
	resp := fiber.Map{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	diag, err := h.store.Diagnostics()
	if err != nil {
		resp["database"] = "⚠️ Connected but Error: " + truncateErr(err)
		return c.JSON(resp)
	}
	if !diag.Connected {
		return c.JSON(resp)
	}

	resp["database"] = "✅ Connected & Working"
	if config.Config("DATABASE_URL") != "" {
		resp["database_url"] = "✅ Set"
	} else {
		resp["database_url"] = "❌ Not Set"
	}
	resp["database_name"] = diag.DatabaseName
	resp["connection_status"] = "Connected"

	tables := diag.Tables
	if len(tables) > 10 {
		tables = tables[:10]
	}
	resp["collections"] = tables

	return c.JSON(resp)
}
