package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/wekesa540/school_portal/store"
)

var validate = validator.New()

type Handler struct {
	store store.Store
}

func New(st store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) storeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, store.ErrUnavailable) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database not configured"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": truncateErr(err)})
}

// truncateErr caps driver error messages for display.
func truncateErr(err error) string {
	msg := err.Error()
	if len(msg) > 50 {
		msg = msg[:50]
	}
	return msg
}
