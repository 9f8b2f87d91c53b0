package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wekesa540/school_portal/models"
	"github.com/wekesa540/school_portal/services"
)

type OrderCreateRequest struct {
	SchoolID    string   `json:"school_id" validate:"required"`
	OrderNumber string   `json:"order_number" validate:"required"`
	Amount      *float64 `json:"amount" validate:"required,gte=0"`
	Status      string   `json:"status" validate:"omitempty,oneof=paid pending cancelled"`
	Items       []string `json:"items,omitempty"`
}

func (h *Handler) ListOrders(c *fiber.Ctx) error {
	schoolID := c.Query("school_id")
	if schoolID == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "school_id is required"})
	}

	orders, err := h.store.OrdersBySchool(schoolID)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(orders)
}

// CreateOrder does not check that the referenced school exists; payout
// creation does. Kept as-is pending a product decision.
func (h *Handler) CreateOrder(c *fiber.Ctx) error {
	var req OrderCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	status := req.Status
	if status == "" {
		status = models.OrderStatusPaid
	}

	order := models.Order{
		SchoolID:    req.SchoolID,
		OrderNumber: req.OrderNumber,
		Amount:      *req.Amount,
		Status:      status,
		Items:       req.Items,
	}
	if err := h.store.CreateOrder(&order); err != nil {
		return h.storeError(c, err)
	}

	return c.JSON(fiber.Map{"id": order.ID.String()})
}

func (h *Handler) Revenue(c *fiber.Ctx) error {
	schoolID := c.Query("school_id")
	if schoolID == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "school_id is required"})
	}

	summary, err := services.SchoolRevenue(h.store, schoolID)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(summary)
}
