package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wekesa540/school_portal/models"
	"github.com/wekesa540/school_portal/store"
)

type PayoutCreateRequest struct {
	SchoolID      string   `json:"school_id" validate:"required"`
	Amount        *float64 `json:"amount" validate:"required,gte=0"`
	BankName      string   `json:"bank_name" validate:"required"`
	AccountHolder string   `json:"account_holder" validate:"required"`
	AccountNumber string   `json:"account_number" validate:"required"`
	IFSC          string   `json:"ifsc" validate:"required"`
	Status        string   `json:"status" validate:"omitempty,oneof=pending approved rejected paid"`
}

func (h *Handler) ListPayouts(c *fiber.Ctx) error {
	schoolID := c.Query("school_id")
	if schoolID == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "school_id is required"})
	}

	payouts, err := h.store.PayoutsBySchool(schoolID)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(payouts)
}

func (h *Handler) CreatePayout(c *fiber.Ctx) error {
	var req PayoutCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := h.store.SchoolByID(req.SchoolID); err != nil {
		if errors.Is(err, store.ErrSchoolNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "School not found"})
		}
		return h.storeError(c, err)
	}

	// New requests always start out pending; transitions happen in an
	// external admin process.
	payout := models.PayoutRequest{
		SchoolID:      req.SchoolID,
		Amount:        *req.Amount,
		BankName:      req.BankName,
		AccountHolder: req.AccountHolder,
		AccountNumber: req.AccountNumber,
		IFSC:          req.IFSC,
		Status:        models.PayoutStatusPending,
	}
	if err := h.store.CreatePayoutRequest(&payout); err != nil {
		return h.storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"request_id": payout.ID.String(),
		"status":     payout.Status,
	})
}
