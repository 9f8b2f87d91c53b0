package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wekesa540/school_portal/models"
	"github.com/wekesa540/school_portal/store"
	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	SchoolID string `json:"school_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

func (h *Handler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	// Email lookup is a case-sensitive exact match.
	if _, err := h.store.SchoolByEmail(req.Email); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already registered"})
	} else if !errors.Is(err, store.ErrSchoolNotFound) {
		return h.storeError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	school := models.School{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Address:  req.Address,
		Phone:    req.Phone,
	}
	if err := h.store.CreateSchool(&school); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already registered"})
		}
		return h.storeError(c, err)
	}

	return c.JSON(AuthResponse{
		SchoolID: school.ID.String(),
		Name:     school.Name,
		Email:    school.Email,
	})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	school, err := h.store.SchoolByEmail(req.Email)
	if err != nil {
		if errors.Is(err, store.ErrSchoolNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return h.storeError(c, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(school.Password), []byte(req.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	return c.JSON(AuthResponse{
		SchoolID: school.ID.String(),
		Name:     school.Name,
		Email:    school.Email,
	})
}
