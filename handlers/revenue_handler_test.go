package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/wekesa540/school_portal/models"
	"github.com/wekesa540/school_portal/services"
	"github.com/wekesa540/school_portal/store"
)

func createOrder(t *testing.T, app *fiber.App, schoolID, number string, amount float64, status string) {
	t.Helper()

	body := map[string]any{
		"school_id":    schoolID,
		"order_number": number,
		"amount":       amount,
	}
	if status != "" {
		body["status"] = status
	}
	code, raw := request(t, app, "POST", "/api/orders", body)
	if code != fiber.StatusOK {
		t.Fatalf("create order returned %d: %s", code, raw)
	}
}

func TestRevenue(t *testing.T) {
	st := store.NewMemory()
	app := newTestApp(st)
	schoolID := signupSchool(t, app, "Greenfield Academy", "admin@greenfield.edu", "s3cret99")

	createOrder(t, app, schoolID, "ORD-001", 100, "paid")
	createOrder(t, app, schoolID, "ORD-002", 50, "")
	createOrder(t, app, schoolID, "ORD-003", 30, "pending")

	// Approval happens outside this system; seed it at the store.
	err := st.CreatePayoutRequest(&models.PayoutRequest{
		SchoolID: schoolID,
		Amount:   40,
		Status:   models.PayoutStatusApproved,
	})
	assert.NoError(t, err)

	code, raw := request(t, app, "POST", "/api/payouts", payoutBody(schoolID))
	assert.Equal(t, fiber.StatusOK, code)

	code, raw = request(t, app, "GET", "/api/revenue?school_id="+schoolID, nil)
	assert.Equal(t, fiber.StatusOK, code)

	var summary services.RevenueSummary
	decode(t, raw, &summary)
	assert.Equal(t, int64(2), summary.TotalOrders)
	assert.Equal(t, 150.0, summary.TotalRevenue)
	assert.Equal(t, 110.0, summary.PendingPayout)
}

func TestRevenueEmptySchool(t *testing.T) {
	app := newTestApp(store.NewMemory())

	code, raw := request(t, app, "GET", "/api/revenue?school_id=none", nil)
	assert.Equal(t, fiber.StatusOK, code)

	var summary services.RevenueSummary
	decode(t, raw, &summary)
	assert.Equal(t, int64(0), summary.TotalOrders)
	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Equal(t, 0.0, summary.PendingPayout)
}

func TestRevenueMissingSchoolID(t *testing.T) {
	app := newTestApp(store.NewMemory())

	code, _ := request(t, app, "GET", "/api/revenue", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
}

func TestRevenueWithoutStore(t *testing.T) {
	app := newTestApp(store.Unavailable())

	code, raw := request(t, app, "GET", "/api/revenue?school_id=s1", nil)
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Contains(t, string(raw), "Database not configured")
}
