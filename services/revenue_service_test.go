package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wekesa540/school_portal/models"
	"github.com/wekesa540/school_portal/services"
	"github.com/wekesa540/school_portal/store"
)

func seedOrder(t *testing.T, st *store.MemoryStore, schoolID string, amount float64, status string) {
	t.Helper()
	err := st.CreateOrder(&models.Order{
		SchoolID:    schoolID,
		OrderNumber: "ORD-TEST",
		Amount:      amount,
		Status:      status,
	})
	assert.NoError(t, err)
}

func seedPayout(t *testing.T, st *store.MemoryStore, schoolID string, amount float64, status string) {
	t.Helper()
	err := st.CreatePayoutRequest(&models.PayoutRequest{
		SchoolID: schoolID,
		Amount:   amount,
		Status:   status,
	})
	assert.NoError(t, err)
}

func TestSchoolRevenue(t *testing.T) {
	st := store.NewMemory()

	seedOrder(t, st, "s1", 100, models.OrderStatusPaid)
	seedOrder(t, st, "s1", 50, models.OrderStatusPaid)
	seedOrder(t, st, "s1", 30, models.OrderStatusPending)
	seedPayout(t, st, "s1", 40, models.PayoutStatusApproved)
	seedPayout(t, st, "s1", 20, models.PayoutStatusPending)

	// Records of other schools never leak in.
	seedOrder(t, st, "s2", 999, models.OrderStatusPaid)

	summary, err := services.SchoolRevenue(st, "s1")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalOrders)
	assert.Equal(t, 150.0, summary.TotalRevenue)
	assert.Equal(t, 110.0, summary.PendingPayout)
}

func TestSchoolRevenueNoOrders(t *testing.T) {
	st := store.NewMemory()

	summary, err := services.SchoolRevenue(st, "s1")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), summary.TotalOrders)
	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Equal(t, 0.0, summary.PendingPayout)
}

func TestPendingPayoutNeverNegative(t *testing.T) {
	st := store.NewMemory()

	seedOrder(t, st, "s1", 100, models.OrderStatusPaid)
	seedPayout(t, st, "s1", 80, models.PayoutStatusApproved)
	seedPayout(t, st, "s1", 60, models.PayoutStatusPaid)

	summary, err := services.SchoolRevenue(st, "s1")
	assert.NoError(t, err)
	assert.Equal(t, 100.0, summary.TotalRevenue)
	assert.Equal(t, 0.0, summary.PendingPayout)
}

func TestCancelledAndRejectedExcluded(t *testing.T) {
	st := store.NewMemory()

	seedOrder(t, st, "s1", 100, models.OrderStatusPaid)
	seedOrder(t, st, "s1", 45, models.OrderStatusCancelled)
	seedPayout(t, st, "s1", 30, models.PayoutStatusRejected)

	summary, err := services.SchoolRevenue(st, "s1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), summary.TotalOrders)
	assert.Equal(t, 100.0, summary.TotalRevenue)
	assert.Equal(t, 100.0, summary.PendingPayout)
}

// A store fault must surface as an error, never as a zeroed summary.
func TestStoreFaultPropagates(t *testing.T) {
	summary, err := services.SchoolRevenue(store.Unavailable(), "s1")
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, store.ErrUnavailable)
}
