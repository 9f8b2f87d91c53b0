package services

import (
	"math"

	"github.com/wekesa540/school_portal/store"
)

type RevenueSummary struct {
	TotalOrders   int64   `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	PendingPayout float64 `json:"pending_payout"`
}

// SchoolRevenue reconciles a school's paid orders against its disbursed
// payouts. The pending figure is derived on every call, not kept as a stored
// balance, and never goes below zero.
func SchoolRevenue(st store.Store, schoolID string) (*RevenueSummary, error) {
	count, revenue, err := st.PaidOrderTotals(schoolID)
	if err != nil {
		return nil, err
	}

	disbursed, err := st.DisbursedPayoutTotal(schoolID)
	if err != nil {
		return nil, err
	}

	return &RevenueSummary{
		TotalOrders:   count,
		TotalRevenue:  revenue,
		PendingPayout: math.Max(revenue-disbursed, 0),
	}, nil
}
