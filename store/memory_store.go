package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wekesa540/school_portal/models"
)

// MemoryStore is a slice-backed Store used by the tests in place of Postgres.
type MemoryStore struct {
	mu      sync.RWMutex
	schools []models.School
	orders  []models.Order
	payouts []models.PayoutRequest
}

func NewMemory() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) CreateSchool(school *models.School) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.schools {
		if m.schools[i].Email == school.Email {
			return ErrEmailTaken
		}
	}
	if school.ID == uuid.Nil {
		school.ID = uuid.New()
	}
	now := time.Now()
	school.CreatedAt = now
	school.UpdatedAt = now
	m.schools = append(m.schools, *school)
	return nil
}

func (m *MemoryStore) SchoolByEmail(email string) (*models.School, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.schools {
		if m.schools[i].Email == email {
			school := m.schools[i]
			return &school, nil
		}
	}
	return nil, ErrSchoolNotFound
}

func (m *MemoryStore) SchoolByID(id string) (*models.School, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrSchoolNotFound
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.schools {
		if m.schools[i].ID == uid {
			school := m.schools[i]
			return &school, nil
		}
	}
	return nil, ErrSchoolNotFound
}

func (m *MemoryStore) CreateOrder(order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now()
	m.orders = append(m.orders, *order)
	return nil
}

func (m *MemoryStore) OrdersBySchool(schoolID string) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	orders := make([]models.Order, 0)
	for i := range m.orders {
		if m.orders[i].SchoolID == schoolID {
			orders = append(orders, m.orders[i])
		}
	}
	return orders, nil
}

func (m *MemoryStore) PaidOrderTotals(schoolID string) (int64, float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	var total float64
	for i := range m.orders {
		if m.orders[i].SchoolID == schoolID && m.orders[i].Status == models.OrderStatusPaid {
			count++
			total += m.orders[i].Amount
		}
	}
	return count, total, nil
}

func (m *MemoryStore) CreatePayoutRequest(req *models.PayoutRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	req.CreatedAt = time.Now()
	m.payouts = append(m.payouts, *req)
	return nil
}

func (m *MemoryStore) PayoutsBySchool(schoolID string) ([]models.PayoutRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	payouts := make([]models.PayoutRequest, 0)
	for i := range m.payouts {
		if m.payouts[i].SchoolID == schoolID {
			payouts = append(payouts, m.payouts[i])
		}
	}
	return payouts, nil
}

func (m *MemoryStore) DisbursedPayoutTotal(schoolID string) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var total float64
	for i := range m.payouts {
		if m.payouts[i].SchoolID != schoolID {
			continue
		}
		switch m.payouts[i].Status {
		case models.PayoutStatusApproved, models.PayoutStatusPaid:
			total += m.payouts[i].Amount
		}
	}
	return total, nil
}

func (m *MemoryStore) Diagnostics() (*Diagnostics, error) {
	return &Diagnostics{
		DatabaseName: "in-memory",
		Connected:    true,
		Tables:       []string{"schools", "orders", "payout_requests"},
	}, nil
}
