package store

import (
	"errors"

	"github.com/wekesa540/school_portal/models"
)

var (
	ErrSchoolNotFound = errors.New("school not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrUnavailable    = errors.New("database not configured")
)

// Diagnostics describes the state of the backing store for GET /test.
type Diagnostics struct {
	DatabaseName string
	Connected    bool
	Tables       []string
}

// Store is the persistence capability handed to the HTTP handlers. School ids
// are referenced everywhere in their canonical lowercase UUID string form.
type Store interface {
	CreateSchool(school *models.School) error
	SchoolByEmail(email string) (*models.School, error)
	SchoolByID(id string) (*models.School, error)

	CreateOrder(order *models.Order) error
	OrdersBySchool(schoolID string) ([]models.Order, error)
	// PaidOrderTotals returns the count of the school's paid orders and the
	// sum of their amounts.
	PaidOrderTotals(schoolID string) (int64, float64, error)

	CreatePayoutRequest(req *models.PayoutRequest) error
	PayoutsBySchool(schoolID string) ([]models.PayoutRequest, error)
	// DisbursedPayoutTotal sums payout amounts already approved or paid out.
	DisbursedPayoutTotal(schoolID string) (float64, error)

	Diagnostics() (*Diagnostics, error)
}
