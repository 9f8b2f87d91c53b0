package store

import "github.com/wekesa540/school_portal/models"

// Unavailable returns a Store for processes whose database connection was
// never established. Data calls fail with ErrUnavailable; the server keeps
// serving so the fault surfaces per request instead of crashing startup.
func Unavailable() Store {
	return unavailableStore{}
}

type unavailableStore struct{}

func (unavailableStore) CreateSchool(*models.School) error { return ErrUnavailable }

func (unavailableStore) SchoolByEmail(string) (*models.School, error) {
	return nil, ErrUnavailable
}

func (unavailableStore) SchoolByID(string) (*models.School, error) {
	return nil, ErrUnavailable
}

func (unavailableStore) CreateOrder(*models.Order) error { return ErrUnavailable }

func (unavailableStore) OrdersBySchool(string) ([]models.Order, error) {
	return nil, ErrUnavailable
}

func (unavailableStore) PaidOrderTotals(string) (int64, float64, error) {
	return 0, 0, ErrUnavailable
}

func (unavailableStore) CreatePayoutRequest(*models.PayoutRequest) error {
	return ErrUnavailable
}

func (unavailableStore) PayoutsBySchool(string) ([]models.PayoutRequest, error) {
	return nil, ErrUnavailable
}

func (unavailableStore) DisbursedPayoutTotal(string) (float64, error) {
	return 0, ErrUnavailable
}

func (unavailableStore) Diagnostics() (*Diagnostics, error) {
	return &Diagnostics{Connected: false}, nil
}
