package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/wekesa540/school_portal/models"
	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) CreateSchool(school *models.School) error {
	if school.ID == uuid.Nil {
		school.ID = uuid.New()
	}
	if err := s.db.Create(school).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (s *gormStore) SchoolByEmail(email string) (*models.School, error) {
	var school models.School
	err := s.db.Where("email = ?", email).First(&school).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSchoolNotFound
	}
	if err != nil {
		return nil, err
	}
	return &school, nil
}

func (s *gormStore) SchoolByID(id string) (*models.School, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrSchoolNotFound
	}

	var school models.School
	err = s.db.Where("id = ?", uid.String()).First(&school).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSchoolNotFound
	}
	if err != nil {
		return nil, err
	}
	return &school, nil
}

func (s *gormStore) CreateOrder(order *models.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	return s.db.Create(order).Error
}

func (s *gormStore) OrdersBySchool(schoolID string) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := s.db.Where("school_id = ?", schoolID).Order("created_at").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *gormStore) PaidOrderTotals(schoolID string) (int64, float64, error) {
	var row struct {
		Count int64
		Total float64
	}
	err := s.db.Model(&models.Order{}).
		Where("school_id = ? AND status = ?", schoolID, models.OrderStatusPaid).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Count, row.Total, nil
}

func (s *gormStore) CreatePayoutRequest(req *models.PayoutRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	return s.db.Create(req).Error
}

func (s *gormStore) PayoutsBySchool(schoolID string) ([]models.PayoutRequest, error) {
	payouts := make([]models.PayoutRequest, 0)
	err := s.db.Where("school_id = ?", schoolID).Order("created_at").Find(&payouts).Error
	if err != nil {
		return nil, err
	}
	return payouts, nil
}

func (s *gormStore) DisbursedPayoutTotal(schoolID string) (float64, error) {
	var total float64
	err := s.db.Model(&models.PayoutRequest{}).
		Where("school_id = ? AND status IN ?", schoolID,
			[]string{models.PayoutStatusApproved, models.PayoutStatusPaid}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *gormStore) Diagnostics() (*Diagnostics, error) {
	tables, err := s.db.Migrator().GetTables()
	if err != nil {
		return nil, err
	}

	var name string
	if err := s.db.Raw("SELECT current_database()").Scan(&name).Error; err != nil {
		return nil, err
	}

	return &Diagnostics{
		DatabaseName: name,
		Connected:    true,
		Tables:       tables,
	}, nil
}
