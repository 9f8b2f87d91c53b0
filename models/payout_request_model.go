package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PayoutStatusPending  = "pending"
	PayoutStatusApproved = "approved"
	PayoutStatusRejected = "rejected"
	PayoutStatusPaid     = "paid"
)

type PayoutRequest struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SchoolID      string    `gorm:"size:64;not null;index" json:"school_id"`
	Amount        float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	BankName      string    `gorm:"size:255;not null" json:"bank_name"`
	AccountHolder string    `gorm:"size:255;not null" json:"account_holder"`
	AccountNumber string    `gorm:"size:100;not null" json:"account_number"`
	IFSC          string    `gorm:"size:50;not null" json:"ifsc"`
	Status        string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
