package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	OrderStatusPaid      = "paid"
	OrderStatusPending   = "pending"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SchoolID    string         `gorm:"size:64;not null;index" json:"school_id"`
	OrderNumber string         `gorm:"size:100;not null" json:"order_number"`
	Amount      float64        `gorm:"type:numeric(10,2);not null" json:"amount"`
	Status      string         `gorm:"size:20;not null;default:'paid'" json:"status"`
	Items       pq.StringArray `gorm:"type:text[]" json:"items,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
