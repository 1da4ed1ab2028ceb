package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var QuoteStatuses = []string{"draft", "sent", "accepted", "rejected"}

// Quote is a pre-invoice proposal for a customer. An accepted quote may be
// converted to an invoice, which records the quote's id; the quote cannot be
// deleted while such an invoice exists.
type Quote struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`

	Title       string  `gorm:"not null" json:"title"`
	Description string  `json:"description"`
	Total       float64 `gorm:"type:decimal(10,2);not null" json:"total"`
	Status      string  `gorm:"default:'draft'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
