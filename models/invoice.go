package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice statuses. Transitions are free-form: any status may move to any
// other via an explicit status update.
var InvoiceStatuses = []string{"draft", "sent", "paid", "cancelled"}

const DefaultTaxRate = 0.08

type Invoice struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber string     `gorm:"uniqueIndex;not null" json:"invoice_number"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;index;not null" json:"customer_id"`
	QuoteID       *uuid.UUID `gorm:"type:uuid;index" json:"quote_id,omitempty"`

	Date            string `gorm:"not null" json:"date"`
	ScheduledTime   string `json:"scheduled_time"`
	Technician      string `json:"technician"`
	WorkPerformed   string `json:"work_performed"`
	Description     string `json:"description"`
	Recommendations string `json:"recommendations"`

	// Cost defaults are applied at the input layer; a stored zero tax rate
	// is a real zero, so no column defaults here.
	LaborCost     float64 `gorm:"type:decimal(10,2);not null" json:"labor_cost"`
	MaterialsCost float64 `gorm:"type:decimal(10,2)" json:"materials_cost"`
	TaxRate       float64 `gorm:"type:decimal(6,4)" json:"tax_rate"`

	Status        string `gorm:"default:'draft'" json:"status"`
	PaidDate      string `json:"paid_date,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`

	CustomerSignature   string     `gorm:"type:text" json:"customer_signature,omitempty"`
	SignatureDate       *time.Time `json:"signature_date,omitempty"`
	AuthorizationStatus string     `json:"authorization_status,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
