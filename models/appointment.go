package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var AppointmentStatuses = []string{"scheduled", "in-progress", "completed", "cancelled"}

type Appointment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`

	AppointmentDate string `gorm:"not null" json:"appointment_date"`
	AppointmentTime string `gorm:"not null" json:"appointment_time"`
	Technician      string `json:"technician"`
	ServiceType     string `gorm:"not null" json:"service_type"`
	Notes           string `json:"notes"`

	Status string `gorm:"default:'scheduled'" json:"status"`

	// Set only by the invoice-linking operation, which also forces the
	// status to "completed".
	InvoiceID *uuid.UUID `gorm:"type:uuid;index" json:"invoice_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
