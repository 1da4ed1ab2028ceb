package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderLog records each appointment-reminder SMS attempt.
type ReminderLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;index;not null" json:"appointment_id"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`

	Message      string `json:"message"`
	Status       string `json:"status"` // 'sent' or 'failed'
	ErrorMessage string `json:"error_message,omitempty"`

	SentAt time.Time `json:"sent_at"`
}

func (r *ReminderLog) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
