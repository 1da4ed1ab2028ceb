package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobPhoto is a base64-encoded image attached to an invoice. Photos are not
// cascade-deleted with their invoice; removal is explicit, by id.
type JobPhoto struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"invoice_id"`

	PhotoData string `gorm:"type:text;not null" json:"photo_data"`
	Caption   string `json:"caption"`

	CreatedAt time.Time `json:"created_at"`
}

func (p *JobPhoto) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
