package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	InventoryCategories = []string{"parts", "tools", "refrigerant", "supplies", "equipment", "other"}
	InventoryUnits      = []string{"ea", "lbs", "oz", "gal", "ft", "box", "case", "roll", "set"}
)

const DefaultLowStockThreshold = 5

type InventoryItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Category string    `gorm:"not null" json:"category"`
	// Optional, but unique when present.
	SKU *string `gorm:"uniqueIndex" json:"sku,omitempty"`

	Quantity int    `gorm:"not null" json:"quantity"`
	Unit     string `gorm:"not null" json:"unit"`
	// No column default: a zero threshold is legal and means the item is
	// only low when fully out of stock. The input layer fills in the
	// default when the field is absent.
	CostPerUnit       float64 `gorm:"type:decimal(10,2)" json:"cost_per_unit"`
	LowStockThreshold int     `json:"low_stock_threshold"`

	Supplier string `json:"supplier"`
	Notes    string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`

	// Derived on read, never stored.
	TotalValue float64 `gorm:"-" json:"total_value"`
	IsLowStock bool    `gorm:"-" json:"is_low_stock"`
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Derive fills the computed fields from the stored ones.
func (i *InventoryItem) Derive() {
	i.TotalValue = math.Round(float64(i.Quantity)*i.CostPerUnit*100) / 100
	i.IsLowStock = i.Quantity <= i.LowStockThreshold
}

// InventoryUsage is an immutable log entry of parts consumed on a job.
// Rows are only ever inserted and read.
type InventoryUsage struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InventoryID uuid.UUID `gorm:"type:uuid;index;not null" json:"inventory_id"`

	AppointmentID *uuid.UUID `gorm:"type:uuid;index" json:"appointment_id,omitempty"`
	InvoiceID     *uuid.UUID `gorm:"type:uuid;index" json:"invoice_id,omitempty"`

	QuantityUsed int    `gorm:"not null" json:"quantity_used"`
	DateUsed     string `gorm:"not null" json:"date_used"`
	Notes        string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

func (u *InventoryUsage) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
