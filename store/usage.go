package store

import (
	"errors"
	"time"

	"github.com/BrianEstime1/hvac-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsageDetail is a usage row joined with its inventory item for reporting.
type UsageDetail struct {
	ID            uuid.UUID  `json:"id"`
	InventoryID   uuid.UUID  `json:"inventory_id"`
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
	InvoiceID     *uuid.UUID `json:"invoice_id,omitempty"`
	QuantityUsed  int        `json:"quantity_used"`
	DateUsed      string     `json:"date_used"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`

	ItemName    string  `json:"item_name"`
	ItemSKU     *string `json:"item_sku,omitempty"`
	Unit        string  `json:"unit"`
	CostPerUnit float64 `json:"cost_per_unit"`
	LineCost    float64 `json:"line_cost"`
}

const usageSelect = "inventory_usages.*, " +
	"inventory_items.name AS item_name, " +
	"inventory_items.sku AS item_sku, " +
	"inventory_items.unit AS unit, " +
	"inventory_items.cost_per_unit AS cost_per_unit"

func (s *Store) usageQuery() *gorm.DB {
	return s.db.Table("inventory_usages").
		Select(usageSelect).
		Joins("JOIN inventory_items ON inventory_items.id = inventory_usages.inventory_id")
}

func finishUsageDetails(details []UsageDetail) ([]UsageDetail, float64) {
	var total float64
	for i := range details {
		details[i].LineCost = round2(float64(details[i].QuantityUsed) * details[i].CostPerUnit)
		total += details[i].LineCost
	}
	return details, round2(total)
}

// RecordUsage consumes stock against a job. The availability check, the
// decrement and the usage insert are one unit of work: if the item holds
// less than quantity_used, nothing is applied and the caller is told the
// stock is insufficient. Usage rows are never updated afterwards.
func (s *Store) RecordUsage(usage *models.InventoryUsage) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ?", usage.InventoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Inventory item with ID %s not found", usage.InventoryID)
			}
			return err
		}

		if usage.AppointmentID != nil {
			var apt models.Appointment
			if err := tx.First(&apt, "id = ?", *usage.AppointmentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return notFound("Appointment with ID %s not found", *usage.AppointmentID)
				}
				return err
			}
		}
		if usage.InvoiceID != nil {
			var invoice models.Invoice
			if err := tx.First(&invoice, "id = ?", *usage.InvoiceID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return notFound("Invoice with ID %s not found", *usage.InvoiceID)
				}
				return err
			}
		}

		// Conditional single-statement decrement: zero rows affected means
		// another request spent the stock first, or there was never enough.
		result := tx.Model(&models.InventoryItem{}).
			Where("id = ? AND quantity >= ?", usage.InventoryID, usage.QuantityUsed).
			UpdateColumn("quantity", gorm.Expr("quantity - ?", usage.QuantityUsed))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return &InsufficientStockError{
				ItemID:    usage.InventoryID,
				Available: item.Quantity,
				Requested: usage.QuantityUsed,
			}
		}

		if err := tx.Create(usage).Error; err != nil {
			return err
		}
		return tx.First(&item, "id = ?", usage.InventoryID).Error
	})
	if err != nil {
		return nil, err
	}
	item.Derive()
	return &item, nil
}

// UsageByAppointment returns the parts consumed on an appointment together
// with the rolled-up total cost.
func (s *Store) UsageByAppointment(appointmentID uuid.UUID) ([]UsageDetail, float64, error) {
	if _, err := s.GetAppointment(appointmentID); err != nil {
		return nil, 0, err
	}

	var details []UsageDetail
	if err := s.usageQuery().
		Where("inventory_usages.appointment_id = ?", appointmentID).
		Order("inventory_usages.created_at").
		Scan(&details).Error; err != nil {
		return nil, 0, err
	}
	details, total := finishUsageDetails(details)
	return details, total, nil
}

// UsageByInvoice returns the parts consumed on an invoice together with the
// rolled-up total cost.
func (s *Store) UsageByInvoice(invoiceID uuid.UUID) ([]UsageDetail, float64, error) {
	if _, err := s.GetInvoice(invoiceID); err != nil {
		return nil, 0, err
	}

	var details []UsageDetail
	if err := s.usageQuery().
		Where("inventory_usages.invoice_id = ?", invoiceID).
		Order("inventory_usages.created_at").
		Scan(&details).Error; err != nil {
		return nil, 0, err
	}
	details, total := finishUsageDetails(details)
	return details, total, nil
}

// UsageHistoryByItem returns an item's full usage history, most recent
// first.
func (s *Store) UsageHistoryByItem(inventoryID uuid.UUID) ([]UsageDetail, error) {
	if _, err := s.GetItem(inventoryID); err != nil {
		return nil, err
	}

	var details []UsageDetail
	if err := s.usageQuery().
		Where("inventory_usages.inventory_id = ?", inventoryID).
		Order("inventory_usages.date_used DESC, inventory_usages.created_at DESC").
		Scan(&details).Error; err != nil {
		return nil, err
	}
	details, _ = finishUsageDetails(details)
	return details, nil
}
