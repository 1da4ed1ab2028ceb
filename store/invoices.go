package store

import (
	"errors"
	"time"

	"github.com/BrianEstime1/hvac-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceDetail is an invoice joined with its customer's display fields and
// the derived cost breakdown. Subtotal, tax and total are recomputed on
// every read; nothing derived is stored.
type InvoiceDetail struct {
	models.Invoice
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerAddress string  `json:"customer_address"`
	Subtotal        float64 `json:"subtotal"`
	Tax             float64 `json:"tax"`
	Total           float64 `json:"total"`
}

func newInvoiceDetail(inv models.Invoice) InvoiceDetail {
	detail := InvoiceDetail{Invoice: inv}
	if inv.Customer != nil {
		detail.CustomerName = inv.Customer.Name
		detail.CustomerPhone = inv.Customer.Phone
		detail.CustomerAddress = inv.Customer.Address
	}

	subtotal := inv.LaborCost + inv.MaterialsCost
	tax := subtotal * inv.TaxRate
	detail.Subtotal = round2(subtotal)
	detail.Tax = round2(tax)
	detail.Total = round2(subtotal + tax)

	detail.Customer = nil
	return detail
}

// CreateInvoice inserts a new invoice after verifying, in one transaction,
// that the customer exists and the invoice number is not taken.
func (s *Store) CreateInvoice(invoice *models.Invoice) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, "id = ?", invoice.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Customer with ID %s not found", invoice.CustomerID)
			}
			return err
		}

		if invoice.QuoteID != nil {
			var quote models.Quote
			if err := tx.First(&quote, "id = ?", *invoice.QuoteID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return notFound("Quote with ID %s not found", *invoice.QuoteID)
				}
				return err
			}
		}

		var count int64
		if err := tx.Model(&models.Invoice{}).
			Where("invoice_number = ?", invoice.InvoiceNumber).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return conflict("Invoice number '%s' already exists", invoice.InvoiceNumber)
		}

		if invoice.Status == "" {
			invoice.Status = "draft"
		}

		if err := tx.Create(invoice).Error; err != nil {
			// Unique index backstop for a concurrent insert of the same number.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return conflict("Invoice number '%s' already exists", invoice.InvoiceNumber)
			}
			return err
		}
		return nil
	})
}

// GetInvoice retrieves an invoice with customer fields and derived totals.
func (s *Store) GetInvoice(id uuid.UUID) (*InvoiceDetail, error) {
	var invoice models.Invoice
	if err := s.db.Preload("Customer").First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Invoice with ID %s not found", id)
		}
		return nil, err
	}
	detail := newInvoiceDetail(invoice)
	return &detail, nil
}

// ListInvoices returns all invoices with customer fields, newest first.
func (s *Store) ListInvoices() ([]InvoiceDetail, error) {
	var invoices []models.Invoice
	if err := s.db.Preload("Customer").Order("created_at DESC").Find(&invoices).Error; err != nil {
		return nil, err
	}

	details := make([]InvoiceDetail, 0, len(invoices))
	for _, inv := range invoices {
		details = append(details, newInvoiceDetail(inv))
	}
	return details, nil
}

// ListInvoicesByCustomer returns a customer's invoices, newest first.
func (s *Store) ListInvoicesByCustomer(customerID uuid.UUID) ([]InvoiceDetail, error) {
	if _, err := s.GetCustomer(customerID); err != nil {
		return nil, err
	}

	var invoices []models.Invoice
	if err := s.db.Preload("Customer").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}

	details := make([]InvoiceDetail, 0, len(invoices))
	for _, inv := range invoices {
		details = append(details, newInvoiceDetail(inv))
	}
	return details, nil
}

// UpdateInvoiceParams carries the full set of editable invoice fields.
type UpdateInvoiceParams struct {
	InvoiceNumber   string
	CustomerID      uuid.UUID
	Date            string
	ScheduledTime   string
	Technician      string
	WorkPerformed   string
	Description     string
	Recommendations string
	LaborCost       float64
	MaterialsCost   float64
	TaxRate         float64
}

// UpdateInvoice replaces all editable fields. The invoice-number uniqueness
// check excludes the invoice's own row so re-saving an unchanged number does
// not self-conflict.
func (s *Store) UpdateInvoice(id uuid.UUID, params UpdateInvoiceParams) (*InvoiceDetail, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, "id = ?", params.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Customer with ID %s not found", params.CustomerID)
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Invoice{}).
			Where("invoice_number = ? AND id <> ?", params.InvoiceNumber, id).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return conflict("Invoice number '%s' already exists", params.InvoiceNumber)
		}

		result := tx.Model(&models.Invoice{}).Where("id = ?", id).Updates(map[string]interface{}{
			"invoice_number":  params.InvoiceNumber,
			"customer_id":     params.CustomerID,
			"date":            params.Date,
			"scheduled_time":  params.ScheduledTime,
			"technician":      params.Technician,
			"work_performed":  params.WorkPerformed,
			"description":     params.Description,
			"recommendations": params.Recommendations,
			"labor_cost":      params.LaborCost,
			"materials_cost":  params.MaterialsCost,
			"tax_rate":        params.TaxRate,
		})
		if result.Error != nil {
			return result.Error
		}
		// Zero rows affected means the row vanished between the checks and
		// the write; surface it as not found rather than silent success.
		if result.RowsAffected == 0 {
			return notFound("Invoice with ID %s not found", id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetInvoice(id)
}

// UpdateInvoiceStatus moves an invoice to a new status. When moving to
// "paid", the paid date and payment method are optionally recorded.
func (s *Store) UpdateInvoiceStatus(id uuid.UUID, status, paidDate, paymentMethod string) (*InvoiceDetail, error) {
	updates := map[string]interface{}{"status": status}
	if status == "paid" {
		if paidDate != "" {
			updates["paid_date"] = paidDate
		}
		if paymentMethod != "" {
			updates["payment_method"] = paymentMethod
		}
	}

	result := s.db.Model(&models.Invoice{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, notFound("Invoice with ID %s not found", id)
	}
	return s.GetInvoice(id)
}

// SetInvoiceSignature stores the opaque signature payload with a
// server-generated timestamp. Image contents are not inspected.
func (s *Store) SetInvoiceSignature(id uuid.UUID, signatureData, authorizationStatus string) (*InvoiceDetail, error) {
	now := time.Now()
	result := s.db.Model(&models.Invoice{}).Where("id = ?", id).Updates(map[string]interface{}{
		"customer_signature":   signatureData,
		"signature_date":       now,
		"authorization_status": authorizationStatus,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, notFound("Invoice with ID %s not found", id)
	}
	return s.GetInvoice(id)
}

// DeleteInvoice removes an invoice. Unlike customer deletion there is no
// guard; invoices are deleted independently.
func (s *Store) DeleteInvoice(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Invoice{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("Invoice with ID %s not found", id)
	}
	return nil
}
