package store

import (
	"errors"

	"github.com/BrianEstime1/hvac-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateQuote inserts a new quote for an existing customer.
func (s *Store) CreateQuote(quote *models.Quote) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, "id = ?", quote.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Customer with ID %s not found", quote.CustomerID)
			}
			return err
		}

		if quote.Status == "" {
			quote.Status = "draft"
		}
		return tx.Create(quote).Error
	})
}

// GetQuote retrieves a single quote by ID.
func (s *Store) GetQuote(id uuid.UUID) (*models.Quote, error) {
	var quote models.Quote
	if err := s.db.First(&quote, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Quote with ID %s not found", id)
		}
		return nil, err
	}
	return &quote, nil
}

// ListQuotes returns all quotes, newest-created first.
func (s *Store) ListQuotes() ([]models.Quote, error) {
	var quotes []models.Quote
	err := s.db.Order("created_at DESC").Find(&quotes).Error
	return quotes, err
}

// UpdateQuoteParams carries the editable quote fields.
type UpdateQuoteParams struct {
	Title       string
	Description string
	Total       float64
	Status      string
}

// UpdateQuote replaces the editable fields.
func (s *Store) UpdateQuote(id uuid.UUID, params UpdateQuoteParams) (*models.Quote, error) {
	result := s.db.Model(&models.Quote{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       params.Title,
		"description": params.Description,
		"total":       params.Total,
		"status":      params.Status,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, notFound("Quote with ID %s not found", id)
	}
	return s.GetQuote(id)
}

// DeleteQuote removes a quote unless an invoice was created from it,
// mirroring the customer delete guard.
func (s *Store) DeleteQuote(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var invoiceCount int64
		if err := tx.Model(&models.Invoice{}).Where("quote_id = ?", id).Count(&invoiceCount).Error; err != nil {
			return err
		}
		if invoiceCount > 0 {
			return conflict("Cannot delete quote: %d invoice(s) still reference it; delete the invoices first", invoiceCount)
		}

		result := tx.Where("id = ?", id).Delete(&models.Quote{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return notFound("Quote with ID %s not found", id)
		}
		return nil
	})
}
