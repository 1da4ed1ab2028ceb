package store

import (
	"errors"

	"github.com/BrianEstime1/hvac-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddPhoto attaches a photo to an existing invoice. The payload is stored
// opaquely; image contents are not validated.
func (s *Store) AddPhoto(photo *models.JobPhoto) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var invoice models.Invoice
		if err := tx.First(&invoice, "id = ?", photo.InvoiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Invoice with ID %s not found", photo.InvoiceID)
			}
			return err
		}
		return tx.Create(photo).Error
	})
}

// PhotosByInvoice lists an invoice's photos, oldest first.
func (s *Store) PhotosByInvoice(invoiceID uuid.UUID) ([]models.JobPhoto, error) {
	if _, err := s.GetInvoice(invoiceID); err != nil {
		return nil, err
	}

	var photos []models.JobPhoto
	err := s.db.Where("invoice_id = ?", invoiceID).Order("created_at").Find(&photos).Error
	return photos, err
}

// DeletePhoto removes a single photo by id. Photos are never cascade-deleted
// with their invoice.
func (s *Store) DeletePhoto(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.JobPhoto{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("Photo with ID %s not found", id)
	}
	return nil
}
