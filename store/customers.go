package store

import (
	"errors"

	"github.com/BrianEstime1/hvac-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateCustomer inserts a new customer. Phone is expected to be validated
// and formatted already.
func (s *Store) CreateCustomer(customer *models.Customer) error {
	return s.db.Create(customer).Error
}

// GetCustomer retrieves a single customer by ID.
func (s *Store) GetCustomer(id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Customer with ID %s not found", id)
		}
		return nil, err
	}
	return &customer, nil
}

// ListCustomers returns all customers, newest-created first.
func (s *Store) ListCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.Order("created_at DESC").Find(&customers).Error
	return customers, err
}

// SearchCustomers finds customers by partial, case-insensitive name match.
func (s *Store) SearchCustomers(term string) ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.
		Where("LOWER(name) LIKE LOWER(?)", "%"+term+"%").
		Order("name").
		Find(&customers).Error
	return customers, err
}

// UpdateCustomer replaces the three mutable fields. Callers must resend all
// of them; there is no partial update.
func (s *Store) UpdateCustomer(id uuid.UUID, name, phone, address string) (*models.Customer, error) {
	result := s.db.Model(&models.Customer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":    name,
		"phone":   phone,
		"address": address,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, notFound("Customer with ID %s not found", id)
	}
	return s.GetCustomer(id)
}

// DeleteCustomer removes a customer unless invoices or quotes still
// reference it. The guard and the delete share one transaction.
func (s *Store) DeleteCustomer(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var invoiceCount int64
		if err := tx.Model(&models.Invoice{}).Where("customer_id = ?", id).Count(&invoiceCount).Error; err != nil {
			return err
		}
		if invoiceCount > 0 {
			return conflict("Cannot delete customer: %d invoice(s) still reference them; delete the invoices first", invoiceCount)
		}

		var quoteCount int64
		if err := tx.Model(&models.Quote{}).Where("customer_id = ?", id).Count(&quoteCount).Error; err != nil {
			return err
		}
		if quoteCount > 0 {
			return conflict("Cannot delete customer: %d quote(s) still reference them; delete the quotes first", quoteCount)
		}

		result := tx.Where("id = ?", id).Delete(&models.Customer{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return notFound("Customer with ID %s not found", id)
		}
		return nil
	})
}

// CustomerHasInvoices reports whether any invoice references the customer.
func (s *Store) CustomerHasInvoices(id uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.Invoice{}).Where("customer_id = ?", id).Count(&count).Error
	return count > 0, err
}
