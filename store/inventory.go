package store

import (
	"errors"

	"github.com/BrianEstime1/hvac-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateItem inserts a new inventory item. Category and unit are expected
// normalized; SKU uniqueness is enforced by the unique index and surfaced as
// a conflict rather than pre-checked.
func (s *Store) CreateItem(item *models.InventoryItem) error {
	if err := s.db.Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) && item.SKU != nil {
			return conflict("SKU '%s' already exists", *item.SKU)
		}
		return err
	}
	item.Derive()
	return nil
}

// GetItem retrieves an item with its derived value fields.
func (s *Store) GetItem(id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Inventory item with ID %s not found", id)
		}
		return nil, err
	}
	item.Derive()
	return &item, nil
}

// ListItems returns all items ordered by name.
func (s *Store) ListItems() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := s.db.Order("name, created_at").Find(&items).Error; err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Derive()
	}
	return items, nil
}

// UpdateItemParams carries the full set of editable item fields.
type UpdateItemParams struct {
	Name              string
	Category          string
	SKU               *string
	Quantity          int
	Unit              string
	CostPerUnit       float64
	LowStockThreshold int
	Supplier          string
	Notes             string
}

// UpdateItem replaces all editable fields.
func (s *Store) UpdateItem(id uuid.UUID, params UpdateItemParams) (*models.InventoryItem, error) {
	result := s.db.Model(&models.InventoryItem{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":                params.Name,
		"category":            params.Category,
		"sku":                 params.SKU,
		"quantity":            params.Quantity,
		"unit":                params.Unit,
		"cost_per_unit":       params.CostPerUnit,
		"low_stock_threshold": params.LowStockThreshold,
		"supplier":            params.Supplier,
		"notes":               params.Notes,
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) && params.SKU != nil {
			return nil, conflict("SKU '%s' already exists", *params.SKU)
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, notFound("Inventory item with ID %s not found", id)
	}
	return s.GetItem(id)
}

// DeleteItem removes an item unconditionally.
func (s *Store) DeleteItem(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.InventoryItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("Inventory item with ID %s not found", id)
	}
	return nil
}

// AdjustQuantity applies a signed delta to an item's quantity. The
// conditional update is a single statement, so a concurrent adjustment can
// never drive the quantity below zero.
func (s *Store) AdjustQuantity(id uuid.UUID, delta int) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.InventoryItem{}).
			Where("id = ? AND quantity + ? >= 0", id, delta).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			if err := tx.First(&item, "id = ?", id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return notFound("Inventory item with ID %s not found", id)
				}
				return err
			}
			return &InsufficientStockError{ItemID: id, Available: item.Quantity, Requested: -delta}
		}

		return tx.First(&item, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	item.Derive()
	return &item, nil
}

// LowStock returns items at or below their low-stock threshold, lowest
// quantity first.
func (s *Store) LowStock() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := s.db.
		Where("quantity <= low_stock_threshold").
		Order("quantity").
		Find(&items).Error; err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Derive()
	}
	return items, nil
}

// ItemsByCategory returns items in a normalized category.
func (s *Store) ItemsByCategory(category string) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := s.db.Where("category = ?", category).Order("name").Find(&items).Error; err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Derive()
	}
	return items, nil
}

// SearchItems finds items by partial, case-insensitive match on name or SKU.
func (s *Store) SearchItems(term string) ([]models.InventoryItem, error) {
	pattern := "%" + term + "%"
	var items []models.InventoryItem
	if err := s.db.
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(sku) LIKE LOWER(?)", pattern, pattern).
		Order("name").
		Find(&items).Error; err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Derive()
	}
	return items, nil
}

// TotalInventoryValue sums quantity x cost_per_unit over all items,
// defaulting to 0 when there are none.
func (s *Store) TotalInventoryValue() (float64, error) {
	var total float64
	err := s.db.Model(&models.InventoryItem{}).
		Select("COALESCE(SUM(quantity * cost_per_unit), 0)").
		Scan(&total).Error
	return round2(total), err
}
