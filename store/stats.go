package store

import "github.com/BrianEstime1/hvac-backend/models"

// Stats is the dashboard overview: entity counts plus inventory rollups.
type Stats struct {
	Customers      int64   `json:"customers"`
	Invoices       int64   `json:"invoices"`
	Appointments   int64   `json:"appointments"`
	InventoryItems int64   `json:"inventory_items"`
	Quotes         int64   `json:"quotes"`
	InventoryValue float64 `json:"inventory_value"`
	LowStockItems  int64   `json:"low_stock_items"`
}

// GetStats computes the dashboard overview in one pass.
func (s *Store) GetStats() (*Stats, error) {
	var stats Stats

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Customer{}, &stats.Customers},
		{&models.Invoice{}, &stats.Invoices},
		{&models.Appointment{}, &stats.Appointments},
		{&models.InventoryItem{}, &stats.InventoryItems},
		{&models.Quote{}, &stats.Quotes},
	}
	for _, c := range counts {
		if err := s.db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	value, err := s.TotalInventoryValue()
	if err != nil {
		return nil, err
	}
	stats.InventoryValue = value

	if err := s.db.Model(&models.InventoryItem{}).
		Where("quantity <= low_stock_threshold").
		Count(&stats.LowStockItems).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
