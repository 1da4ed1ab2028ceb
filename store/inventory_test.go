package store

import (
	"testing"

	"github.com/BrianEstime1/hvac-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateItemDerivedFields(t *testing.T) {
	s := newTestStore(t)

	item := createTestItem(t, s, "Run Capacitor", 12, 8.50)
	assert.InDelta(t, 102.00, item.TotalValue, 0.001)
	assert.False(t, item.IsLowStock)

	low := createTestItem(t, s, "Contactor", 3, 15.00)
	assert.True(t, low.IsLowStock)
}

func TestCreateItemDuplicateSKU(t *testing.T) {
	s := newTestStore(t)

	sku := "CAP-440"
	first := &models.InventoryItem{
		Name: "Capacitor A", Category: "parts", SKU: &sku,
		Quantity: 5, Unit: "ea", CostPerUnit: 8, LowStockThreshold: 2,
	}
	require.NoError(t, s.CreateItem(first))

	dupSKU := "CAP-440"
	second := &models.InventoryItem{
		Name: "Capacitor B", Category: "parts", SKU: &dupSKU,
		Quantity: 5, Unit: "ea", CostPerUnit: 8, LowStockThreshold: 2,
	}
	err := s.CreateItem(second)
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Contains(t, conflictErr.Message, "CAP-440")
}

func TestCreateItemExplicitZeroThresholdPersisted(t *testing.T) {
	s := newTestStore(t)

	// Threshold zero is a real value: the item is low only at zero stock.
	item := &models.InventoryItem{
		Name:              "Scrap Copper",
		Category:          "other",
		Quantity:          3,
		Unit:              "lbs",
		CostPerUnit:       2.00,
		LowStockThreshold: 0,
	}
	require.NoError(t, s.CreateItem(item))

	got, err := s.GetItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.LowStockThreshold)
	assert.False(t, got.IsLowStock)

	drained, err := s.AdjustQuantity(item.ID, -3)
	require.NoError(t, err)
	assert.True(t, drained.IsLowStock)
}

func TestCreateItemsWithoutSKU(t *testing.T) {
	s := newTestStore(t)

	// A nil SKU is not subject to the uniqueness rule; several are fine.
	createTestItem(t, s, "Misc A", 1, 1)
	createTestItem(t, s, "Misc B", 1, 1)

	items, err := s.ListItems()
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestAdjustQuantity(t *testing.T) {
	s := newTestStore(t)
	item := createTestItem(t, s, "Filter", 10, 4.00)

	adjusted, err := s.AdjustQuantity(item.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, adjusted.Quantity)
	assert.InDelta(t, 60.00, adjusted.TotalValue, 0.001)

	adjusted, err = s.AdjustQuantity(item.ID, -15)
	require.NoError(t, err)
	assert.Equal(t, 0, adjusted.Quantity)
	assert.True(t, adjusted.IsLowStock)
}

func TestAdjustQuantityBelowZeroRejected(t *testing.T) {
	s := newTestStore(t)
	item := createTestItem(t, s, "Refrigerant R410A", 4, 95.00)

	_, err := s.AdjustQuantity(item.ID, -5)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 4, stockErr.Available)
	assert.Equal(t, 5, stockErr.Requested)

	// Quantity is untouched after the rejected adjustment.
	got, err := s.GetItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Quantity)
}

func TestAdjustQuantityNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AdjustQuantity(uuid.New(), -1)
	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestLowStockOrdering(t *testing.T) {
	s := newTestStore(t)

	createTestItem(t, s, "Plenty", 50, 1) // threshold 5, not low
	createTestItem(t, s, "Low", 3, 1)
	createTestItem(t, s, "Empty", 0, 1)
	boundary := &models.InventoryItem{
		Name: "Boundary", Category: "parts", Quantity: 7,
		Unit: "ea", CostPerUnit: 1, LowStockThreshold: 7,
	}
	require.NoError(t, s.CreateItem(boundary))

	items, err := s.LowStock()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Empty", items[0].Name)
	assert.Equal(t, "Low", items[1].Name)
	assert.Equal(t, "Boundary", items[2].Name)
	for _, item := range items {
		assert.True(t, item.IsLowStock)
	}
}

func TestItemsByCategory(t *testing.T) {
	s := newTestStore(t)

	createTestItem(t, s, "Gauge Set", 2, 80) // parts
	tool := &models.InventoryItem{
		Name: "Vacuum Pump", Category: "tools", Quantity: 1,
		Unit: "ea", CostPerUnit: 250, LowStockThreshold: 1,
	}
	require.NoError(t, s.CreateItem(tool))

	items, err := s.ItemsByCategory("tools")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Vacuum Pump", items[0].Name)
}

func TestSearchItemsByNameOrSKU(t *testing.T) {
	s := newTestStore(t)

	sku := "FLT-20X25"
	filter := &models.InventoryItem{
		Name: "Air Filter 20x25", Category: "supplies", SKU: &sku,
		Quantity: 30, Unit: "ea", CostPerUnit: 6, LowStockThreshold: 10,
	}
	require.NoError(t, s.CreateItem(filter))
	createTestItem(t, s, "Copper Line Set", 8, 45)

	items, err := s.SearchItems("filter")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Air Filter 20x25", items[0].Name)

	items, err = s.SearchItems("flt-20")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Air Filter 20x25", items[0].Name)
}

func TestTotalInventoryValue(t *testing.T) {
	s := newTestStore(t)

	total, err := s.TotalInventoryValue()
	require.NoError(t, err)
	assert.Zero(t, total)

	createTestItem(t, s, "A", 10, 2.50) // 25.00
	createTestItem(t, s, "B", 4, 10.25) // 41.00

	total, err = s.TotalInventoryValue()
	require.NoError(t, err)
	assert.InDelta(t, 66.00, total, 0.001)
}

func TestUpdateItem(t *testing.T) {
	s := newTestStore(t)
	item := createTestItem(t, s, "Old Name", 10, 4)

	sku := "NEW-1"
	updated, err := s.UpdateItem(item.ID, UpdateItemParams{
		Name:              "New Name",
		Category:          "supplies",
		SKU:               &sku,
		Quantity:          20,
		Unit:              "box",
		CostPerUnit:       3.25,
		LowStockThreshold: 8,
		Supplier:          "Acme HVAC Supply",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, 20, updated.Quantity)
	assert.InDelta(t, 65.00, updated.TotalValue, 0.001)
}

func TestDeleteItem(t *testing.T) {
	s := newTestStore(t)
	item := createTestItem(t, s, "Doomed", 1, 1)

	require.NoError(t, s.DeleteItem(item.ID))

	err := s.DeleteItem(item.ID)
	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}
