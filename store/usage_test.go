package store

import (
	"testing"

	"github.com/BrianEstime1/hvac-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordUsageDecrementsStock(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Job Site", "(555) 000-0001")
	apt := createTestAppointment(t, s, customer, "2025-07-01", "09:00")
	item := createTestItem(t, s, "Capacitor", 10, 8.00)

	usage := &models.InventoryUsage{
		InventoryID:   item.ID,
		AppointmentID: &apt.ID,
		QuantityUsed:  4,
		DateUsed:      "2025-07-01",
		Notes:         "replaced failed cap",
	}
	remaining, err := s.RecordUsage(usage)
	require.NoError(t, err)
	assert.Equal(t, 6, remaining.Quantity)
	assert.NotEqual(t, uuid.Nil, usage.ID)

	details, total, err := s.UsageByAppointment(apt.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, 4, details[0].QuantityUsed)
	assert.Equal(t, "Capacitor", details[0].ItemName)
	assert.InDelta(t, 32.00, details[0].LineCost, 0.001)
	assert.InDelta(t, 32.00, total, 0.001)
}

func TestRecordUsageInsufficientStock(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Short Stock", "(555) 000-0001")
	apt := createTestAppointment(t, s, customer, "2025-07-01", "09:00")
	item := createTestItem(t, s, "Fuse", 6, 1.50)

	_, err := s.RecordUsage(&models.InventoryUsage{
		InventoryID:   item.ID,
		AppointmentID: &apt.ID,
		QuantityUsed:  100,
		DateUsed:      "2025-07-01",
	})
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 6, stockErr.Available)
	assert.Equal(t, 100, stockErr.Requested)

	// Nothing was applied: quantity unchanged, no usage row written.
	got, err := s.GetItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Quantity)

	details, total, err := s.UsageByAppointment(apt.ID)
	require.NoError(t, err)
	assert.Empty(t, details)
	assert.Zero(t, total)
}

func TestRecordUsageUnknownReferences(t *testing.T) {
	s := newTestStore(t)
	createTestCustomer(t, s, "Refs", "(555) 000-0001")
	item := createTestItem(t, s, "Wire Nut", 100, 0.10)

	var notFoundErr *NotFoundError

	_, err := s.RecordUsage(&models.InventoryUsage{
		InventoryID:  uuid.New(),
		QuantityUsed: 1,
		DateUsed:     "2025-07-01",
	})
	require.ErrorAs(t, err, &notFoundErr)
	assert.Contains(t, notFoundErr.Message, "Inventory item")

	missingApt := uuid.New()
	_, err = s.RecordUsage(&models.InventoryUsage{
		InventoryID:   item.ID,
		AppointmentID: &missingApt,
		QuantityUsed:  1,
		DateUsed:      "2025-07-01",
	})
	require.ErrorAs(t, err, &notFoundErr)
	assert.Contains(t, notFoundErr.Message, "Appointment")

	missingInv := uuid.New()
	_, err = s.RecordUsage(&models.InventoryUsage{
		InventoryID:  item.ID,
		InvoiceID:    &missingInv,
		QuantityUsed: 1,
		DateUsed:     "2025-07-01",
	})
	require.ErrorAs(t, err, &notFoundErr)
	assert.Contains(t, notFoundErr.Message, "Invoice")

	// Each rejected record left the stock alone.
	got, err := s.GetItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, got.Quantity)
}

func TestUsageByInvoiceRollup(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Rollup", "(555) 000-0001")
	invoice := createTestInvoice(t, s, customer, "INV-U1")
	caps := createTestItem(t, s, "Capacitor", 10, 8.00)
	coil := createTestItem(t, s, "Coil Cleaner", 5, 12.50)

	_, err := s.RecordUsage(&models.InventoryUsage{
		InventoryID: caps.ID, InvoiceID: &invoice.ID,
		QuantityUsed: 2, DateUsed: "2025-07-01",
	})
	require.NoError(t, err)
	_, err = s.RecordUsage(&models.InventoryUsage{
		InventoryID: coil.ID, InvoiceID: &invoice.ID,
		QuantityUsed: 1, DateUsed: "2025-07-01",
	})
	require.NoError(t, err)

	details, total, err := s.UsageByInvoice(invoice.ID)
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.InDelta(t, 28.50, total, 0.001) // 2*8.00 + 1*12.50

	_, _, err = s.UsageByInvoice(uuid.New())
	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestUsageHistoryByItem(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "History", "(555) 000-0001")
	apt := createTestAppointment(t, s, customer, "2025-07-01", "09:00")
	item := createTestItem(t, s, "Filter", 20, 6.00)

	_, err := s.RecordUsage(&models.InventoryUsage{
		InventoryID: item.ID, AppointmentID: &apt.ID,
		QuantityUsed: 2, DateUsed: "2025-07-01",
	})
	require.NoError(t, err)
	_, err = s.RecordUsage(&models.InventoryUsage{
		InventoryID: item.ID, AppointmentID: &apt.ID,
		QuantityUsed: 3, DateUsed: "2025-07-08",
	})
	require.NoError(t, err)

	history, err := s.UsageHistoryByItem(item.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	// Most recent date first.
	assert.Equal(t, "2025-07-08", history[0].DateUsed)
	assert.Equal(t, "2025-07-01", history[1].DateUsed)

	got, err := s.GetItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, got.Quantity)
}
