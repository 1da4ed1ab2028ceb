package store

import (
	"testing"

	"github.com/BrianEstime1/hvac-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceDerivedTotals(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Totals", "(555) 000-0001")

	tests := []struct {
		name      string
		labor     float64
		materials float64
		taxRate   float64
		subtotal  float64
		tax       float64
		total     float64
	}{
		{"standard rate", 100, 50, 0.08, 150.00, 12.00, 162.00},
		{"zero tax", 200, 0, 0, 200.00, 0.00, 200.00},
		{"rounding", 12.34, 10.01, 0.0825, 22.35, 1.84, 24.19},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoice := &models.Invoice{
				CustomerID:    customer.ID,
				InvoiceNumber: "INV-T" + string(rune('A'+i)),
				Date:          "2025-04-01",
				Technician:    "Mike",
				WorkPerformed: "Service",
				LaborCost:     tt.labor,
				MaterialsCost: tt.materials,
				TaxRate:       tt.taxRate,
			}
			require.NoError(t, s.CreateInvoice(invoice))

			detail, err := s.GetInvoice(invoice.ID)
			require.NoError(t, err)
			assert.InDelta(t, tt.subtotal, detail.Subtotal, 0.001)
			assert.InDelta(t, tt.tax, detail.Tax, 0.001)
			assert.InDelta(t, tt.total, detail.Total, 0.001)
		})
	}
}

func TestCreateInvoiceExplicitZeroTaxRatePersisted(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Exempt", "(555) 000-0001")

	// An explicit zero rate must survive the insert, not be replaced by the
	// 0.08 default that applies only when the field is absent from input.
	invoice := &models.Invoice{
		CustomerID:    customer.ID,
		InvoiceNumber: "INV-Z1",
		Date:          "2025-04-01",
		Technician:    "Mike",
		WorkPerformed: "Tax-exempt service",
		LaborCost:     200,
		TaxRate:       0,
	}
	require.NoError(t, s.CreateInvoice(invoice))

	detail, err := s.GetInvoice(invoice.ID)
	require.NoError(t, err)
	assert.Zero(t, detail.TaxRate)
	assert.InDelta(t, 200.00, detail.Subtotal, 0.001)
	assert.Zero(t, detail.Tax)
	assert.InDelta(t, 200.00, detail.Total, 0.001)
}

func TestCreateInvoiceUnknownCustomer(t *testing.T) {
	s := newTestStore(t)

	invoice := &models.Invoice{
		CustomerID:    uuid.New(),
		InvoiceNumber: "INV-X1",
		Date:          "2025-04-01",
		Technician:    "Mike",
		WorkPerformed: "Service",
	}
	err := s.CreateInvoice(invoice)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Contains(t, notFoundErr.Message, "Customer")
}

func TestCreateInvoiceUnknownQuote(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Quoteless", "(555) 000-0001")

	missing := uuid.New()
	invoice := &models.Invoice{
		CustomerID:    customer.ID,
		QuoteID:       &missing,
		InvoiceNumber: "INV-X2",
		Date:          "2025-04-01",
		Technician:    "Mike",
		WorkPerformed: "Service",
	}
	err := s.CreateInvoice(invoice)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Contains(t, notFoundErr.Message, "Quote")
}

func TestCreateInvoiceDefaultsStatusToDraft(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Draft", "(555) 000-0001")

	invoice := createTestInvoice(t, s, customer, "INV-D1")

	detail, err := s.GetInvoice(invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, "draft", detail.Status)
}

func TestUpdateInvoiceKeepingOwnNumber(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Keeper", "(555) 000-0001")
	invoice := createTestInvoice(t, s, customer, "INV-K1")

	// Re-saving with an unchanged number must not conflict with itself.
	detail, err := s.UpdateInvoice(invoice.ID, UpdateInvoiceParams{
		InvoiceNumber: "INV-K1",
		CustomerID:    customer.ID,
		Date:          "2025-05-01",
		Technician:    "Sara",
		WorkPerformed: "Compressor swap",
		LaborCost:     300,
		MaterialsCost: 120,
		TaxRate:       0.08,
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-K1", detail.InvoiceNumber)
	assert.Equal(t, "Sara", detail.Technician)
	assert.InDelta(t, 420.00, detail.Subtotal, 0.001)
}

func TestUpdateInvoiceNumberConflict(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Conflicted", "(555) 000-0001")
	createTestInvoice(t, s, customer, "INV-C1")
	second := createTestInvoice(t, s, customer, "INV-C2")

	_, err := s.UpdateInvoice(second.ID, UpdateInvoiceParams{
		InvoiceNumber: "INV-C1",
		CustomerID:    customer.ID,
		Date:          "2025-05-01",
		Technician:    "Mike",
		WorkPerformed: "Service",
	})
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Contains(t, conflictErr.Message, "INV-C1")

	// The conflicting update left the invoice untouched.
	detail, err := s.GetInvoice(second.ID)
	require.NoError(t, err)
	assert.Equal(t, "INV-C2", detail.InvoiceNumber)
}

func TestUpdateInvoiceNotFound(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Ghost", "(555) 000-0001")

	_, err := s.UpdateInvoice(uuid.New(), UpdateInvoiceParams{
		InvoiceNumber: "INV-G1",
		CustomerID:    customer.ID,
		Date:          "2025-05-01",
		Technician:    "Mike",
		WorkPerformed: "Service",
	})
	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestUpdateInvoiceStatusPaid(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Payer", "(555) 000-0001")
	invoice := createTestInvoice(t, s, customer, "INV-P1")

	detail, err := s.UpdateInvoiceStatus(invoice.ID, "paid", "2025-03-15", "card")
	require.NoError(t, err)
	assert.Equal(t, "paid", detail.Status)
	assert.Equal(t, "2025-03-15", detail.PaidDate)
	assert.Equal(t, "card", detail.PaymentMethod)
}

func TestUpdateInvoiceStatusNonPaidIgnoresPaymentFields(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Sender", "(555) 000-0001")
	invoice := createTestInvoice(t, s, customer, "INV-P2")

	detail, err := s.UpdateInvoiceStatus(invoice.ID, "sent", "2025-03-15", "card")
	require.NoError(t, err)
	assert.Equal(t, "sent", detail.Status)
	assert.Equal(t, "", detail.PaidDate)
	assert.Equal(t, "", detail.PaymentMethod)
}

func TestSetInvoiceSignature(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Signer", "(555) 000-0001")
	invoice := createTestInvoice(t, s, customer, "INV-S1")

	detail, err := s.SetInvoiceSignature(invoice.ID, "data:image/png;base64,AAAA", "approved")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", detail.CustomerSignature)
	assert.Equal(t, "approved", detail.AuthorizationStatus)
	require.NotNil(t, detail.SignatureDate)
}

func TestListInvoicesByCustomer(t *testing.T) {
	s := newTestStore(t)
	alice := createTestCustomer(t, s, "Alice", "(555) 000-0001")
	bob := createTestCustomer(t, s, "Bob", "(555) 000-0002")
	createTestInvoice(t, s, alice, "INV-A1")
	createTestInvoice(t, s, alice, "INV-A2")
	createTestInvoice(t, s, bob, "INV-B1")

	invoices, err := s.ListInvoicesByCustomer(alice.ID)
	require.NoError(t, err)
	assert.Len(t, invoices, 2)
	for _, inv := range invoices {
		assert.Equal(t, alice.ID, inv.CustomerID)
		assert.Equal(t, "Alice", inv.CustomerName)
	}

	_, err = s.ListInvoicesByCustomer(uuid.New())
	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestQuoteDeleteGuardedByConvertedInvoice(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Converter", "(555) 000-0001")

	quote := &models.Quote{
		CustomerID: customer.ID,
		Title:      "Heat pump install",
		Total:      5400,
	}
	require.NoError(t, s.CreateQuote(quote))

	invoice := &models.Invoice{
		CustomerID:    customer.ID,
		QuoteID:       &quote.ID,
		InvoiceNumber: "INV-Q1",
		Date:          "2025-04-01",
		Technician:    "Mike",
		WorkPerformed: "Heat pump install",
		LaborCost:     2000,
		MaterialsCost: 3400,
	}
	require.NoError(t, s.CreateInvoice(invoice))

	err := s.DeleteQuote(quote.ID)
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)

	require.NoError(t, s.DeleteInvoice(invoice.ID))
	require.NoError(t, s.DeleteQuote(quote.ID))
}

func TestInvoicePhotos(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Photographer", "(555) 000-0001")
	invoice := createTestInvoice(t, s, customer, "INV-F1")

	photo := &models.JobPhoto{
		InvoiceID: invoice.ID,
		PhotoData: "data:image/jpeg;base64,BBBB",
		Caption:   "before",
	}
	require.NoError(t, s.AddPhoto(photo))

	photos, err := s.PhotosByInvoice(invoice.ID)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, "before", photos[0].Caption)

	// Attaching to a missing invoice fails.
	err = s.AddPhoto(&models.JobPhoto{InvoiceID: uuid.New(), PhotoData: "x"})
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)

	require.NoError(t, s.DeletePhoto(photo.ID))
	photos, err = s.PhotosByInvoice(invoice.ID)
	require.NoError(t, err)
	assert.Empty(t, photos)

	err = s.DeletePhoto(photo.ID)
	assert.ErrorAs(t, err, &notFoundErr)
}
