package store

import (
	"testing"

	"github.com/BrianEstime1/hvac-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAppointment(t *testing.T, s *Store, customer *models.Customer, date, timeOfDay string) *models.Appointment {
	t.Helper()
	apt := &models.Appointment{
		CustomerID:      customer.ID,
		AppointmentDate: date,
		AppointmentTime: timeOfDay,
		Technician:      "Mike",
		ServiceType:     "maintenance",
	}
	require.NoError(t, s.CreateAppointment(apt))
	return apt
}

func TestCreateAppointmentDefaultsToScheduled(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Scheduler", "(555) 000-0001")

	apt := createTestAppointment(t, s, customer, "2025-06-01", "9:00 AM")

	detail, err := s.GetAppointment(apt.ID)
	require.NoError(t, err)
	assert.Equal(t, "scheduled", detail.Status)
	assert.Nil(t, detail.InvoiceID)
	assert.Equal(t, "Scheduler", detail.CustomerName)
}

func TestCreateAppointmentUnknownCustomer(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateAppointment(&models.Appointment{
		CustomerID:      uuid.New(),
		AppointmentDate: "2025-06-01",
		AppointmentTime: "9:00 AM",
		ServiceType:     "repair",
	})
	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestListAppointmentsOrderedByDateThenTime(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Ordered", "(555) 000-0001")

	createTestAppointment(t, s, customer, "2025-06-02", "08:00")
	createTestAppointment(t, s, customer, "2025-06-01", "14:00")
	createTestAppointment(t, s, customer, "2025-06-01", "09:00")

	apts, err := s.ListAppointments()
	require.NoError(t, err)
	require.Len(t, apts, 3)
	assert.Equal(t, "2025-06-01", apts[0].AppointmentDate)
	assert.Equal(t, "09:00", apts[0].AppointmentTime)
	assert.Equal(t, "2025-06-01", apts[1].AppointmentDate)
	assert.Equal(t, "14:00", apts[1].AppointmentTime)
	assert.Equal(t, "2025-06-02", apts[2].AppointmentDate)
}

func TestAppointmentsByDate(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Dated", "(555) 000-0001")

	createTestAppointment(t, s, customer, "2025-06-01", "09:00")
	createTestAppointment(t, s, customer, "2025-06-02", "09:00")

	apts, err := s.AppointmentsByDate("2025-06-01")
	require.NoError(t, err)
	require.Len(t, apts, 1)
	assert.Equal(t, "2025-06-01", apts[0].AppointmentDate)

	apts, err = s.AppointmentsByDate("2025-06-03")
	require.NoError(t, err)
	assert.Empty(t, apts)
}

func TestAppointmentsByTechnicianExactMatch(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Tech", "(555) 000-0001")

	createTestAppointment(t, s, customer, "2025-06-01", "09:00") // Mike
	sara := &models.Appointment{
		CustomerID:      customer.ID,
		AppointmentDate: "2025-06-01",
		AppointmentTime: "11:00",
		Technician:      "Sara",
		ServiceType:     "repair",
	}
	require.NoError(t, s.CreateAppointment(sara))

	apts, err := s.AppointmentsByTechnician("Sara")
	require.NoError(t, err)
	require.Len(t, apts, 1)
	assert.Equal(t, "Sara", apts[0].Technician)

	// Exact and case-sensitive.
	apts, err = s.AppointmentsByTechnician("sara")
	require.NoError(t, err)
	assert.Empty(t, apts)
}

func TestUpdateAppointmentDoesNotTouchStatus(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Resched", "(555) 000-0001")
	apt := createTestAppointment(t, s, customer, "2025-06-01", "09:00")

	_, err := s.UpdateAppointmentStatus(apt.ID, "in-progress")
	require.NoError(t, err)

	detail, err := s.UpdateAppointment(apt.ID, UpdateAppointmentParams{
		AppointmentDate: "2025-06-05",
		AppointmentTime: "10:30",
		Technician:      "Sara",
		ServiceType:     "installation",
		Notes:           "bring ladder",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-05", detail.AppointmentDate)
	assert.Equal(t, "Sara", detail.Technician)
	assert.Equal(t, "in-progress", detail.Status)
}

func TestUpdateAppointmentStatusNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateAppointmentStatus(uuid.New(), "cancelled")
	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestLinkAppointmentToInvoice(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Linker", "(555) 000-0001")
	apt := createTestAppointment(t, s, customer, "2025-06-01", "09:00")
	invoice := createTestInvoice(t, s, customer, "INV-L1")

	detail, err := s.LinkAppointmentToInvoice(apt.ID, invoice.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.InvoiceID)
	assert.Equal(t, invoice.ID, *detail.InvoiceID)
	assert.Equal(t, "completed", detail.Status)
}

func TestLinkAppointmentToMissingInvoiceLeavesItUnchanged(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Unlinked", "(555) 000-0001")
	apt := createTestAppointment(t, s, customer, "2025-06-01", "09:00")

	_, err := s.LinkAppointmentToInvoice(apt.ID, uuid.New())
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Contains(t, notFoundErr.Message, "Invoice")

	detail, err := s.GetAppointment(apt.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.InvoiceID)
	assert.Equal(t, "scheduled", detail.Status)
}

func TestDeleteAppointment(t *testing.T) {
	s := newTestStore(t)
	customer := createTestCustomer(t, s, "Deleter", "(555) 000-0001")
	apt := createTestAppointment(t, s, customer, "2025-06-01", "09:00")

	require.NoError(t, s.DeleteAppointment(apt.ID))

	_, err := s.GetAppointment(apt.ID)
	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}
