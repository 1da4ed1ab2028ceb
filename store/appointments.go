package store

import (
	"errors"

	"github.com/BrianEstime1/hvac-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentDetail is an appointment joined with its customer's display
// fields.
type AppointmentDetail struct {
	models.Appointment
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}

func newAppointmentDetail(apt models.Appointment) AppointmentDetail {
	detail := AppointmentDetail{Appointment: apt}
	if apt.Customer != nil {
		detail.CustomerName = apt.Customer.Name
		detail.CustomerPhone = apt.Customer.Phone
	}
	detail.Customer = nil
	return detail
}

func appointmentDetails(apts []models.Appointment) []AppointmentDetail {
	details := make([]AppointmentDetail, 0, len(apts))
	for _, apt := range apts {
		details = append(details, newAppointmentDetail(apt))
	}
	return details
}

// CreateAppointment inserts a new appointment for an existing customer.
func (s *Store) CreateAppointment(apt *models.Appointment) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, "id = ?", apt.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Customer with ID %s not found", apt.CustomerID)
			}
			return err
		}

		if apt.Status == "" {
			apt.Status = "scheduled"
		}
		return tx.Create(apt).Error
	})
}

// GetAppointment retrieves an appointment with customer fields.
func (s *Store) GetAppointment(id uuid.UUID) (*AppointmentDetail, error) {
	var apt models.Appointment
	if err := s.db.Preload("Customer").First(&apt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Appointment with ID %s not found", id)
		}
		return nil, err
	}
	detail := newAppointmentDetail(apt)
	return &detail, nil
}

// ListAppointments returns all appointments ordered by date then time.
func (s *Store) ListAppointments() ([]AppointmentDetail, error) {
	var apts []models.Appointment
	if err := s.db.Preload("Customer").
		Order("appointment_date, appointment_time").
		Find(&apts).Error; err != nil {
		return nil, err
	}
	return appointmentDetails(apts), nil
}

// AppointmentsByCustomer returns a customer's appointments, date ordered.
func (s *Store) AppointmentsByCustomer(customerID uuid.UUID) ([]AppointmentDetail, error) {
	if _, err := s.GetCustomer(customerID); err != nil {
		return nil, err
	}

	var apts []models.Appointment
	if err := s.db.Preload("Customer").
		Where("customer_id = ?", customerID).
		Order("appointment_date, appointment_time").
		Find(&apts).Error; err != nil {
		return nil, err
	}
	return appointmentDetails(apts), nil
}

// AppointmentsByDate returns appointments on an exact date.
func (s *Store) AppointmentsByDate(date string) ([]AppointmentDetail, error) {
	var apts []models.Appointment
	if err := s.db.Preload("Customer").
		Where("appointment_date = ?", date).
		Order("appointment_time").
		Find(&apts).Error; err != nil {
		return nil, err
	}
	return appointmentDetails(apts), nil
}

// AppointmentsByTechnician returns a technician's appointments. The match is
// exact and case-sensitive.
func (s *Store) AppointmentsByTechnician(technician string) ([]AppointmentDetail, error) {
	var apts []models.Appointment
	if err := s.db.Preload("Customer").
		Where("technician = ?", technician).
		Order("appointment_date, appointment_time").
		Find(&apts).Error; err != nil {
		return nil, err
	}
	return appointmentDetails(apts), nil
}

// UpdateAppointmentParams carries the fields editable through a plain
// update. Status is deliberately excluded; it changes only through
// UpdateAppointmentStatus or invoice linking.
type UpdateAppointmentParams struct {
	AppointmentDate string
	AppointmentTime string
	Technician      string
	ServiceType     string
	Notes           string
}

// UpdateAppointment replaces the schedulable fields.
func (s *Store) UpdateAppointment(id uuid.UUID, params UpdateAppointmentParams) (*AppointmentDetail, error) {
	result := s.db.Model(&models.Appointment{}).Where("id = ?", id).Updates(map[string]interface{}{
		"appointment_date": params.AppointmentDate,
		"appointment_time": params.AppointmentTime,
		"technician":       params.Technician,
		"service_type":     params.ServiceType,
		"notes":            params.Notes,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, notFound("Appointment with ID %s not found", id)
	}
	return s.GetAppointment(id)
}

// UpdateAppointmentStatus moves an appointment to a new status.
func (s *Store) UpdateAppointmentStatus(id uuid.UUID, status string) (*AppointmentDetail, error) {
	result := s.db.Model(&models.Appointment{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, notFound("Appointment with ID %s not found", id)
	}
	return s.GetAppointment(id)
}

// LinkAppointmentToInvoice sets the appointment's invoice reference and
// forces its status to "completed" in one update. Both rows must exist; on
// any failure the appointment is left fully unchanged.
func (s *Store) LinkAppointmentToInvoice(appointmentID, invoiceID uuid.UUID) (*AppointmentDetail, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var apt models.Appointment
		if err := tx.First(&apt, "id = ?", appointmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Appointment with ID %s not found", appointmentID)
			}
			return err
		}

		var invoice models.Invoice
		if err := tx.First(&invoice, "id = ?", invoiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Invoice with ID %s not found", invoiceID)
			}
			return err
		}

		return tx.Model(&models.Appointment{}).Where("id = ?", appointmentID).Updates(map[string]interface{}{
			"invoice_id": invoiceID,
			"status":     "completed",
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetAppointment(appointmentID)
}

// DeleteAppointment removes an appointment unconditionally.
func (s *Store) DeleteAppointment(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Appointment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("Appointment with ID %s not found", id)
	}
	return nil
}
