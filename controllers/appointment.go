package controllers

import (
	"net/http"

	"github.com/BrianEstime1/hvac-backend/models"
	"github.com/BrianEstime1/hvac-backend/store"
	"github.com/BrianEstime1/hvac-backend/utils"
	"github.com/BrianEstime1/hvac-backend/validators"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Store *store.Store
	Log   *zap.Logger
}

func NewAppointmentController(s *store.Store, log *zap.Logger) *AppointmentController {
	return &AppointmentController{Store: s, Log: log}
}

// AppointmentInput is the JSON body for create and update. Status is not
// settable here; it changes through the status endpoint or invoice linking.
type AppointmentInput struct {
	CustomerID      uuid.UUID `json:"customer_id"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	ServiceType     string    `json:"service_type"`
	Technician      string    `json:"technician"`
	Notes           string    `json:"notes"`
}

func (ctl *AppointmentController) validate(c *gin.Context, input *AppointmentInput, requireCustomer bool) bool {
	if err := validators.Required(
		validators.Field{Name: "appointment_date", Value: input.AppointmentDate},
		validators.Field{Name: "appointment_time", Value: input.AppointmentTime},
		validators.Field{Name: "service_type", Value: input.ServiceType},
	); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return false
	}
	if requireCustomer && input.CustomerID == uuid.Nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields: customer_id")
		return false
	}

	date, err := validators.Date(input.AppointmentDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return false
	}
	input.AppointmentDate = date

	timeValue, err := validators.Time(input.AppointmentTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return false
	}
	input.AppointmentTime = timeValue
	return true
}

// CreateAppointment schedules a visit for an existing customer
func (ctl *AppointmentController) CreateAppointment(c *gin.Context) {
	var input AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !ctl.validate(c, &input, true) {
		return
	}

	apt := models.Appointment{
		CustomerID:      input.CustomerID,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		ServiceType:     input.ServiceType,
		Technician:      input.Technician,
		Notes:           input.Notes,
	}
	if err := ctl.Store.CreateAppointment(&apt); err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Appointment created successfully",
		"id":      apt.ID,
	})
}

// GetAppointments lists appointments; ?date= and ?technician= filter
func (ctl *AppointmentController) GetAppointments(c *gin.Context) {
	var (
		appointments []store.AppointmentDetail
		err          error
	)
	switch {
	case c.Query("date") != "":
		date, derr := validators.Date(c.Query("date"))
		if derr != nil {
			utils.RespondWithError(c, http.StatusBadRequest, derr.Error())
			return
		}
		appointments, err = ctl.Store.AppointmentsByDate(date)
	case c.Query("technician") != "":
		appointments, err = ctl.Store.AppointmentsByTechnician(c.Query("technician"))
	default:
		appointments, err = ctl.Store.ListAppointments()
	}
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a specific appointment by ID
func (ctl *AppointmentController) GetAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	apt, err := ctl.Store.GetAppointment(id)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, apt)
}

// UpdateAppointment replaces the schedulable fields
func (ctl *AppointmentController) UpdateAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !ctl.validate(c, &input, false) {
		return
	}

	apt, err := ctl.Store.UpdateAppointment(id, store.UpdateAppointmentParams{
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		Technician:      input.Technician,
		ServiceType:     input.ServiceType,
		Notes:           input.Notes,
	})
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, apt)
}

// UpdateAppointmentStatus moves an appointment between the four statuses
func (ctl *AppointmentController) UpdateAppointmentStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := validators.Status(input.Status, models.AppointmentStatuses); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	apt, err := ctl.Store.UpdateAppointmentStatus(id, input.Status)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, apt)
}

// LinkToInvoice attaches an invoice to the appointment and marks it
// completed
func (ctl *AppointmentController) LinkToInvoice(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input struct {
		InvoiceID uuid.UUID `json:"invoice_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.InvoiceID == uuid.Nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields: invoice_id")
		return
	}

	apt, err := ctl.Store.LinkAppointmentToInvoice(id, input.InvoiceID)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, apt)
}

// DeleteAppointment removes an appointment unconditionally
func (ctl *AppointmentController) DeleteAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctl.Store.DeleteAppointment(id); err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

// GetAppointmentUsage lists the parts consumed on an appointment
func (ctl *AppointmentController) GetAppointmentUsage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	usage, totalCost, err := ctl.Store.UsageByAppointment(id)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"usage":      usage,
		"total_cost": totalCost,
	})
}
