package controllers

import (
	"net/http"

	"github.com/BrianEstime1/hvac-backend/models"
	"github.com/BrianEstime1/hvac-backend/store"
	"github.com/BrianEstime1/hvac-backend/utils"
	"github.com/BrianEstime1/hvac-backend/validators"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CustomerController struct {
	Store *store.Store
	Log   *zap.Logger
}

func NewCustomerController(s *store.Store, log *zap.Logger) *CustomerController {
	return &CustomerController{Store: s, Log: log}
}

// CustomerInput is the JSON body for both create and update. Updates are a
// full replace; callers must resend every field.
type CustomerInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (ctl *CustomerController) validate(c *gin.Context, input *CustomerInput) bool {
	if err := validators.Required(
		validators.Field{Name: "name", Value: input.Name},
		validators.Field{Name: "phone", Value: input.Phone},
	); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return false
	}

	phone, err := validators.Phone(input.Phone)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return false
	}
	input.Phone = phone
	return true
}

// CreateCustomer creates a new customer
func (ctl *CustomerController) CreateCustomer(c *gin.Context) {
	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !ctl.validate(c, &input) {
		return
	}

	customer := models.Customer{
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := ctl.Store.CreateCustomer(&customer); err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Customer created successfully",
		"id":      customer.ID,
	})
}

// GetCustomers retrieves all customers, or searches by name with ?q=
func (ctl *CustomerController) GetCustomers(c *gin.Context) {
	var (
		customers []models.Customer
		err       error
	)
	if term := c.Query("q"); term != "" {
		customers, err = ctl.Store.SearchCustomers(term)
	} else {
		customers, err = ctl.Store.ListCustomers()
	}
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func (ctl *CustomerController) GetCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	customer, err := ctl.Store.GetCustomer(id)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer replaces a customer's mutable fields
func (ctl *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !ctl.validate(c, &input) {
		return
	}

	customer, err := ctl.Store.UpdateCustomer(id, input.Name, input.Phone, input.Address)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer unless invoices or quotes reference it
func (ctl *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctl.Store.DeleteCustomer(id); err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// GetCustomerInvoices lists a customer's invoices with derived totals
func (ctl *CustomerController) GetCustomerInvoices(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	invoices, err := ctl.Store.ListInvoicesByCustomer(id)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"invoice_count": len(invoices),
		"invoices":      invoices,
	})
}

// GetCustomerAppointments lists a customer's appointments
func (ctl *CustomerController) GetCustomerAppointments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	appointments, err := ctl.Store.AppointmentsByCustomer(id)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}
