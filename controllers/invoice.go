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

type InvoiceController struct {
	Store *store.Store
	Log   *zap.Logger
}

func NewInvoiceController(s *store.Store, log *zap.Logger) *InvoiceController {
	return &InvoiceController{Store: s, Log: log}
}

// InvoiceInput is the JSON body for create and update. Costs arrive as
// pointers so "absent" and "zero" can be told apart: materials_cost defaults
// to 0 and tax_rate to 0.08 when not supplied.
type InvoiceInput struct {
	CustomerID      uuid.UUID  `json:"customer_id"`
	QuoteID         *uuid.UUID `json:"quote_id"`
	InvoiceNumber   string     `json:"invoice_number"`
	Date            string     `json:"date"`
	ScheduledTime   string     `json:"scheduled_time"`
	Technician      string     `json:"technician"`
	WorkPerformed   string     `json:"work_performed"`
	Description     string     `json:"description"`
	Recommendations string     `json:"recommendations"`
	LaborCost       *float64   `json:"labor_cost"`
	MaterialsCost   *float64   `json:"materials_cost"`
	TaxRate         *float64   `json:"tax_rate"`
}

type invoiceCosts struct {
	labor     float64
	materials float64
	taxRate   float64
}

func (ctl *InvoiceController) validate(c *gin.Context, input *InvoiceInput) (invoiceCosts, bool) {
	var costs invoiceCosts

	if err := validators.Required(
		validators.Field{Name: "invoice_number", Value: input.InvoiceNumber},
		validators.Field{Name: "date", Value: input.Date},
		validators.Field{Name: "technician", Value: input.Technician},
		validators.Field{Name: "work_performed", Value: input.WorkPerformed},
	); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return costs, false
	}
	if input.CustomerID == uuid.Nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields: customer_id")
		return costs, false
	}

	date, err := validators.Date(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return costs, false
	}
	input.Date = date

	costs.labor, err = validators.Numeric(input.LaborCost, "Labor cost", 0, false)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return costs, false
	}
	costs.materials, err = validators.Numeric(input.MaterialsCost, "Materials cost", 0, true)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return costs, false
	}
	if input.TaxRate == nil {
		costs.taxRate = models.DefaultTaxRate
	} else {
		costs.taxRate, err = validators.Numeric(input.TaxRate, "Tax rate", 0, false)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return costs, false
		}
	}
	return costs, true
}

// CreateInvoice creates a new invoice for an existing customer
func (ctl *InvoiceController) CreateInvoice(c *gin.Context) {
	var input InvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	costs, ok := ctl.validate(c, &input)
	if !ok {
		return
	}

	invoice := models.Invoice{
		CustomerID:      input.CustomerID,
		QuoteID:         input.QuoteID,
		InvoiceNumber:   input.InvoiceNumber,
		Date:            input.Date,
		ScheduledTime:   input.ScheduledTime,
		Technician:      input.Technician,
		WorkPerformed:   input.WorkPerformed,
		Description:     input.Description,
		Recommendations: input.Recommendations,
		LaborCost:       costs.labor,
		MaterialsCost:   costs.materials,
		TaxRate:         costs.taxRate,
	}
	if err := ctl.Store.CreateInvoice(&invoice); err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Invoice created successfully",
		"id":             invoice.ID,
		"invoice_number": invoice.InvoiceNumber,
	})
}

// GetInvoices retrieves all invoices with customer info and derived totals
func (ctl *InvoiceController) GetInvoices(c *gin.Context) {
	invoices, err := ctl.Store.ListInvoices()
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// GetInvoice retrieves a specific invoice by ID
func (ctl *InvoiceController) GetInvoice(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	invoice, err := ctl.Store.GetInvoice(id)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoice replaces all editable invoice fields
func (ctl *InvoiceController) UpdateInvoice(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input InvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	costs, ok := ctl.validate(c, &input)
	if !ok {
		return
	}

	invoice, err := ctl.Store.UpdateInvoice(id, store.UpdateInvoiceParams{
		InvoiceNumber:   input.InvoiceNumber,
		CustomerID:      input.CustomerID,
		Date:            input.Date,
		ScheduledTime:   input.ScheduledTime,
		Technician:      input.Technician,
		WorkPerformed:   input.WorkPerformed,
		Description:     input.Description,
		Recommendations: input.Recommendations,
		LaborCost:       costs.labor,
		MaterialsCost:   costs.materials,
		TaxRate:         costs.taxRate,
	})
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoiceStatusInput is the JSON body for status transitions.
type UpdateInvoiceStatusInput struct {
	Status        string `json:"status"`
	PaidDate      string `json:"paid_date"`
	PaymentMethod string `json:"payment_method"`
}

// UpdateInvoiceStatus moves an invoice between draft/sent/paid/cancelled
func (ctl *InvoiceController) UpdateInvoiceStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input UpdateInvoiceStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := validators.Status(input.Status, models.InvoiceStatuses); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if input.PaidDate != "" {
		if _, err := validators.Date(input.PaidDate); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	invoice, err := ctl.Store.UpdateInvoiceStatus(id, input.Status, input.PaidDate, input.PaymentMethod)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// SignatureInput is the JSON body for capturing a customer signature.
type SignatureInput struct {
	SignatureData       string `json:"signature_data"`
	AuthorizationStatus string `json:"authorization_status"`
}

// SetInvoiceSignature stores the customer's signature with a server
// timestamp
func (ctl *InvoiceController) SetInvoiceSignature(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input SignatureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := validators.Required(
		validators.Field{Name: "signature_data", Value: input.SignatureData},
	); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if input.AuthorizationStatus == "" {
		input.AuthorizationStatus = "approved"
	}

	invoice, err := ctl.Store.SetInvoiceSignature(id, input.SignatureData, input.AuthorizationStatus)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice removes an invoice unconditionally
func (ctl *InvoiceController) DeleteInvoice(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctl.Store.DeleteInvoice(id); err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}

// GetInvoiceUsage lists the parts consumed on an invoice
func (ctl *InvoiceController) GetInvoiceUsage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	usage, totalCost, err := ctl.Store.UsageByInvoice(id)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"usage":      usage,
		"total_cost": totalCost,
	})
}
