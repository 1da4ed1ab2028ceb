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

type UsageController struct {
	Store *store.Store
	Log   *zap.Logger
}

func NewUsageController(s *store.Store, log *zap.Logger) *UsageController {
	return &UsageController{Store: s, Log: log}
}

// RecordUsageInput is the JSON body for recording parts consumption.
type RecordUsageInput struct {
	InventoryID   uuid.UUID  `json:"inventory_id"`
	AppointmentID *uuid.UUID `json:"appointment_id"`
	InvoiceID     *uuid.UUID `json:"invoice_id"`
	QuantityUsed  *int       `json:"quantity_used"`
	DateUsed      string     `json:"date_used"`
	Notes         string     `json:"notes"`
}

// RecordUsage consumes stock against a job; the decrement and the log row
// are applied atomically or not at all
func (ctl *UsageController) RecordUsage(c *gin.Context) {
	var input RecordUsageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.InventoryID == uuid.Nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields: inventory_id")
		return
	}
	if input.QuantityUsed == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields: quantity_used")
		return
	}
	if *input.QuantityUsed < 1 {
		utils.RespondWithError(c, http.StatusBadRequest, "Quantity used must be at least 1")
		return
	}

	dateUsed, err := validators.Date(input.DateUsed)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	usage := models.InventoryUsage{
		InventoryID:   input.InventoryID,
		AppointmentID: input.AppointmentID,
		InvoiceID:     input.InvoiceID,
		QuantityUsed:  *input.QuantityUsed,
		DateUsed:      dateUsed,
		Notes:         input.Notes,
	}
	item, err := ctl.Store.RecordUsage(&usage)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":            "Usage recorded successfully",
		"id":                 usage.ID,
		"remaining_quantity": item.Quantity,
	})
}
