package controllers

import (
	"net/http"
	"strings"

	"github.com/BrianEstime1/hvac-backend/models"
	"github.com/BrianEstime1/hvac-backend/store"
	"github.com/BrianEstime1/hvac-backend/utils"
	"github.com/BrianEstime1/hvac-backend/validators"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type QuoteController struct {
	Store *store.Store
	Log   *zap.Logger
}

func NewQuoteController(s *store.Store, log *zap.Logger) *QuoteController {
	return &QuoteController{Store: s, Log: log}
}

// QuoteInput is the JSON body for create and update.
type QuoteInput struct {
	CustomerID  uuid.UUID `json:"customer_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Total       *float64  `json:"total"`
	Status      string    `json:"status"`
}

func (ctl *QuoteController) validate(c *gin.Context, input *QuoteInput) (float64, bool) {
	input.Title = strings.TrimSpace(input.Title)
	if err := validators.Required(
		validators.Field{Name: "title", Value: input.Title},
	); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return 0, false
	}

	total, err := validators.Numeric(input.Total, "Total", 0, false)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return 0, false
	}

	if input.Status == "" {
		input.Status = "draft"
	}
	if err := validators.Status(input.Status, models.QuoteStatuses); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return total, true
}

// CreateQuote creates a proposal for an existing customer
func (ctl *QuoteController) CreateQuote(c *gin.Context) {
	var input QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.CustomerID == uuid.Nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields: customer_id")
		return
	}
	total, ok := ctl.validate(c, &input)
	if !ok {
		return
	}

	quote := models.Quote{
		CustomerID:  input.CustomerID,
		Title:       input.Title,
		Description: input.Description,
		Total:       total,
		Status:      input.Status,
	}
	if err := ctl.Store.CreateQuote(&quote); err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Quote created successfully",
		"id":      quote.ID,
	})
}

// GetQuotes lists all quotes, newest first
func (ctl *QuoteController) GetQuotes(c *gin.Context) {
	quotes, err := ctl.Store.ListQuotes()
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}

// GetQuote retrieves a specific quote by ID
func (ctl *QuoteController) GetQuote(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	quote, err := ctl.Store.GetQuote(id)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// UpdateQuote replaces the editable quote fields
func (ctl *QuoteController) UpdateQuote(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	total, valid := ctl.validate(c, &input)
	if !valid {
		return
	}

	quote, err := ctl.Store.UpdateQuote(id, store.UpdateQuoteParams{
		Title:       input.Title,
		Description: input.Description,
		Total:       total,
		Status:      input.Status,
	})
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// DeleteQuote removes a quote unless an invoice references it
func (ctl *QuoteController) DeleteQuote(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctl.Store.DeleteQuote(id); err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quote deleted successfully"})
}
