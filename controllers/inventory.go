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

type InventoryController struct {
	Store *store.Store
	Log   *zap.Logger
}

func NewInventoryController(s *store.Store, log *zap.Logger) *InventoryController {
	return &InventoryController{Store: s, Log: log}
}

// ItemInput is the JSON body for create and update.
type ItemInput struct {
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	SKU               *string  `json:"sku"`
	Quantity          *int     `json:"quantity"`
	Unit              string   `json:"unit"`
	CostPerUnit       *float64 `json:"cost_per_unit"`
	LowStockThreshold *int     `json:"low_stock_threshold"`
	Supplier          string   `json:"supplier"`
	Notes             string   `json:"notes"`
}

func (ctl *InventoryController) validate(c *gin.Context, input *ItemInput) bool {
	if err := validators.Required(
		validators.Field{Name: "name", Value: input.Name},
		validators.Field{Name: "category", Value: input.Category},
		validators.Field{Name: "unit", Value: input.Unit},
	); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return false
	}

	category, err := validators.Category(input.Category, models.InventoryCategories)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return false
	}
	input.Category = category

	unit, err := validators.Unit(input.Unit, models.InventoryUnits)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return false
	}
	input.Unit = unit

	if input.Quantity != nil && *input.Quantity < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Quantity must be at least 0")
		return false
	}
	if _, err := validators.Numeric(input.CostPerUnit, "Cost per unit", 0, true); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return false
	}
	if input.LowStockThreshold != nil && *input.LowStockThreshold < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Low stock threshold must be at least 0")
		return false
	}
	return true
}

// CreateItem adds a new inventory item
func (ctl *InventoryController) CreateItem(c *gin.Context) {
	var input ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !ctl.validate(c, &input) {
		return
	}

	item := models.InventoryItem{
		Name:              input.Name,
		Category:          input.Category,
		SKU:               input.SKU,
		Unit:              input.Unit,
		Supplier:          input.Supplier,
		Notes:             input.Notes,
		LowStockThreshold: models.DefaultLowStockThreshold,
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.CostPerUnit != nil {
		item.CostPerUnit = *input.CostPerUnit
	}
	if input.LowStockThreshold != nil {
		item.LowStockThreshold = *input.LowStockThreshold
	}

	if err := ctl.Store.CreateItem(&item); err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Inventory item created successfully",
		"id":      item.ID,
	})
}

// GetItems lists inventory; ?category= filters by normalized category
func (ctl *InventoryController) GetItems(c *gin.Context) {
	var (
		items []models.InventoryItem
		err   error
	)
	if raw := c.Query("category"); raw != "" {
		category, cerr := validators.Category(raw, models.InventoryCategories)
		if cerr != nil {
			utils.RespondWithError(c, http.StatusBadRequest, cerr.Error())
			return
		}
		items, err = ctl.Store.ItemsByCategory(category)
	} else {
		items, err = ctl.Store.ListItems()
	}
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItem retrieves a specific item with derived fields
func (ctl *InventoryController) GetItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := ctl.Store.GetItem(id)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateItem replaces all editable item fields
func (ctl *InventoryController) UpdateItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !ctl.validate(c, &input) {
		return
	}

	params := store.UpdateItemParams{
		Name:              input.Name,
		Category:          input.Category,
		SKU:               input.SKU,
		Unit:              input.Unit,
		Supplier:          input.Supplier,
		Notes:             input.Notes,
		LowStockThreshold: models.DefaultLowStockThreshold,
	}
	if input.Quantity != nil {
		params.Quantity = *input.Quantity
	}
	if input.CostPerUnit != nil {
		params.CostPerUnit = *input.CostPerUnit
	}
	if input.LowStockThreshold != nil {
		params.LowStockThreshold = *input.LowStockThreshold
	}

	item, err := ctl.Store.UpdateItem(id, params)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem removes an inventory item unconditionally
func (ctl *InventoryController) DeleteItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctl.Store.DeleteItem(id); err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted successfully"})
}

// AdjustQuantity applies a signed delta, rejecting results below zero
func (ctl *InventoryController) AdjustQuantity(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input struct {
		Delta *int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Delta == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields: delta")
		return
	}

	item, err := ctl.Store.AdjustQuantity(id, *input.Delta)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetLowStock lists items at or below their low-stock threshold
func (ctl *InventoryController) GetLowStock(c *gin.Context) {
	items, err := ctl.Store.LowStock()
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// SearchItems matches name or SKU, case-insensitive
func (ctl *InventoryController) SearchItems(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields: q")
		return
	}

	items, err := ctl.Store.SearchItems(term)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetTotalValue returns the valuation of all stock on hand
func (ctl *InventoryController) GetTotalValue(c *gin.Context) {
	total, err := ctl.Store.TotalInventoryValue()
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_value": total})
}

// GetItemUsage returns an item's usage history, most recent first
func (ctl *InventoryController) GetItemUsage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	usage, err := ctl.Store.UsageHistoryByItem(id)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, usage)
}
