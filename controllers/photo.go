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

type PhotoController struct {
	Store *store.Store
	Log   *zap.Logger
}

func NewPhotoController(s *store.Store, log *zap.Logger) *PhotoController {
	return &PhotoController{Store: s, Log: log}
}

// AddPhoto attaches a base64 photo to an invoice
func (ctl *PhotoController) AddPhoto(c *gin.Context) {
	invoiceID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input struct {
		PhotoData string `json:"photo_data"`
		Caption   string `json:"caption"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := validators.Required(
		validators.Field{Name: "photo_data", Value: input.PhotoData},
	); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	photo := models.JobPhoto{
		InvoiceID: invoiceID,
		PhotoData: input.PhotoData,
		Caption:   input.Caption,
	}
	if err := ctl.Store.AddPhoto(&photo); err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Photo added successfully",
		"id":      photo.ID,
	})
}

// GetInvoicePhotos lists an invoice's photos
func (ctl *PhotoController) GetInvoicePhotos(c *gin.Context) {
	invoiceID, ok := parseID(c, "id")
	if !ok {
		return
	}

	photos, err := ctl.Store.PhotosByInvoice(invoiceID)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

// DeletePhoto removes a single photo by id
func (ctl *PhotoController) DeletePhoto(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctl.Store.DeletePhoto(id); err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted successfully"})
}
