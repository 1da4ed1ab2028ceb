// Package controllers holds the thin HTTP layer: bind the request, run the
// validators, call the store, translate the outcome to a status code.
package controllers

import (
	"errors"
	"net/http"

	"github.com/BrianEstime1/hvac-backend/store"
	"github.com/BrianEstime1/hvac-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// parseID reads the :id path parameter. A malformed id responds 400 and
// returns false.
func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

// respondStoreError maps the store's error taxonomy onto HTTP statuses.
// Validation, not-found, conflict and insufficient-stock outcomes carry
// their own messages; anything else is a storage failure, logged with
// context and surfaced as a generic error.
func respondStoreError(c *gin.Context, log *zap.Logger, err error) {
	var notFound *store.NotFoundError
	var conflictErr *store.ConflictError
	var stockErr *store.InsufficientStockError

	switch {
	case errors.As(err, &notFound):
		utils.RespondWithError(c, http.StatusNotFound, notFound.Message)
	case errors.As(err, &conflictErr):
		utils.RespondWithError(c, http.StatusConflict, conflictErr.Message)
	case errors.As(err, &stockErr):
		utils.RespondWithError(c, http.StatusBadRequest, stockErr.Error())
	default:
		log.Error("storage error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}
