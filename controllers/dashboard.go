package controllers

import (
	"net/http"

	"github.com/BrianEstime1/hvac-backend/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardController struct {
	Store *store.Store
	Log   *zap.Logger
}

func NewDashboardController(s *store.Store, log *zap.Logger) *DashboardController {
	return &DashboardController{Store: s, Log: log}
}

// GetDashboardOverview returns entity counts and inventory rollups
func (ctl *DashboardController) GetDashboardOverview(c *gin.Context) {
	stats, err := ctl.Store.GetStats()
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
