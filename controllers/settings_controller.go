package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"royal-palace-backend/config"
	"royal-palace-backend/utils"
)

// SettingsController serves the static hotel profile from configuration.
type SettingsController struct {
	Hotel config.HotelProfile
}

func NewSettingsController(hotel config.HotelProfile) *SettingsController {
	return &SettingsController{Hotel: hotel}
}

// GetHotelSettings (GET /api/settings/hotel)
func (ctrl *SettingsController) GetHotelSettings(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Hotel)
}
