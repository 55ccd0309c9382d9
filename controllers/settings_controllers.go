package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kafekita/pos-app/models"
	"github.com/kafekita/pos-app/storage"
	"github.com/kafekita/pos-app/utils"
)

type SettingsController struct {
	Store *storage.Gateway
}

func NewSettingsController(store *storage.Gateway) *SettingsController {
	return &SettingsController{Store: store}
}

func (sc *SettingsController) GetSettings(c *gin.Context) {
	settings, err := sc.Store.LoadSettings()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Settings", settings)
}

// UpdateSettings replaces the singleton record. Committed orders keep
// their own snapshot, so this never changes historical totals.
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var settings models.CafeSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if settings.TaxRate < 0 || settings.DiscountRate < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("rates must not be negative"))
		return
	}
	if settings.PrinterWidth != 0 && settings.PrinterWidth != 32 && settings.PrinterWidth != 48 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("printer width must be 32 or 48"))
		return
	}

	if err := sc.Store.SaveSettings(settings); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Settings updated", settings)
}
