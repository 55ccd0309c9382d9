package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kafekita/pos-app/services"
	"github.com/kafekita/pos-app/storage"
	"github.com/kafekita/pos-app/utils"
)

type StockController struct {
	Svc *services.StockService
}

func NewStockController(store *storage.Gateway) *StockController {
	return &StockController{Svc: services.NewStockService(store)}
}

// ResetStock applies the daily baseline to every flagged product. An
// empty result is informational, not a failure.
func (sc *StockController) ResetStock(c *gin.Context) {
	products, err := sc.Svc.ResetStock()
	if err != nil {
		if errors.Is(err, services.ErrNothingToReset) {
			utils.RespondJSON(c, http.StatusOK, err.Error(), gin.H{"reset": false})
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Println("Stock reset applied")
	utils.RespondJSON(c, http.StatusOK, "Stock reset applied", gin.H{
		"reset":    true,
		"products": products,
	})
}
