package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kafekita/pos-app/services"
	"github.com/kafekita/pos-app/storage"
	"github.com/kafekita/pos-app/utils"
)

// respondServiceError maps the engine's failure conditions onto HTTP
// codes. Every condition here is an expected, recoverable outcome.
func respondServiceError(c *gin.Context, err error) {
	var stockErr *services.InsufficientStockError
	var persistErr *storage.PersistenceError

	switch {
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, utils.JSONResponse{
			Status:  false,
			Message: stockErr.Error(),
			Data:    gin.H{"shortages": stockErr.Shortages},
		})
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrProductNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, storage.ErrMalformedBackup):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInsufficientPayment),
		errors.Is(err, services.ErrInvalidPayment):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.As(err, &persistErr):
		utils.ErrorLogger.Printf("persistence failure: %v", persistErr)
		utils.RespondError(c, http.StatusInternalServerError, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
