package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kafekita/pos-app/services"
	"github.com/kafekita/pos-app/storage"
	"github.com/kafekita/pos-app/utils"
)

type ReportController struct {
	Svc *services.ReportService
}

func NewReportController(store *storage.Gateway) *ReportController {
	return &ReportController{Svc: services.NewReportService(store)}
}

// GetSummary aggregates sales for an optional date range. Dates are
// "2006-01-02" in local time; end is inclusive (the whole day counts).
func (rc *ReportController) GetSummary(c *gin.Context) {
	var from, to time.Time

	if s := c.Query("start"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid start date"))
			return
		}
		from = t
	}
	if s := c.Query("end"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid end date"))
			return
		}
		to = t.AddDate(0, 0, 1)
	}

	summary, err := rc.Svc.Summary(from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Sales summary", summary)
}
