package handlers

import (
	"net/http"
	"time"

	"github.com/Witcher21/GNS-POS/internal/apperr"
	"github.com/Witcher21/GNS-POS/internal/database"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reports *database.ReportStore
}

func NewReportHandler(reports *database.ReportStore) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// --- GET /api/reports/z?date=YYYY-MM-DD ---
// Without a date this reports today. A date with no invoices comes back with
// zeroed aggregates, never an error.
func (h *ReportHandler) ZReport(c *gin.Context) {
	date := c.Query("date")
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			fail(c, apperr.Validation("date must be YYYY-MM-DD"))
			return
		}
	}

	report, err := h.reports.GetZReport(date)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, report)
}
