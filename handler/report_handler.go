package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pigmint/ingestion-service/service"
)

// ReportHandler handles spending report requests.
type ReportHandler struct {
	reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// SpendingSummary handles GET /api/v1/reports/summary.
func (h *ReportHandler) SpendingSummary(c *gin.Context) {
	summary, err := h.reports.SpendingSummary()
	if err != nil {
		sendError(c, http.StatusInternalServerError, "failed to build spending summary", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
