package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shule-labs/shule-api/internal/service"
	"github.com/shule-labs/shule-api/pkg/response"
)

// ReportHandler exposes tabular export endpoints.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// StudentsCSV godoc
// @Summary Student roster export
// @Tags Reports
// @Produce text/csv
// @Success 200 {string} string "CSV body"
// @Router /reports/students.csv [get]
func (h *ReportHandler) StudentsCSV(c *gin.Context) {
	out, err := h.reports.StudentsRoster(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="students.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", out)
}

// PaymentsPDF godoc
// @Summary Payments statement export
// @Tags Reports
// @Produce application/pdf
// @Success 200 {string} string "PDF body"
// @Router /reports/payments.pdf [get]
func (h *ReportHandler) PaymentsPDF(c *gin.Context) {
	out, err := h.reports.PaymentsStatement(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="payments.pdf"`)
	c.Data(http.StatusOK, "application/pdf", out)
}
