package handlers

import (
	"net/http"

	"hotel-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func reportDay(c *gin.Context) (domain.Date, error) {
	raw := c.Query("report_date")
	if raw == "" {
		return domain.Today(), nil
	}
	return domain.ParseDate(raw)
}

// GET /api/financial/report?report_date=YYYY-MM-DD
func (h *Handlers) GetFinancialReport(c *gin.Context) {
	day, err := reportDay(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	report, err := h.reports(c).Daily(day)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /api/financial/report/pdf?report_date=YYYY-MM-DD
func (h *Handlers) GetFinancialReportPDF(c *gin.Context) {
	day, err := reportDay(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	pdf, filename, err := h.docs(c).ReportPDF(day)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/dashboard
func (h *Handlers) GetDashboard(c *gin.Context) {
	stats, err := h.reports(c).Dashboard()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
