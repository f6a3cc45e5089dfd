package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// POST /api/invoices/generate/:booking_id
func (h *Handlers) GenerateInvoice(c *gin.Context) {
	invoice, err := h.invoices(c).Generate(c.Param("booking_id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// GET /api/invoices/:id
func (h *Handlers) GetInvoice(c *gin.Context) {
	invoice, err := h.invoices(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// GET /api/invoices/:id/pdf
func (h *Handlers) GetInvoicePDF(c *gin.Context) {
	pdf, filename, err := h.docs(c).InvoicePDF(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
