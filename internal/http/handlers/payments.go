package handlers

import (
	"net/http"

	"hotel-backend/internal/domain"
	"hotel-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type createPaymentRequest struct {
	BookingID   string  `json:"booking_id"`
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"payment_type"`
	Description string  `json:"description"`
	IsAdvance   bool    `json:"is_advance"`
}

// POST /api/payments
func (h *Handlers) CreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	paymentType, err := domain.ParsePaymentType(req.PaymentType)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	payment, err := h.payments(c).Record(services.RecordPaymentInput{
		BookingID:   req.BookingID,
		Amount:      req.Amount,
		Type:        paymentType,
		Description: req.Description,
		IsAdvance:   req.IsAdvance,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// GET /api/payments
func (h *Handlers) GetPayments(c *gin.Context) {
	payments, err := h.payments(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GET /api/payments/booking/:booking_id
func (h *Handlers) GetPaymentsByBooking(c *gin.Context) {
	payments, err := h.payments(c).ListByBooking(c.Param("booking_id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
