package handlers

import (
	"net/http"

	"hotel-backend/internal/domain"
	"hotel-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type createBookingRequest struct {
	GuestID         string `json:"guest_id"`
	RoomID          string `json:"room_id"`
	CheckInDate     string `json:"check_in_date"`
	CheckOutDate    string `json:"check_out_date"`
	SpecialRequests string `json:"special_requests"`
}

// POST /api/bookings
func (h *Handlers) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	checkIn, err := domain.ParseDate(req.CheckInDate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	checkOut, err := domain.ParseDate(req.CheckOutDate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	booking, err := h.bookings(c).Create(services.CreateBookingInput{
		GuestID:         req.GuestID,
		RoomID:          req.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GET /api/bookings
func (h *Handlers) GetBookings(c *gin.Context) {
	bookings, err := h.bookings(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/range?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
func (h *Handlers) GetBookingsByRange(c *gin.Context) {
	start, err := domain.ParseDate(c.Query("start_date"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	end, err := domain.ParseDate(c.Query("end_date"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	bookings, err := h.bookings(c).ListRange(start, end)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id
func (h *Handlers) GetBooking(c *gin.Context) {
	booking, err := h.bookings(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

type updateBookingRequest struct {
	Status          *string `json:"status"`
	SpecialRequests *string `json:"special_requests"`
}

// PUT /api/bookings/:id
func (h *Handlers) UpdateBooking(c *gin.Context) {
	var req updateBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var status *domain.BookingStatus
	if req.Status != nil {
		parsed, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		status = &parsed
	}

	booking, err := h.bookings(c).Update(c.Param("id"), status, req.SpecialRequests)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// DELETE /api/bookings/:id
func (h *Handlers) DeleteBooking(c *gin.Context) {
	if err := h.bookings(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// GET /api/bookings/:id/balance
func (h *Handlers) GetBookingBalance(c *gin.Context) {
	balance, err := h.payments(c).Balance(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

type checkoutRequest struct {
	PaymentType *string  `json:"payment_type"`
	Amount      *float64 `json:"amount"`
	Description string   `json:"description"`
}

// POST /api/bookings/:id/checkout
//
// Body is optional; when it carries an amount it is recorded as the final
// settlement before the booking is closed out.
func (h *Handlers) CheckoutBooking(c *gin.Context) {
	var req checkoutRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondError(c, http.StatusBadRequest, "invalid payload", err)
			return
		}
	}

	var final *services.FinalPayment
	if req.Amount != nil {
		paymentType := domain.PaymentCash
		if req.PaymentType != nil {
			parsed, err := domain.ParsePaymentType(*req.PaymentType)
			if err != nil {
				RespondDomainError(c, err)
				return
			}
			paymentType = parsed
		}
		final = &services.FinalPayment{
			Type:        paymentType,
			Amount:      *req.Amount,
			Description: req.Description,
		}
	}

	result, err := h.payments(c).Checkout(c.Param("id"), final)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
