package models

import (
	"time"

	"hotel-backend/internal/domain"

	"github.com/google/uuid"
)

// Payment is append-only; workflow logic never mutates or deletes one.
type Payment struct {
	ID          string               `json:"id"`
	BookingID   string               `json:"booking_id"`
	PaymentType domain.PaymentType   `json:"payment_type"`
	Amount      float64              `json:"amount"`
	PaymentDate time.Time            `json:"payment_date"`
	Status      domain.PaymentStatus `json:"status"`
	Description string               `json:"description,omitempty"`
	IsAdvance   bool                 `json:"is_advance"`
}

func NewPayment(bookingID string, paymentType domain.PaymentType, amount float64, description string, isAdvance bool) Payment {
	return Payment{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		PaymentType: paymentType,
		Amount:      amount,
		PaymentDate: time.Now().UTC(),
		Status:      domain.PaymentCompleted,
		Description: description,
		IsAdvance:   isAdvance,
	}
}
