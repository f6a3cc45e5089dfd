package models

import (
	"time"

	"hotel-backend/internal/domain"

	"github.com/google/uuid"
)

// Invoice is an immutable snapshot of a booking's financial position at
// generation time. Payments are embedded by value; later payments do not
// appear on an already-generated invoice. Regenerating for the same booking
// creates a new invoice with a new id.
type Invoice struct {
	ID           string      `json:"id"`
	BookingID    string      `json:"booking_id"`
	GuestName    string      `json:"guest_name"`
	RoomNumber   string      `json:"room_number"`
	CheckInDate  domain.Date `json:"check_in_date"`
	CheckOutDate domain.Date `json:"check_out_date"`
	TotalAmount  float64     `json:"total_amount"`
	AdvancePaid  float64     `json:"advance_paid"`
	BalanceDue   float64     `json:"balance_due"`
	Payments     []Payment   `json:"payments"`
	CreatedAt    time.Time   `json:"created_at"`
}

func NewInvoice(booking Booking, guest Guest, room Room, payments []Payment) Invoice {
	var paid, advance float64
	for _, p := range payments {
		paid += p.Amount
		if p.IsAdvance {
			advance += p.Amount
		}
	}
	if payments == nil {
		payments = []Payment{}
	}
	return Invoice{
		ID:           uuid.NewString(),
		BookingID:    booking.ID,
		GuestName:    guest.Name,
		RoomNumber:   room.RoomNumber,
		CheckInDate:  booking.CheckInDate,
		CheckOutDate: booking.CheckOutDate,
		TotalAmount:  booking.TotalAmount,
		AdvancePaid:  advance,
		BalanceDue:   booking.TotalAmount - paid,
		Payments:     payments,
		CreatedAt:    time.Now().UTC(),
	}
}
