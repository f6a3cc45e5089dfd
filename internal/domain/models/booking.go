package models

import (
	"time"

	"hotel-backend/internal/domain"

	"github.com/google/uuid"
)

type Booking struct {
	ID              string               `json:"id"`
	GuestID         string               `json:"guest_id"`
	RoomID          string               `json:"room_id"`
	CheckInDate     domain.Date          `json:"check_in_date"`
	CheckOutDate    domain.Date          `json:"check_out_date"`
	Status          domain.BookingStatus `json:"status"`
	TotalAmount     float64              `json:"total_amount"`
	SpecialRequests string               `json:"special_requests,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

func NewBooking(guestID, roomID string, checkIn, checkOut domain.Date, totalAmount float64, specialRequests string) Booking {
	return Booking{
		ID:              uuid.NewString(),
		GuestID:         guestID,
		RoomID:          roomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Status:          domain.BookingPending,
		TotalAmount:     totalAmount,
		SpecialRequests: specialRequests,
		CreatedAt:       time.Now().UTC(),
	}
}
