package models

import (
	"time"

	"hotel-backend/internal/domain"

	"github.com/google/uuid"
)

type Room struct {
	ID            string            `json:"id"`
	RoomNumber    string            `json:"room_number"`
	RoomType      domain.RoomType   `json:"room_type"`
	PricePerNight float64           `json:"price_per_night"`
	Status        domain.RoomStatus `json:"status"`
	Description   string            `json:"description,omitempty"`
	MaxOccupancy  int               `json:"max_occupancy"`
	Amenities     []string          `json:"amenities"`
	CreatedAt     time.Time         `json:"created_at"`
}

// RoomPatch supports partial updates via field presence.
type RoomPatch struct {
	RoomType      *domain.RoomType
	PricePerNight *float64
	Status        *domain.RoomStatus
	Description   *string
	MaxOccupancy  *int
	Amenities     *[]string
}

func NewRoom(number string, roomType domain.RoomType, price float64, description string, maxOccupancy int, amenities []string) Room {
	if maxOccupancy <= 0 {
		maxOccupancy = 2
	}
	if amenities == nil {
		amenities = []string{}
	}
	return Room{
		ID:            uuid.NewString(),
		RoomNumber:    number,
		RoomType:      roomType,
		PricePerNight: price,
		Status:        domain.RoomAvailable,
		Description:   description,
		MaxOccupancy:  maxOccupancy,
		Amenities:     amenities,
		CreatedAt:     time.Now().UTC(),
	}
}
