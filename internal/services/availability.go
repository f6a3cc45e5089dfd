package services

import (
	"hotel-backend/internal/domain"
	"hotel-backend/internal/repositories"
)

// AvailabilityService answers whether a room can take a stay for a date range
// and quotes the charge for it. Reads only; never mutates state.
type AvailabilityService struct {
	RoomRepo    repositories.RoomRepository
	BookingRepo repositories.BookingRepository
}

// IsAvailable reports whether no blocking booking overlaps [checkIn,
// checkOut) on the room. Intervals are half-open: a stay ending the day
// another starts does not conflict. excludeBookingID, when non-empty, removes
// that booking from consideration so an existing booking can be re-validated
// against its own dates.
func (s AvailabilityService) IsAvailable(roomID string, checkIn, checkOut domain.Date, excludeBookingID string) (bool, error) {
	blocking, err := s.BookingRepo.ListBlockingForRoom(roomID)
	if err != nil {
		return false, err
	}
	for _, b := range blocking {
		if excludeBookingID != "" && b.ID == excludeBookingID {
			continue
		}
		if domain.Overlaps(checkIn, checkOut, b.CheckInDate, b.CheckOutDate) {
			return false, nil
		}
	}
	return true, nil
}

// Quote computes nights * price for the room. The result is frozen onto the
// booking at creation; later room price changes never touch existing
// bookings.
func (s AvailabilityService) Quote(roomID string, checkIn, checkOut domain.Date) (float64, error) {
	room, err := s.RoomRepo.GetByID(roomID)
	if err != nil {
		return 0, err
	}
	nights := checkIn.DaysUntil(checkOut)
	return float64(nights) * room.PricePerNight, nil
}
