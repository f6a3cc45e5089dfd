package services

import (
	"fmt"

	"hotel-backend/internal/domain"
	"hotel-backend/internal/domain/models"
	"hotel-backend/internal/repositories"
	"hotel-backend/internal/utils"
)

type BookingService struct {
	BookingRepo  repositories.BookingRepository
	RoomRepo     repositories.RoomRepository
	GuestRepo    repositories.GuestRepository
	Availability AvailabilityService
	RequestID    string
}

type CreateBookingInput struct {
	GuestID         string
	RoomID          string
	CheckIn         domain.Date
	CheckOut        domain.Date
	SpecialRequests string
}

// Create validates referenced entities, checks availability, freezes the
// total and persists the booking as pending.
//
// The availability read and the insert are two store operations with no
// transaction between them; two concurrent requests for the same room and
// range can both pass the check. Accepted limitation of the current store
// model.
func (s BookingService) Create(in CreateBookingInput) (models.Booking, error) {
	if !in.CheckOut.After(in.CheckIn) {
		return models.Booking{}, domain.ValidationError{
			Field: "check_out_date",
			Msg:   "must be after check_in_date",
		}
	}

	if _, err := s.GuestRepo.GetByID(in.GuestID); err != nil {
		return models.Booking{}, err
	}
	if _, err := s.RoomRepo.GetByID(in.RoomID); err != nil {
		return models.Booking{}, err
	}

	available, err := s.Availability.IsAvailable(in.RoomID, in.CheckIn, in.CheckOut, "")
	if err != nil {
		return models.Booking{}, err
	}
	if !available {
		return models.Booking{}, domain.ConflictError{
			Resource: "room",
			Msg:      "not available for selected dates",
		}
	}

	total, err := s.Availability.Quote(in.RoomID, in.CheckIn, in.CheckOut)
	if err != nil {
		return models.Booking{}, err
	}

	booking := models.NewBooking(in.GuestID, in.RoomID, in.CheckIn, in.CheckOut, total, in.SpecialRequests)
	if err := s.BookingRepo.Insert(booking); err != nil {
		return models.Booking{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%s room_id=%s total=%s", booking.ID, booking.RoomID, utils.FormatMoney(total)))
	return booking, nil
}

func (s BookingService) Get(id string) (models.Booking, error) {
	return s.BookingRepo.GetByID(id)
}

func (s BookingService) List() ([]models.Booking, error) {
	return s.BookingRepo.List()
}

func (s BookingService) ListRange(start, end domain.Date) ([]models.Booking, error) {
	return s.BookingRepo.ListByRange(start, end)
}

// Update applies a status change and/or a special-request edit. Status
// changes run through the transition table; the resolved room side effect is
// applied after the booking row is written.
func (s BookingService) Update(id string, status *domain.BookingStatus, specialRequests *string) (models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}

	if status != nil {
		effect, err := domain.Transition(booking.Status, *status)
		if err != nil {
			return models.Booking{}, err
		}
		if *status != booking.Status {
			if err := s.BookingRepo.UpdateStatus(id, *status); err != nil {
				return models.Booking{}, err
			}
			booking.Status = *status
			if err := s.applyRoomEffect(booking.RoomID, effect); err != nil {
				utils.LogEvent(s.RequestID, "booking", "update",
					fmt.Sprintf("booking_id=%s status updated but room side effect failed: %v", id, err))
				return models.Booking{}, err
			}
			utils.LogEvent(s.RequestID, "booking", "update",
				fmt.Sprintf("booking_id=%s status=%s", id, *status))
		}
	}

	if specialRequests != nil {
		if err := s.BookingRepo.UpdateSpecialRequests(id, *specialRequests); err != nil {
			return models.Booking{}, err
		}
		booking.SpecialRequests = *specialRequests
	}

	return booking, nil
}

func (s BookingService) applyRoomEffect(roomID string, effect domain.RoomEffect) error {
	switch effect {
	case domain.RoomSetOccupied:
		return s.RoomRepo.UpdateStatus(roomID, domain.RoomOccupied)
	case domain.RoomSetCleaning:
		return s.RoomRepo.UpdateStatus(roomID, domain.RoomCleaning)
	case domain.RoomSetCleaningIfOccupied:
		room, err := s.RoomRepo.GetByID(roomID)
		if err != nil {
			return err
		}
		if room.Status == domain.RoomOccupied {
			return s.RoomRepo.UpdateStatus(roomID, domain.RoomCleaning)
		}
		return nil
	default:
		return nil
	}
}

// Delete is unconditional; unlike rooms and guests there is no active-booking
// guard on removing a booking itself.
func (s BookingService) Delete(id string) error {
	if _, err := s.BookingRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.BookingRepo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "delete", "booking_id="+id)
	return nil
}
