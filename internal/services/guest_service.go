package services

import (
	"hotel-backend/internal/domain"
	"hotel-backend/internal/domain/models"
	"hotel-backend/internal/repositories"
	"hotel-backend/internal/utils"
)

type GuestService struct {
	GuestRepo   repositories.GuestRepository
	BookingRepo repositories.BookingRepository
	RequestID   string
}

func (s GuestService) Create(in models.GuestInput) (models.Guest, error) {
	if in.Name == "" {
		return models.Guest{}, domain.ValidationError{Field: "name", Msg: "required"}
	}
	if in.Email == "" {
		return models.Guest{}, domain.ValidationError{Field: "email", Msg: "required"}
	}

	taken, err := s.GuestRepo.EmailExists(in.Email, "")
	if err != nil {
		return models.Guest{}, err
	}
	if taken {
		return models.Guest{}, domain.ConflictError{Resource: "guest", Msg: "guest with this email already exists"}
	}

	guest := models.NewGuest(in)
	if err := s.GuestRepo.Insert(guest); err != nil {
		return models.Guest{}, err
	}

	utils.LogEvent(s.RequestID, "guest", "create", "guest_id="+guest.ID)
	return guest, nil
}

func (s GuestService) Get(id string) (models.Guest, error) {
	return s.GuestRepo.GetByID(id)
}

func (s GuestService) List() ([]models.Guest, error) {
	return s.GuestRepo.List()
}

func (s GuestService) Search(query string) ([]models.Guest, error) {
	return s.GuestRepo.Search(query)
}

func (s GuestService) Update(id string, in models.GuestInput) (models.Guest, error) {
	if _, err := s.GuestRepo.GetByID(id); err != nil {
		return models.Guest{}, err
	}

	taken, err := s.GuestRepo.EmailExists(in.Email, id)
	if err != nil {
		return models.Guest{}, err
	}
	if taken {
		return models.Guest{}, domain.ConflictError{Resource: "guest", Msg: "guest with this email already exists"}
	}

	if err := s.GuestRepo.Update(id, in); err != nil {
		return models.Guest{}, err
	}
	return s.GuestRepo.GetByID(id)
}

// Delete refuses to remove a guest with a confirmed or checked-in booking.
func (s GuestService) Delete(id string) error {
	if _, err := s.GuestRepo.GetByID(id); err != nil {
		return err
	}
	blocked, err := s.BookingRepo.HasBlockingForGuest(id)
	if err != nil {
		return err
	}
	if blocked {
		return domain.ConflictError{Resource: "guest", Msg: "cannot delete guest with active bookings"}
	}
	if err := s.GuestRepo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "guest", "delete", "guest_id="+id)
	return nil
}
