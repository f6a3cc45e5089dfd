package services

import (
	"hotel-backend/internal/domain"
	"hotel-backend/internal/domain/models"
	"hotel-backend/internal/repositories"
	"hotel-backend/internal/utils"
)

type RoomService struct {
	RoomRepo    repositories.RoomRepository
	BookingRepo repositories.BookingRepository
	RequestID   string
}

type CreateRoomInput struct {
	RoomNumber    string
	RoomType      domain.RoomType
	PricePerNight float64
	Description   string
	MaxOccupancy  int
	Amenities     []string
}

func (s RoomService) Create(in CreateRoomInput) (models.Room, error) {
	if in.RoomNumber == "" {
		return models.Room{}, domain.ValidationError{Field: "room_number", Msg: "required"}
	}
	if in.PricePerNight < 0 {
		return models.Room{}, domain.ValidationError{Field: "price_per_night", Msg: "must not be negative"}
	}

	taken, err := s.RoomRepo.NumberExists(in.RoomNumber, "")
	if err != nil {
		return models.Room{}, err
	}
	if taken {
		return models.Room{}, domain.ConflictError{Resource: "room", Msg: "room number already exists"}
	}

	room := models.NewRoom(in.RoomNumber, in.RoomType, in.PricePerNight, in.Description, in.MaxOccupancy, in.Amenities)
	if err := s.RoomRepo.Insert(room); err != nil {
		return models.Room{}, err
	}

	utils.LogEvent(s.RequestID, "room", "create", "room_id="+room.ID+" number="+room.RoomNumber)
	return room, nil
}

func (s RoomService) Get(id string) (models.Room, error) {
	return s.RoomRepo.GetByID(id)
}

func (s RoomService) List() ([]models.Room, error) {
	return s.RoomRepo.List()
}

func (s RoomService) Update(id string, patch models.RoomPatch) (models.Room, error) {
	if _, err := s.RoomRepo.GetByID(id); err != nil {
		return models.Room{}, err
	}
	if err := s.RoomRepo.Update(id, patch); err != nil {
		return models.Room{}, err
	}
	return s.RoomRepo.GetByID(id)
}

// Delete refuses to remove a room that a confirmed or checked-in booking
// still references.
func (s RoomService) Delete(id string) error {
	if _, err := s.RoomRepo.GetByID(id); err != nil {
		return err
	}
	blocked, err := s.BookingRepo.HasBlockingForRoom(id)
	if err != nil {
		return err
	}
	if blocked {
		return domain.ConflictError{Resource: "room", Msg: "cannot delete room with active bookings"}
	}
	if err := s.RoomRepo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "room", "delete", "room_id="+id)
	return nil
}

var defaultRooms = []CreateRoomInput{
	{RoomNumber: "101", RoomType: domain.RoomSingle, PricePerNight: 100.0, Description: "Cozy single room"},
	{RoomNumber: "102", RoomType: domain.RoomSingle, PricePerNight: 100.0, Description: "Cozy single room"},
	{RoomNumber: "103", RoomType: domain.RoomDouble, PricePerNight: 150.0, Description: "Comfortable double room"},
	{RoomNumber: "104", RoomType: domain.RoomDouble, PricePerNight: 150.0, Description: "Comfortable double room"},
	{RoomNumber: "105", RoomType: domain.RoomSuite, PricePerNight: 250.0, Description: "Luxurious suite", MaxOccupancy: 4},
	{RoomNumber: "201", RoomType: domain.RoomSingle, PricePerNight: 110.0, Description: "Premium single room"},
	{RoomNumber: "202", RoomType: domain.RoomDouble, PricePerNight: 160.0, Description: "Premium double room"},
	{RoomNumber: "203", RoomType: domain.RoomDeluxe, PricePerNight: 200.0, Description: "Deluxe room with city view"},
	{RoomNumber: "204", RoomType: domain.RoomDeluxe, PricePerNight: 200.0, Description: "Deluxe room with city view"},
	{RoomNumber: "205", RoomType: domain.RoomSuite, PricePerNight: 300.0, Description: "Presidential suite", MaxOccupancy: 6},
}

// InitializeDefaults seeds the standard ten rooms. Idempotent: a no-op when
// any room already exists.
func (s RoomService) InitializeDefaults() (int, error) {
	count, err := s.RoomRepo.Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for _, in := range defaultRooms {
		room := models.NewRoom(in.RoomNumber, in.RoomType, in.PricePerNight, in.Description, in.MaxOccupancy, in.Amenities)
		if err := s.RoomRepo.Insert(room); err != nil {
			return 0, err
		}
	}
	utils.LogEvent(s.RequestID, "room", "initialize", "seeded default rooms")
	return len(defaultRooms), nil
}
