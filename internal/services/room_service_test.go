package services

import (
	"database/sql"
	"testing"

	"hotel-backend/internal/domain"
	"hotel-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func roomService(db *sql.DB) RoomService {
	return RoomService{
		RoomRepo:    repositories.RoomRepository{DB: db},
		BookingRepo: repositories.BookingRepository{DB: db},
	}
}

func TestCreateRoomRejectsDuplicateNumber(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT id FROM rooms").WithArgs("101", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("room-1"))

	_, err := roomService(db).Create(CreateRoomInput{
		RoomNumber:    "101",
		RoomType:      domain.RoomSingle,
		PricePerNight: 100,
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestCreateRoomDefaultsOccupancy(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT id FROM rooms").WithArgs("101", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO rooms").
		WillReturnResult(sqlmock.NewResult(0, 1))

	room, err := roomService(db).Create(CreateRoomInput{
		RoomNumber:    "101",
		RoomType:      domain.RoomSingle,
		PricePerNight: 100,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if room.MaxOccupancy != 2 {
		t.Fatalf("expected default occupancy 2, got %d", room.MaxOccupancy)
	}
	if room.Status != domain.RoomAvailable {
		t.Fatalf("new room should be available, got %s", room.Status)
	}
}

func TestDeleteRoomBlockedByActiveBooking(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("FROM rooms").WithArgs("room-1").
		WillReturnRows(roomRows(testRoom(100)))
	mock.ExpectQuery("SELECT id FROM bookings").WithArgs("room-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("b-1"))

	err := roomService(db).Delete("room-1")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestInitializeDefaultsSeedsTenRooms(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("COUNT\\(\\*\\) FROM rooms").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	for range defaultRooms {
		mock.ExpectExec("INSERT INTO rooms").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	seeded, err := roomService(db).InitializeDefaults()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if seeded != 10 {
		t.Fatalf("expected 10 seeded rooms, got %d", seeded)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInitializeDefaultsNoOpWhenRoomsExist(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("COUNT\\(\\*\\) FROM rooms").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	seeded, err := roomService(db).InitializeDefaults()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if seeded != 0 {
		t.Fatalf("expected no seeding, got %d", seeded)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
