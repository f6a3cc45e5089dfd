package services

import (
	"database/sql"
	"testing"

	"hotel-backend/internal/domain"
	"hotel-backend/internal/domain/models"
	"hotel-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func guestService(db *sql.DB) GuestService {
	return GuestService{
		GuestRepo:   repositories.GuestRepository{DB: db},
		BookingRepo: repositories.BookingRepository{DB: db},
	}
}

func TestCreateGuestRequiresNameAndEmail(t *testing.T) {
	db, _ := newMockDB(t)
	svc := guestService(db)

	if _, err := svc.Create(models.GuestInput{Email: "a@b.com"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for missing name, got %v", err)
	}
	if _, err := svc.Create(models.GuestInput{Name: "Jane"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for missing email, got %v", err)
	}
}

func TestCreateGuestRejectsDuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT id FROM guests").WithArgs("jane@example.com", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("g-1"))

	_, err := guestService(db).Create(models.GuestInput{
		Name: "Jane Walker", Email: "jane@example.com",
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestDeleteGuestBlockedByActiveBooking(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("FROM guests").WithArgs("g-1").
		WillReturnRows(guestRows(testGuest()))
	mock.ExpectQuery("SELECT id FROM bookings").WithArgs("g-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("b-1"))

	err := guestService(db).Delete("g-1")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}
