package services

import (
	"database/sql"
	"testing"
	"time"

	"hotel-backend/internal/domain"
	"hotel-backend/internal/domain/models"
	"hotel-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func day(s string) domain.Date {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func bookingRows(bookings ...models.Booking) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "guest_id", "room_id", "check_in_date", "check_out_date",
		"status", "total_amount", "special_requests", "created_at",
	})
	for _, b := range bookings {
		rows.AddRow(b.ID, b.GuestID, b.RoomID, b.CheckInDate.String(), b.CheckOutDate.String(),
			string(b.Status), b.TotalAmount, b.SpecialRequests, b.CreatedAt)
	}
	return rows
}

func roomRows(rooms ...models.Room) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "room_number", "room_type", "price_per_night", "status",
		"description", "max_occupancy", "amenities", "created_at",
	})
	for _, r := range rooms {
		rows.AddRow(r.ID, r.RoomNumber, string(r.RoomType), r.PricePerNight, string(r.Status),
			r.Description, r.MaxOccupancy, `[]`, r.CreatedAt)
	}
	return rows
}

func guestRows(guests ...models.Guest) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "name", "email", "phone", "address", "country", "id_number", "created_at",
	})
	for _, g := range guests {
		rows.AddRow(g.ID, g.Name, g.Email, g.Phone, g.Address, g.Country, g.IDNumber, g.CreatedAt)
	}
	return rows
}

func paymentRows(payments ...models.Payment) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "booking_id", "payment_type", "amount", "payment_date",
		"status", "description", "is_advance",
	})
	for _, p := range payments {
		rows.AddRow(p.ID, p.BookingID, string(p.PaymentType), p.Amount, p.PaymentDate,
			string(p.Status), p.Description, p.IsAdvance)
	}
	return rows
}

func confirmedBooking(id, roomID, checkIn, checkOut string) models.Booking {
	return models.Booking{
		ID:           id,
		GuestID:      "guest-1",
		RoomID:       roomID,
		CheckInDate:  day(checkIn),
		CheckOutDate: day(checkOut),
		Status:       domain.BookingConfirmed,
		TotalAmount:  300,
		CreatedAt:    time.Now().UTC(),
	}
}

func availabilityService(db *sql.DB) AvailabilityService {
	return AvailabilityService{
		RoomRepo:    repositories.RoomRepository{DB: db},
		BookingRepo: repositories.BookingRepository{DB: db},
	}
}

func TestIsAvailableDetectsOverlap(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM bookings").WithArgs("room-1").
		WillReturnRows(bookingRows(confirmedBooking("b-1", "room-1", "2025-06-10", "2025-06-13")))

	available, err := availabilityService(db).IsAvailable("room-1", day("2025-06-12"), day("2025-06-14"), "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if available {
		t.Fatalf("overlapping range should not be available")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestIsAvailableBackToBackStays(t *testing.T) {
	db, mock := newMockDB(t)
	existing := confirmedBooking("b-1", "room-1", "2025-06-10", "2025-06-13")

	// new stay starts the day the existing one ends
	mock.ExpectQuery("FROM bookings").WithArgs("room-1").
		WillReturnRows(bookingRows(existing))
	available, err := availabilityService(db).IsAvailable("room-1", day("2025-06-13"), day("2025-06-15"), "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !available {
		t.Fatalf("back-to-back stay should be available")
	}

	// new stay ends the day the existing one starts
	mock.ExpectQuery("FROM bookings").WithArgs("room-1").
		WillReturnRows(bookingRows(existing))
	available, err = availabilityService(db).IsAvailable("room-1", day("2025-06-08"), day("2025-06-10"), "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !available {
		t.Fatalf("stay ending on existing check-in should be available")
	}
}

func TestIsAvailableExcludesOwnBooking(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM bookings").WithArgs("room-1").
		WillReturnRows(bookingRows(confirmedBooking("b-1", "room-1", "2025-06-10", "2025-06-13")))

	available, err := availabilityService(db).IsAvailable("room-1", day("2025-06-10"), day("2025-06-13"), "b-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !available {
		t.Fatalf("a booking must not conflict with itself")
	}
}

func TestQuoteIsNightsTimesPrice(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM rooms").WithArgs("room-1").
		WillReturnRows(roomRows(models.Room{
			ID: "room-1", RoomNumber: "101", RoomType: domain.RoomSingle,
			PricePerNight: 150, Status: domain.RoomAvailable, MaxOccupancy: 2,
			CreatedAt: time.Now().UTC(),
		}))

	total, err := availabilityService(db).Quote("room-1", day("2025-06-10"), day("2025-06-13"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if total != 450 {
		t.Fatalf("expected 450 for 3 nights at 150, got %v", total)
	}
}
