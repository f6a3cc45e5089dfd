package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "hotel-backend/internal/config"
	intdb "hotel-backend/internal/db"
	"hotel-backend/internal/domain"
	"hotel-backend/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `id, guest_id, room_id, check_in_date, check_out_date,
	status, total_amount, COALESCE(special_requests,''), created_at`

// blockingIn is the SQL IN list for domain.BlockingStatuses, built once so
// queries cannot drift from the domain definition.
var blockingIn = func() string {
	parts := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		parts[i] = "'" + string(s) + "'"
	}
	return "(" + strings.Join(parts, ",") + ")"
}()

func (r BookingRepository) Insert(b models.Booking) error {
	_, err := r.db().Exec(`
		INSERT INTO bookings
		  (id, guest_id, room_id, check_in_date, check_out_date, status, total_amount, special_requests, created_at)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		b.ID, b.GuestID, b.RoomID, b.CheckInDate.String(), b.CheckOutDate.String(),
		string(b.Status), b.TotalAmount, intdb.NullIfEmpty(b.SpecialRequests), b.CreatedAt,
	)
	return err
}

func (r BookingRepository) GetByID(id string) (models.Booking, error) {
	row := r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id)
	booking, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return booking, err
}

func (r BookingRepository) List() ([]models.Booking, error) {
	rows, err := r.db().Query(`SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

// ListByRange returns bookings touching [start, end]: check-in inside the
// window, check-out inside it, or a stay spanning the whole window.
func (r BookingRepository) ListByRange(start, end domain.Date) ([]models.Booking, error) {
	s, e := start.String(), end.String()
	rows, err := r.db().Query(`
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE (check_in_date >= ? AND check_in_date <= ?)
		   OR (check_out_date >= ? AND check_out_date <= ?)
		   OR (check_in_date <= ? AND check_out_date >= ?)
		ORDER BY check_in_date ASC`,
		s, e, s, e, s, e)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

// ListBlockingForRoom returns the room's bookings whose status occupies it
// for availability purposes (confirmed or checked_in).
func (r BookingRepository) ListBlockingForRoom(roomID string) ([]models.Booking, error) {
	rows, err := r.db().Query(`
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE room_id=? AND status IN `+blockingIn, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r BookingRepository) HasBlockingForRoom(roomID string) (bool, error) {
	var id string
	err := r.db().QueryRow(`
		SELECT id FROM bookings
		WHERE room_id=? AND status IN `+blockingIn+`
		LIMIT 1`, roomID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r BookingRepository) HasBlockingForGuest(guestID string) (bool, error) {
	var id string
	err := r.db().QueryRow(`
		SELECT id FROM bookings
		WHERE guest_id=? AND status IN `+blockingIn+`
		LIMIT 1`, guestID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r BookingRepository) UpdateStatus(id string, status domain.BookingStatus) error {
	_, err := r.db().Exec(`UPDATE bookings SET status=? WHERE id=?`, string(status), id)
	return err
}

func (r BookingRepository) UpdateSpecialRequests(id, text string) error {
	_, err := r.db().Exec(`UPDATE bookings SET special_requests=? WHERE id=?`, text, id)
	return err
}

func (r BookingRepository) Delete(id string) error {
	_, err := r.db().Exec(`DELETE FROM bookings WHERE id=?`, id)
	return err
}

// ListCheckedOutOn returns completed stays whose check-out date equals the
// given day. The daily report keys room revenue off the check-out date, not
// off when payments landed.
func (r BookingRepository) ListCheckedOutOn(day domain.Date) ([]models.Booking, error) {
	rows, err := r.db().Query(`
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE status='checked_out' AND check_out_date=?`, day.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r BookingRepository) CountCheckInsOn(day domain.Date) (int, error) {
	var n int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM bookings
		WHERE check_in_date=? AND status IN `+blockingIn, day.String()).Scan(&n)
	return n, err
}

func (r BookingRepository) CountCheckOutsOn(day domain.Date) (int, error) {
	var n int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM bookings
		WHERE check_out_date=? AND status='checked_out'`, day.String()).Scan(&n)
	return n, err
}

func (r BookingRepository) SumCheckedOutRevenue() (float64, error) {
	var total sql.NullFloat64
	err := r.db().QueryRow(`SELECT SUM(total_amount) FROM bookings WHERE status='checked_out'`).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var (
		b        models.Booking
		checkIn  string
		checkOut string
		status   string
	)
	if err := row.Scan(
		&b.ID,
		&b.GuestID,
		&b.RoomID,
		&checkIn,
		&checkOut,
		&status,
		&b.TotalAmount,
		&b.SpecialRequests,
		&b.CreatedAt,
	); err != nil {
		return models.Booking{}, err
	}

	var err error
	if b.CheckInDate, err = domain.ParseDate(checkIn); err != nil {
		return models.Booking{}, err
	}
	if b.CheckOutDate, err = domain.ParseDate(checkOut); err != nil {
		return models.Booking{}, err
	}
	b.Status = domain.BookingStatus(status)
	return b, nil
}

func collectBookings(rows *sql.Rows) ([]models.Booking, error) {
	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
