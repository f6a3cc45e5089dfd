package repositories

import (
	"database/sql"
	"time"

	intconfig "hotel-backend/internal/config"
	intdb "hotel-backend/internal/db"
	"hotel-backend/internal/domain"
	"hotel-backend/internal/domain/models"
)

type PaymentRepository struct {
	DB *sql.DB
}

func (r PaymentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const paymentColumns = `id, booking_id, payment_type, amount, payment_date,
	status, COALESCE(description,''), is_advance`

func (r PaymentRepository) Insert(p models.Payment) error {
	_, err := r.db().Exec(`
		INSERT INTO payments
		  (id, booking_id, payment_type, amount, payment_date, status, description, is_advance)
		VALUES (?,?,?,?,?,?,?,?)`,
		p.ID, p.BookingID, string(p.PaymentType), p.Amount, p.PaymentDate,
		string(p.Status), intdb.NullIfEmpty(p.Description), p.IsAdvance,
	)
	return err
}

func (r PaymentRepository) List() ([]models.Payment, error) {
	rows, err := r.db().Query(`SELECT ` + paymentColumns + ` FROM payments ORDER BY payment_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayments(rows)
}

func (r PaymentRepository) ListByBooking(bookingID string) ([]models.Payment, error) {
	rows, err := r.db().Query(`
		SELECT `+paymentColumns+`
		FROM payments
		WHERE booking_id=?
		ORDER BY payment_date ASC`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayments(rows)
}

// ListBetween returns payments whose timestamp falls inside [from, to].
func (r PaymentRepository) ListBetween(from, to time.Time) ([]models.Payment, error) {
	rows, err := r.db().Query(`
		SELECT `+paymentColumns+`
		FROM payments
		WHERE payment_date >= ? AND payment_date <= ?
		ORDER BY payment_date ASC`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayments(rows)
}

func scanPayment(row rowScanner) (models.Payment, error) {
	var (
		p           models.Payment
		paymentType string
		status      string
	)
	if err := row.Scan(
		&p.ID,
		&p.BookingID,
		&paymentType,
		&p.Amount,
		&p.PaymentDate,
		&status,
		&p.Description,
		&p.IsAdvance,
	); err != nil {
		return models.Payment{}, err
	}
	p.PaymentType = domain.PaymentType(paymentType)
	p.Status = domain.PaymentStatus(status)
	return p, nil
}

func collectPayments(rows *sql.Rows) ([]models.Payment, error) {
	out := []models.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
