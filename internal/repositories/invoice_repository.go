package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"

	intconfig "hotel-backend/internal/config"
	"hotel-backend/internal/domain"
	"hotel-backend/internal/domain/models"
)

type InvoiceRepository struct {
	DB *sql.DB
}

func (r InvoiceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const invoiceColumns = `id, booking_id, guest_name, room_number, check_in_date,
	check_out_date, total_amount, advance_paid, balance_due, COALESCE(payments,'[]'), created_at`

// Insert stores the snapshot; embedded payments go in as a JSON column so the
// invoice stays frozen regardless of later ledger activity.
func (r InvoiceRepository) Insert(inv models.Invoice) error {
	payments, err := json.Marshal(inv.Payments)
	if err != nil {
		return err
	}
	_, err = r.db().Exec(`
		INSERT INTO invoices
		  (id, booking_id, guest_name, room_number, check_in_date, check_out_date,
		   total_amount, advance_paid, balance_due, payments, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		inv.ID, inv.BookingID, inv.GuestName, inv.RoomNumber,
		inv.CheckInDate.String(), inv.CheckOutDate.String(),
		inv.TotalAmount, inv.AdvancePaid, inv.BalanceDue, string(payments), inv.CreatedAt,
	)
	return err
}

func (r InvoiceRepository) GetByID(id string) (models.Invoice, error) {
	row := r.db().QueryRow(`SELECT `+invoiceColumns+` FROM invoices WHERE id=? LIMIT 1`, id)

	var (
		inv      models.Invoice
		checkIn  string
		checkOut string
		payments string
	)
	err := row.Scan(
		&inv.ID,
		&inv.BookingID,
		&inv.GuestName,
		&inv.RoomNumber,
		&checkIn,
		&checkOut,
		&inv.TotalAmount,
		&inv.AdvancePaid,
		&inv.BalanceDue,
		&payments,
		&inv.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Invoice{}, domain.NotFoundError{Resource: "invoice"}
	}
	if err != nil {
		return models.Invoice{}, err
	}

	if inv.CheckInDate, err = domain.ParseDate(checkIn); err != nil {
		return models.Invoice{}, err
	}
	if inv.CheckOutDate, err = domain.ParseDate(checkOut); err != nil {
		return models.Invoice{}, err
	}
	if err := json.Unmarshal([]byte(payments), &inv.Payments); err != nil {
		inv.Payments = []models.Payment{}
	}
	return inv, nil
}
