package repositories

import (
	"testing"
	"time"

	"hotel-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestInvoiceGetByIDUnpacksEmbeddedPayments(t *testing.T) {
	db, mock := newMockDB(t)

	paymentsJSON := `[{"id":"p-1","booking_id":"b-1","payment_type":"cash","amount":300,` +
		`"payment_date":"2025-06-10T12:00:00Z","status":"completed","is_advance":true}]`

	mock.ExpectQuery("FROM invoices").WithArgs("inv-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "booking_id", "guest_name", "room_number", "check_in_date",
			"check_out_date", "total_amount", "advance_paid", "balance_due",
			"payments", "created_at",
		}).AddRow("inv-1", "b-1", "Jane Walker", "101", "2025-06-10",
			"2025-06-13", 450.0, 300.0, 150.0, paymentsJSON, time.Now().UTC()))

	inv, err := InvoiceRepository{DB: db}.GetByID("inv-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(inv.Payments) != 1 {
		t.Fatalf("expected 1 embedded payment, got %d", len(inv.Payments))
	}
	if inv.Payments[0].Amount != 300 || !inv.Payments[0].IsAdvance {
		t.Fatalf("embedded payment decoded wrong: %+v", inv.Payments[0])
	}
	if inv.BalanceDue != 150 {
		t.Fatalf("balance due decoded wrong: %v", inv.BalanceDue)
	}
}

func TestInvoiceGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM invoices").WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := InvoiceRepository{DB: db}.GetByID("missing")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
