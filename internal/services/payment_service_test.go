package services

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"hotel-backend/internal/domain"
	"hotel-backend/internal/domain/models"
	"hotel-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func paymentService(db *sql.DB) PaymentService {
	return PaymentService{
		PaymentRepo: repositories.PaymentRepository{DB: db},
		BookingRepo: repositories.BookingRepository{DB: db},
		RoomRepo:    repositories.RoomRepository{DB: db},
		Invoices: InvoiceService{
			InvoiceRepo: repositories.InvoiceRepository{DB: db},
			BookingRepo: repositories.BookingRepository{DB: db},
			GuestRepo:   repositories.GuestRepository{DB: db},
			RoomRepo:    repositories.RoomRepository{DB: db},
			PaymentRepo: repositories.PaymentRepository{DB: db},
		},
	}
}

func ledgerPayment(bookingID string, amount float64, advance bool) models.Payment {
	return models.Payment{
		ID:          "pay-" + time.Now().Format("150405.000000000"),
		BookingID:   bookingID,
		PaymentType: domain.PaymentCash,
		Amount:      amount,
		PaymentDate: time.Now().UTC(),
		Status:      domain.PaymentCompleted,
		IsAdvance:   advance,
	}
}

func TestRecordPaymentRejectsNegativeAmount(t *testing.T) {
	db, _ := newMockDB(t)

	_, err := paymentService(db).Record(RecordPaymentInput{
		BookingID: "b-1",
		Type:      domain.PaymentCash,
		Amount:    -50,
	})
	if !domain.IsInvalidAmount(err) {
		t.Fatalf("expected invalid amount error, got %v", err)
	}
}

func TestRecordPaymentAllowsZeroAmount(t *testing.T) {
	db, mock := newMockDB(t)
	booking := confirmedBooking("b-1", "room-1", "2025-06-10", "2025-06-13")

	mock.ExpectQuery("FROM bookings").WithArgs("b-1").
		WillReturnRows(bookingRows(booking))
	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(sqlmock.NewResult(0, 1))

	payment, err := paymentService(db).Record(RecordPaymentInput{
		BookingID: "b-1",
		Type:      domain.PaymentCard,
		Amount:    0,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if payment.Status != domain.PaymentCompleted {
		t.Fatalf("payment should land completed, got %s", payment.Status)
	}
}

func TestBalanceSumsLedgerAgainstFrozenTotal(t *testing.T) {
	db, mock := newMockDB(t)
	booking := confirmedBooking("b-1", "room-1", "2025-06-10", "2025-06-13")
	booking.TotalAmount = 450

	mock.ExpectQuery("FROM bookings").WithArgs("b-1").
		WillReturnRows(bookingRows(booking))
	mock.ExpectQuery("FROM payments").WithArgs("b-1").
		WillReturnRows(paymentRows(
			ledgerPayment("b-1", 200, true),
			ledgerPayment("b-1", 100, false),
		))

	balance, err := paymentService(db).Balance("b-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if balance.TotalAmount != 450 || balance.TotalPaid != 300 || balance.BalanceDue != 150 {
		t.Fatalf("unexpected balance: %+v", balance)
	}
	if len(balance.Payments) != 2 {
		t.Fatalf("expected 2 ledger entries, got %d", len(balance.Payments))
	}
}

func TestBalanceGoesNegativeWhenOverpaid(t *testing.T) {
	db, mock := newMockDB(t)
	booking := confirmedBooking("b-1", "room-1", "2025-06-10", "2025-06-13")
	booking.TotalAmount = 450

	mock.ExpectQuery("FROM bookings").WithArgs("b-1").
		WillReturnRows(bookingRows(booking))
	mock.ExpectQuery("FROM payments").WithArgs("b-1").
		WillReturnRows(paymentRows(ledgerPayment("b-1", 500, true)))

	balance, err := paymentService(db).Balance("b-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if balance.BalanceDue != -50 {
		t.Fatalf("expected -50 balance due, got %v", balance.BalanceDue)
	}
}

func TestCheckoutRequiresCheckedIn(t *testing.T) {
	db, mock := newMockDB(t)
	booking := confirmedBooking("b-1", "room-1", "2025-06-10", "2025-06-13")

	mock.ExpectQuery("FROM bookings").WithArgs("b-1").
		WillReturnRows(bookingRows(booking))

	_, err := paymentService(db).Checkout("b-1", nil)
	if !domain.IsInvalidState(err) {
		t.Fatalf("expected invalid state error, got %v", err)
	}
}

func TestCheckoutRejectsFinalPaymentAboveBalance(t *testing.T) {
	db, mock := newMockDB(t)
	booking := confirmedBooking("b-1", "room-1", "2025-06-10", "2025-06-13")
	booking.Status = domain.BookingCheckedIn
	booking.TotalAmount = 450

	mock.ExpectQuery("FROM bookings").WithArgs("b-1").
		WillReturnRows(bookingRows(booking))
	// balance lookup
	mock.ExpectQuery("FROM bookings").WithArgs("b-1").
		WillReturnRows(bookingRows(booking))
	mock.ExpectQuery("FROM payments").WithArgs("b-1").
		WillReturnRows(paymentRows(ledgerPayment("b-1", 300, true)))

	_, err := paymentService(db).Checkout("b-1", &FinalPayment{
		Type:   domain.PaymentCash,
		Amount: 200,
	})
	if !domain.IsInvalidAmount(err) {
		t.Fatalf("expected invalid amount error, got %v", err)
	}
}

func TestCheckoutSettlesAndSnapshots(t *testing.T) {
	db, mock := newMockDB(t)
	booking := confirmedBooking("b-1", "room-1", "2025-06-10", "2025-06-13")
	booking.Status = domain.BookingCheckedIn
	booking.TotalAmount = 450

	advance := ledgerPayment("b-1", 300, true)

	mock.ExpectQuery("FROM bookings").WithArgs("b-1").
		WillReturnRows(bookingRows(booking))
	// balance lookup
	mock.ExpectQuery("FROM bookings").WithArgs("b-1").
		WillReturnRows(bookingRows(booking))
	mock.ExpectQuery("FROM payments").WithArgs("b-1").
		WillReturnRows(paymentRows(advance))
	// final payment record
	mock.ExpectQuery("FROM bookings").WithArgs("b-1").
		WillReturnRows(bookingRows(booking))
	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// status flips
	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs("checked_out", "b-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE rooms SET status").
		WithArgs("cleaning", "room-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// invoice snapshot
	final := ledgerPayment("b-1", 150, false)
	mock.ExpectQuery("FROM bookings").WithArgs("b-1").
		WillReturnRows(bookingRows(booking))
	mock.ExpectQuery("FROM guests").WithArgs("guest-1").
		WillReturnRows(guestRows(testGuest()))
	mock.ExpectQuery("FROM rooms").WithArgs("room-1").
		WillReturnRows(roomRows(testRoom(150)))
	mock.ExpectQuery("FROM payments").WithArgs("b-1").
		WillReturnRows(paymentRows(advance, final))
	mock.ExpectExec("INSERT INTO invoices").
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := paymentService(db).Checkout("b-1", &FinalPayment{
		Type:   domain.PaymentCash,
		Amount: 150,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !result.Steps.PaymentRecorded || !result.Steps.BookingUpdated ||
		!result.Steps.RoomUpdated || !result.Steps.InvoiceGenerated {
		t.Fatalf("expected all steps completed, got %+v", result.Steps)
	}
	if result.BalanceDue != 0 {
		t.Fatalf("expected settled balance, got %v", result.BalanceDue)
	}
	if result.InvoiceID == "" {
		t.Fatalf("invoice id missing from result")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCheckoutPartialFailureSurfaced(t *testing.T) {
	db, mock := newMockDB(t)
	booking := confirmedBooking("b-1", "room-1", "2025-06-10", "2025-06-13")
	booking.Status = domain.BookingCheckedIn
	booking.TotalAmount = 450

	mock.ExpectQuery("FROM bookings").WithArgs("b-1").
		WillReturnRows(bookingRows(booking))
	// balance lookup; already fully paid so no final payment is attempted
	mock.ExpectQuery("FROM bookings").WithArgs("b-1").
		WillReturnRows(bookingRows(booking))
	mock.ExpectQuery("FROM payments").WithArgs("b-1").
		WillReturnRows(paymentRows(ledgerPayment("b-1", 450, true)))
	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs("checked_out", "b-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE rooms SET status").
		WithArgs("cleaning", "room-1").
		WillReturnError(errors.New("room table locked"))

	result, err := paymentService(db).Checkout("b-1", nil)
	if err == nil {
		t.Fatalf("expected error from failed room update")
	}
	if !result.Steps.BookingUpdated {
		t.Fatalf("booking update step should be marked complete")
	}
	if result.Steps.RoomUpdated || result.Steps.InvoiceGenerated {
		t.Fatalf("later steps should not be marked complete: %+v", result.Steps)
	}
}
