package services

import (
	"fmt"

	"hotel-backend/internal/domain"
	"hotel-backend/internal/domain/models"
	"hotel-backend/internal/repositories"
	"hotel-backend/internal/utils"
)

// PaymentService owns the payment ledger, balance figures and the checkout
// sequence.
type PaymentService struct {
	PaymentRepo repositories.PaymentRepository
	BookingRepo repositories.BookingRepository
	RoomRepo    repositories.RoomRepository
	Invoices    InvoiceService
	RequestID   string
}

type RecordPaymentInput struct {
	BookingID   string
	Type        domain.PaymentType
	Amount      float64
	Description string
	IsAdvance   bool
}

// Record appends a completed payment to the booking's ledger. Advance
// payments may exceed the outstanding balance; the cap is only enforced on
// the final payment at checkout.
func (s PaymentService) Record(in RecordPaymentInput) (models.Payment, error) {
	if in.Amount < 0 {
		return models.Payment{}, domain.InvalidAmountError{Msg: "amount must not be negative"}
	}
	if _, err := s.BookingRepo.GetByID(in.BookingID); err != nil {
		return models.Payment{}, err
	}

	payment := models.NewPayment(in.BookingID, in.Type, in.Amount, in.Description, in.IsAdvance)
	if err := s.PaymentRepo.Insert(payment); err != nil {
		return models.Payment{}, err
	}

	utils.LogEvent(s.RequestID, "payment", "record",
		fmt.Sprintf("booking_id=%s amount=%s advance=%t", in.BookingID, utils.FormatMoney(in.Amount), in.IsAdvance))
	return payment, nil
}

func (s PaymentService) List() ([]models.Payment, error) {
	return s.PaymentRepo.List()
}

func (s PaymentService) ListByBooking(bookingID string) ([]models.Payment, error) {
	if _, err := s.BookingRepo.GetByID(bookingID); err != nil {
		return nil, err
	}
	return s.PaymentRepo.ListByBooking(bookingID)
}

type BalanceSummary struct {
	BookingID   string           `json:"booking_id"`
	TotalAmount float64          `json:"total_amount"`
	TotalPaid   float64          `json:"total_paid"`
	BalanceDue  float64          `json:"balance_due"`
	Payments    []models.Payment `json:"payments"`
}

// Balance sums the ledger against the frozen booking total. BalanceDue goes
// negative when overpaid; it is not clamped.
func (s PaymentService) Balance(bookingID string) (BalanceSummary, error) {
	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return BalanceSummary{}, err
	}
	payments, err := s.PaymentRepo.ListByBooking(bookingID)
	if err != nil {
		return BalanceSummary{}, err
	}

	var paid float64
	for _, p := range payments {
		paid += p.Amount
	}
	return BalanceSummary{
		BookingID:   bookingID,
		TotalAmount: booking.TotalAmount,
		TotalPaid:   paid,
		BalanceDue:  booking.TotalAmount - paid,
		Payments:    payments,
	}, nil
}

type FinalPayment struct {
	Type        domain.PaymentType
	Amount      float64
	Description string
}

// CheckoutSteps records which of the ordered checkout side effects completed,
// so a partial failure is visible to the caller. The sequence is not
// transactional: a recorded payment is not rolled back when a later step
// fails.
type CheckoutSteps struct {
	PaymentRecorded  bool `json:"payment_recorded"`
	BookingUpdated   bool `json:"booking_updated"`
	RoomUpdated      bool `json:"room_updated"`
	InvoiceGenerated bool `json:"invoice_generated"`
}

type CheckoutResult struct {
	BookingID   string        `json:"booking_id"`
	TotalAmount float64       `json:"total_amount"`
	TotalPaid   float64       `json:"total_paid"`
	BalanceDue  float64       `json:"balance_due"`
	InvoiceID   string        `json:"invoice_id"`
	Steps       CheckoutSteps `json:"steps"`
}

// Checkout finalizes a checked-in stay: optionally settles the balance,
// moves the booking to checked_out, sends the room to cleaning and snapshots
// an invoice. Figures in the result reflect the final payment when one was
// recorded.
func (s PaymentService) Checkout(bookingID string, final *FinalPayment) (CheckoutResult, error) {
	result := CheckoutResult{BookingID: bookingID}

	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return result, err
	}
	if booking.Status != domain.BookingCheckedIn {
		return result, domain.InvalidStateError{
			Msg: fmt.Sprintf("booking must be checked_in to check out, status is %s", booking.Status),
		}
	}

	balance, err := s.Balance(bookingID)
	if err != nil {
		return result, err
	}

	if final != nil && balance.BalanceDue > 0 {
		if final.Amount > balance.BalanceDue {
			return result, domain.InvalidAmountError{
				Msg: fmt.Sprintf("payment %s exceeds balance due %s",
					utils.FormatMoney(final.Amount), utils.FormatMoney(balance.BalanceDue)),
			}
		}
		if _, err := s.Record(RecordPaymentInput{
			BookingID:   bookingID,
			Type:        final.Type,
			Amount:      final.Amount,
			Description: final.Description,
			IsAdvance:   false,
		}); err != nil {
			return result, err
		}
		result.Steps.PaymentRecorded = true
		balance.TotalPaid += final.Amount
		balance.BalanceDue -= final.Amount
	}

	if err := s.BookingRepo.UpdateStatus(bookingID, domain.BookingCheckedOut); err != nil {
		s.logPartial(bookingID, "booking status update failed", err, result.Steps)
		return result, err
	}
	result.Steps.BookingUpdated = true

	if err := s.RoomRepo.UpdateStatus(booking.RoomID, domain.RoomCleaning); err != nil {
		s.logPartial(bookingID, "room status update failed", err, result.Steps)
		return result, err
	}
	result.Steps.RoomUpdated = true

	invoice, err := s.Invoices.Generate(bookingID)
	if err != nil {
		s.logPartial(bookingID, "invoice generation failed", err, result.Steps)
		return result, err
	}
	result.Steps.InvoiceGenerated = true

	result.TotalAmount = balance.TotalAmount
	result.TotalPaid = balance.TotalPaid
	result.BalanceDue = balance.BalanceDue
	result.InvoiceID = invoice.ID

	utils.LogEvent(s.RequestID, "payment", "checkout",
		fmt.Sprintf("booking_id=%s invoice_id=%s balance_due=%s", bookingID, invoice.ID, utils.FormatMoney(result.BalanceDue)))
	return result, nil
}

func (s PaymentService) logPartial(bookingID, msg string, err error, steps CheckoutSteps) {
	utils.LogEvent(s.RequestID, "payment", "checkout",
		fmt.Sprintf("booking_id=%s %s (payment_recorded=%t booking_updated=%t room_updated=%t): %v",
			bookingID, msg, steps.PaymentRecorded, steps.BookingUpdated, steps.RoomUpdated, err))
}
