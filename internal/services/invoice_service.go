package services

import (
	"hotel-backend/internal/domain/models"
	"hotel-backend/internal/repositories"
	"hotel-backend/internal/utils"
)

type InvoiceService struct {
	InvoiceRepo repositories.InvoiceRepository
	BookingRepo repositories.BookingRepository
	GuestRepo   repositories.GuestRepository
	RoomRepo    repositories.RoomRepository
	PaymentRepo repositories.PaymentRepository
	RequestID   string
}

// Generate snapshots the booking's current financial position into a new
// immutable invoice. Each call produces a fresh invoice id; there is no
// dedup or versioning.
func (s InvoiceService) Generate(bookingID string) (models.Invoice, error) {
	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return models.Invoice{}, err
	}
	guest, err := s.GuestRepo.GetByID(booking.GuestID)
	if err != nil {
		return models.Invoice{}, err
	}
	room, err := s.RoomRepo.GetByID(booking.RoomID)
	if err != nil {
		return models.Invoice{}, err
	}
	payments, err := s.PaymentRepo.ListByBooking(bookingID)
	if err != nil {
		return models.Invoice{}, err
	}

	invoice := models.NewInvoice(booking, guest, room, payments)
	if err := s.InvoiceRepo.Insert(invoice); err != nil {
		return models.Invoice{}, err
	}

	utils.LogEvent(s.RequestID, "invoice", "generate",
		"invoice_id="+invoice.ID+" booking_id="+bookingID)
	return invoice, nil
}

func (s InvoiceService) Get(id string) (models.Invoice, error) {
	return s.InvoiceRepo.GetByID(id)
}
