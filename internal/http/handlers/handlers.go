package handlers

import (
	"database/sql"

	"hotel-backend/internal/http/middleware"
	"hotel-backend/internal/repositories"
	"hotel-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Handlers carries the store handle and builds request-scoped services.
type Handlers struct {
	db        *sql.DB
	jwtSecret []byte
}

func New(db *sql.DB, jwtSecret string) *Handlers {
	return &Handlers{db: db, jwtSecret: []byte(jwtSecret)}
}

func (h *Handlers) availability() services.AvailabilityService {
	return services.AvailabilityService{
		RoomRepo:    repositories.RoomRepository{DB: h.db},
		BookingRepo: repositories.BookingRepository{DB: h.db},
	}
}

func (h *Handlers) rooms(c *gin.Context) services.RoomService {
	return services.RoomService{
		RoomRepo:    repositories.RoomRepository{DB: h.db},
		BookingRepo: repositories.BookingRepository{DB: h.db},
		RequestID:   middleware.GetRequestID(c),
	}
}

func (h *Handlers) guests(c *gin.Context) services.GuestService {
	return services.GuestService{
		GuestRepo:   repositories.GuestRepository{DB: h.db},
		BookingRepo: repositories.BookingRepository{DB: h.db},
		RequestID:   middleware.GetRequestID(c),
	}
}

func (h *Handlers) bookings(c *gin.Context) services.BookingService {
	return services.BookingService{
		BookingRepo:  repositories.BookingRepository{DB: h.db},
		RoomRepo:     repositories.RoomRepository{DB: h.db},
		GuestRepo:    repositories.GuestRepository{DB: h.db},
		Availability: h.availability(),
		RequestID:    middleware.GetRequestID(c),
	}
}

func (h *Handlers) invoices(c *gin.Context) services.InvoiceService {
	return services.InvoiceService{
		InvoiceRepo: repositories.InvoiceRepository{DB: h.db},
		BookingRepo: repositories.BookingRepository{DB: h.db},
		GuestRepo:   repositories.GuestRepository{DB: h.db},
		RoomRepo:    repositories.RoomRepository{DB: h.db},
		PaymentRepo: repositories.PaymentRepository{DB: h.db},
		RequestID:   middleware.GetRequestID(c),
	}
}

func (h *Handlers) payments(c *gin.Context) services.PaymentService {
	return services.PaymentService{
		PaymentRepo: repositories.PaymentRepository{DB: h.db},
		BookingRepo: repositories.BookingRepository{DB: h.db},
		RoomRepo:    repositories.RoomRepository{DB: h.db},
		Invoices:    h.invoices(c),
		RequestID:   middleware.GetRequestID(c),
	}
}

func (h *Handlers) expenses(c *gin.Context) services.ExpenseService {
	return services.ExpenseService{
		ExpenseRepo: repositories.ExpenseRepository{DB: h.db},
		RequestID:   middleware.GetRequestID(c),
	}
}

func (h *Handlers) reports(c *gin.Context) services.ReportService {
	return services.ReportService{
		BookingRepo: repositories.BookingRepository{DB: h.db},
		PaymentRepo: repositories.PaymentRepository{DB: h.db},
		ExpenseRepo: repositories.ExpenseRepository{DB: h.db},
		RoomRepo:    repositories.RoomRepository{DB: h.db},
		RequestID:   middleware.GetRequestID(c),
	}
}

func (h *Handlers) docs(c *gin.Context) services.DocsService {
	return services.DocsService{
		InvoiceRepo: repositories.InvoiceRepository{DB: h.db},
		Reports:     h.reports(c),
		RequestID:   middleware.GetRequestID(c),
	}
}

func (h *Handlers) users() repositories.UserRepository {
	return repositories.UserRepository{DB: h.db}
}
