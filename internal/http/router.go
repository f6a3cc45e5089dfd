package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"

	intconfig "hotel-backend/internal/config"
	"hotel-backend/internal/http/handlers"
	"hotel-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, db *sql.DB) *gin.Engine {
	h := handlers.New(db, env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(),
		middleware.AuthOptional([]byte(env.JWTSecret)))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Rooms
		rooms := api.Group("/rooms")
		rooms.POST("", h.CreateRoom)
		rooms.GET("", h.GetRooms)
		rooms.GET("/:id", h.GetRoom)
		rooms.PUT("/:id", h.UpdateRoom)
		rooms.DELETE("/:id", h.DeleteRoom)
		rooms.GET("/:id/availability", h.RoomAvailability)
		api.POST("/initialize-rooms", h.InitializeRooms)

		// Guests
		guests := api.Group("/guests")
		guests.POST("", h.CreateGuest)
		guests.GET("", h.GetGuests)
		guests.GET("/search", h.SearchGuests)
		guests.GET("/:id", h.GetGuest)
		guests.PUT("/:id", h.UpdateGuest)
		guests.DELETE("/:id", h.DeleteGuest)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.GetBookings)
		bookings.GET("/range", h.GetBookingsByRange)
		bookings.GET("/:id", h.GetBooking)
		bookings.PUT("/:id", h.UpdateBooking)
		bookings.DELETE("/:id", h.DeleteBooking)
		bookings.GET("/:id/balance", h.GetBookingBalance)
		bookings.POST("/:id/checkout", h.CheckoutBooking)

		// Payments
		payments := api.Group("/payments")
		payments.POST("", h.CreatePayment)
		payments.GET("", h.GetPayments)
		payments.GET("/booking/:booking_id", h.GetPaymentsByBooking)

		// Expenses
		expenses := api.Group("/expenses")
		expenses.POST("", h.CreateExpense)
		expenses.GET("", h.GetExpenses)
		expenses.GET("/:id", h.GetExpense)
		expenses.PUT("/:id", h.UpdateExpense)
		expenses.DELETE("/:id", h.DeleteExpense)

		// Invoices
		invoices := api.Group("/invoices")
		invoices.POST("/generate/:booking_id", h.GenerateInvoice)
		invoices.GET("/:id", h.GetInvoice)
		invoices.GET("/:id/pdf", h.GetInvoicePDF)

		// Financial reports
		financial := api.Group("/financial")
		financial.GET("/report", h.GetFinancialReport)
		financial.GET("/report/pdf", h.GetFinancialReportPDF)

		api.GET("/dashboard", h.GetDashboard)
	}

	return r
}
