package services

import (
	"testing"
	"time"

	"hotel-backend/internal/domain"
	"hotel-backend/internal/domain/models"
)

func TestDocsServiceInvoicePDF(t *testing.T) {
	loader := func(id string) (models.Invoice, error) {
		return models.Invoice{
			ID:           id,
			BookingID:    "b-1",
			GuestName:    "Jane Walker",
			RoomNumber:   "101",
			CheckInDate:  day("2025-06-10"),
			CheckOutDate: day("2025-06-13"),
			TotalAmount:  450,
			AdvancePaid:  300,
			BalanceDue:   0,
			Payments: []models.Payment{
				{ID: "p-1", BookingID: "b-1", PaymentType: domain.PaymentCash,
					Amount: 300, PaymentDate: time.Now().UTC(),
					Status: domain.PaymentCompleted, IsAdvance: true},
				{ID: "p-2", BookingID: "b-1", PaymentType: domain.PaymentCard,
					Amount: 150, PaymentDate: time.Now().UTC(),
					Status: domain.PaymentCompleted},
			},
			CreatedAt: time.Now().UTC(),
		}, nil
	}

	svc := DocsService{InvoiceLoader: loader}

	pdf, filename, err := svc.InvoicePDF("inv-1")
	if err != nil {
		t.Fatalf("InvoicePDF returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("InvoicePDF returned empty data")
	}
	if filename != "INVOICE_inv-1.pdf" {
		t.Fatalf("unexpected filename: %s", filename)
	}
}

func TestDocsServiceReportPDF(t *testing.T) {
	loader := func(d domain.Date) (FinancialReport, error) {
		return FinancialReport{
			ReportDate:      d,
			TotalIncome:     550,
			TotalExpenses:   140,
			NetProfit:       410,
			RoomRevenue:     450,
			TotalBookings:   1,
			AdvancePayments: 300,
			FinalPayments:   250,
			ExpensesByCategory: map[domain.ExpenseCategory]float64{
				domain.ExpenseUtilities: 100,
				domain.ExpenseSupplies:  40,
			},
		}, nil
	}

	svc := DocsService{ReportLoader: loader}

	pdf, filename, err := svc.ReportPDF(day("2025-06-15"))
	if err != nil {
		t.Fatalf("ReportPDF returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("ReportPDF returned empty data")
	}
	if filename != "REPORT_2025-06-15.pdf" {
		t.Fatalf("unexpected filename: %s", filename)
	}
}

func TestDocsServiceReportPDFEmptyDay(t *testing.T) {
	loader := func(d domain.Date) (FinancialReport, error) {
		return FinancialReport{
			ReportDate:         d,
			ExpensesByCategory: map[domain.ExpenseCategory]float64{},
		}, nil
	}

	svc := DocsService{ReportLoader: loader}
	pdf, _, err := svc.ReportPDF(day("2025-06-16"))
	if err != nil {
		t.Fatalf("ReportPDF returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("ReportPDF returned empty data")
	}
}
