package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"hotel-backend/internal/domain"
	"hotel-backend/internal/domain/models"
	"hotel-backend/internal/repositories"
	"hotel-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders stored invoices and daily financial reports to PDF.
// Loaders are injectable for tests.
type DocsService struct {
	InvoiceRepo   repositories.InvoiceRepository
	Reports       ReportService
	RequestID     string
	InvoiceLoader func(string) (models.Invoice, error)
	ReportLoader  func(domain.Date) (FinancialReport, error)
}

func (s DocsService) InvoicePDF(invoiceID string) ([]byte, string, error) {
	invoice, err := s.loadInvoice(invoiceID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "invoice_pdf", "invoice_id="+invoiceID)
	return buildInvoicePDF(invoice)
}

func (s DocsService) ReportPDF(day domain.Date) ([]byte, string, error) {
	report, err := s.loadReport(day)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "report_pdf", "date="+day.String())
	return buildReportPDF(report)
}

func (s DocsService) loadInvoice(id string) (models.Invoice, error) {
	if s.InvoiceLoader != nil {
		return s.InvoiceLoader(id)
	}
	return s.InvoiceRepo.GetByID(id)
}

func (s DocsService) loadReport(day domain.Date) (FinancialReport, error) {
	if s.ReportLoader != nil {
		return s.ReportLoader(day)
	}
	return s.Reports.Daily(day)
}

func buildInvoicePDF(inv models.Invoice) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+inv.ID)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+inv.CreatedAt.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Guest      : %s", safe(inv.GuestName, "-")),
		fmt.Sprintf("Room       : %s", safe(inv.RoomNumber, "-")),
		fmt.Sprintf("Check-in   : %s", inv.CheckInDate.String()),
		fmt.Sprintf("Check-out  : %s", inv.CheckOutDate.String()),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Payments:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	if len(inv.Payments) == 0 {
		pdf.Cell(0, 6, "(none recorded)")
		pdf.Ln(6)
	}
	for i, p := range inv.Payments {
		kind := "final"
		if p.IsAdvance {
			kind = "advance"
		}
		pdf.Cell(0, 6, fmt.Sprintf("%d) %s  %s  %s (%s)",
			i+1, p.PaymentDate.Format("2006-01-02"), utils.FormatMoney(p.Amount), string(p.PaymentType), kind))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Total       : "+utils.FormatMoney(inv.TotalAmount))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Advance paid: "+utils.FormatMoney(inv.AdvancePaid))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Balance due : "+utils.FormatMoney(inv.BalanceDue))
	pdf.Ln(10)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render invoice pdf", Err: err}
	}

	filename := fmt.Sprintf("INVOICE_%s.pdf", safeFilenamePart(inv.ID))
	return buf.Bytes(), filename, nil
}

func buildReportPDF(report FinancialReport) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Financial Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "DAILY FINANCIAL REPORT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Date: "+report.ReportDate.String())
	pdf.Ln(10)

	rows := []string{
		"Total income     : " + utils.FormatMoney(report.TotalIncome),
		"Total expenses   : " + utils.FormatMoney(report.TotalExpenses),
		"Net profit       : " + utils.FormatMoney(report.NetProfit),
		"Room revenue     : " + utils.FormatMoney(report.RoomRevenue),
		fmt.Sprintf("Completed stays  : %d", report.TotalBookings),
		"Advance payments : " + utils.FormatMoney(report.AdvancePayments),
		"Final payments   : " + utils.FormatMoney(report.FinalPayments),
	}
	for _, r := range rows {
		pdf.Cell(0, 7, r)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Expenses by category:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	if len(report.ExpensesByCategory) == 0 {
		pdf.Cell(0, 6, "(no expenses recorded)")
		pdf.Ln(6)
	}
	for _, cat := range []domain.ExpenseCategory{
		domain.ExpenseUtilities, domain.ExpenseMaintenance, domain.ExpenseSupplies,
		domain.ExpenseStaff, domain.ExpenseMarketing, domain.ExpenseOther,
	} {
		amount, ok := report.ExpensesByCategory[cat]
		if !ok {
			continue
		}
		pdf.Cell(0, 6, fmt.Sprintf("- %-12s %s", string(cat), utils.FormatMoney(amount)))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Generated "+time.Now().Format("2006-01-02 15:04")+". Income follows payment timestamps; room revenue follows check-out dates.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render report pdf", Err: err}
	}

	filename := fmt.Sprintf("REPORT_%s.pdf", report.ReportDate.String())
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	return replacer.Replace(strings.TrimSpace(s))
}
