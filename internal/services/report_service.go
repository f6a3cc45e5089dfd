package services

import (
	"hotel-backend/internal/domain"
	"hotel-backend/internal/repositories"
)

type ReportService struct {
	BookingRepo repositories.BookingRepository
	PaymentRepo repositories.PaymentRepository
	ExpenseRepo repositories.ExpenseRepository
	RoomRepo    repositories.RoomRepository
	RequestID   string
}

// FinancialReport aggregates one calendar day. Room revenue is keyed off
// bookings completed that day; income is keyed off payment timestamps — the
// two deliberately diverge when a stay is paid on a different day than it
// checks out.
type FinancialReport struct {
	ReportDate         domain.Date                        `json:"report_date"`
	TotalIncome        float64                            `json:"total_income"`
	TotalExpenses      float64                            `json:"total_expenses"`
	NetProfit          float64                            `json:"net_profit"`
	RoomRevenue        float64                            `json:"room_revenue"`
	TotalBookings      int                                `json:"total_bookings"`
	AdvancePayments    float64                            `json:"advance_payments"`
	FinalPayments      float64                            `json:"final_payments"`
	ExpensesByCategory map[domain.ExpenseCategory]float64 `json:"expenses_by_category"`
}

func (s ReportService) Daily(day domain.Date) (FinancialReport, error) {
	report := FinancialReport{
		ReportDate:         day,
		ExpensesByCategory: map[domain.ExpenseCategory]float64{},
	}

	payments, err := s.PaymentRepo.ListBetween(day.StartOfDay(), day.EndOfDay())
	if err != nil {
		return report, err
	}
	for _, p := range payments {
		report.TotalIncome += p.Amount
		if p.IsAdvance {
			report.AdvancePayments += p.Amount
		} else {
			report.FinalPayments += p.Amount
		}
	}

	expenses, err := s.ExpenseRepo.ListOn(day)
	if err != nil {
		return report, err
	}
	for _, e := range expenses {
		report.TotalExpenses += e.Amount
		report.ExpensesByCategory[e.Category] += e.Amount
	}

	completed, err := s.BookingRepo.ListCheckedOutOn(day)
	if err != nil {
		return report, err
	}
	report.TotalBookings = len(completed)
	for _, b := range completed {
		report.RoomRevenue += b.TotalAmount
	}

	report.NetProfit = report.TotalIncome - report.TotalExpenses
	return report, nil
}

type DashboardStats struct {
	TotalRooms       int     `json:"total_rooms"`
	AvailableRooms   int     `json:"available_rooms"`
	OccupiedRooms    int     `json:"occupied_rooms"`
	MaintenanceRooms int     `json:"maintenance_rooms"`
	CleaningRooms    int     `json:"cleaning_rooms"`
	TodayCheckins    int     `json:"today_checkins"`
	TodayCheckouts   int     `json:"today_checkouts"`
	TotalRevenue     float64 `json:"total_revenue"`
}

func (s ReportService) Dashboard() (DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.TotalRooms, err = s.RoomRepo.Count(); err != nil {
		return stats, err
	}
	if stats.AvailableRooms, err = s.RoomRepo.CountByStatus(domain.RoomAvailable); err != nil {
		return stats, err
	}
	if stats.OccupiedRooms, err = s.RoomRepo.CountByStatus(domain.RoomOccupied); err != nil {
		return stats, err
	}
	if stats.MaintenanceRooms, err = s.RoomRepo.CountByStatus(domain.RoomMaintenance); err != nil {
		return stats, err
	}
	if stats.CleaningRooms, err = s.RoomRepo.CountByStatus(domain.RoomCleaning); err != nil {
		return stats, err
	}

	today := domain.Today()
	if stats.TodayCheckins, err = s.BookingRepo.CountCheckInsOn(today); err != nil {
		return stats, err
	}
	if stats.TodayCheckouts, err = s.BookingRepo.CountCheckOutsOn(today); err != nil {
		return stats, err
	}
	if stats.TotalRevenue, err = s.BookingRepo.SumCheckedOutRevenue(); err != nil {
		return stats, err
	}
	return stats, nil
}
