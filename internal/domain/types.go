package domain

import "fmt"

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomCleaning    RoomStatus = "cleaning"
)

func ParseRoomStatus(s string) (RoomStatus, error) {
	switch RoomStatus(s) {
	case RoomAvailable, RoomOccupied, RoomMaintenance, RoomCleaning:
		return RoomStatus(s), nil
	}
	return "", ValidationError{Field: "status", Msg: fmt.Sprintf("unknown room status %q", s)}
}

type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomDouble RoomType = "double"
	RoomSuite  RoomType = "suite"
	RoomDeluxe RoomType = "deluxe"
)

func ParseRoomType(s string) (RoomType, error) {
	switch RoomType(s) {
	case RoomSingle, RoomDouble, RoomSuite, RoomDeluxe:
		return RoomType(s), nil
	}
	return "", ValidationError{Field: "room_type", Msg: fmt.Sprintf("unknown room type %q", s)}
}

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled:
		return BookingStatus(s), nil
	}
	return "", ValidationError{Field: "status", Msg: fmt.Sprintf("unknown booking status %q", s)}
}

// BlockingStatuses are the booking statuses that occupy a room for
// availability purposes. Pending, cancelled and checked-out stays never block.
var BlockingStatuses = []BookingStatus{BookingConfirmed, BookingCheckedIn}

type PaymentType string

const (
	PaymentCash PaymentType = "cash"
	PaymentCard PaymentType = "card"
)

func ParsePaymentType(s string) (PaymentType, error) {
	switch PaymentType(s) {
	case PaymentCash, PaymentCard:
		return PaymentType(s), nil
	}
	return "", ValidationError{Field: "payment_type", Msg: fmt.Sprintf("unknown payment type %q", s)}
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type ExpenseCategory string

const (
	ExpenseUtilities   ExpenseCategory = "utilities"
	ExpenseMaintenance ExpenseCategory = "maintenance"
	ExpenseSupplies    ExpenseCategory = "supplies"
	ExpenseStaff       ExpenseCategory = "staff"
	ExpenseMarketing   ExpenseCategory = "marketing"
	ExpenseOther       ExpenseCategory = "other"
)

func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	switch ExpenseCategory(s) {
	case ExpenseUtilities, ExpenseMaintenance, ExpenseSupplies, ExpenseStaff, ExpenseMarketing, ExpenseOther:
		return ExpenseCategory(s), nil
	}
	return "", ValidationError{Field: "category", Msg: fmt.Sprintf("unknown expense category %q", s)}
}
