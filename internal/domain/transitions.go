package domain

import "fmt"

// RoomEffect is the room-status side effect a booking transition triggers.
type RoomEffect int

const (
	RoomKeep RoomEffect = iota
	RoomSetOccupied
	RoomSetCleaning
	// RoomSetCleaningIfOccupied sends housekeeping only when the room is
	// currently occupied; a cancellation before check-in leaves the room as is.
	RoomSetCleaningIfOccupied
)

var bookingTransitions = map[[2]BookingStatus]RoomEffect{
	{BookingPending, BookingConfirmed}:    RoomKeep,
	{BookingConfirmed, BookingCheckedIn}:  RoomSetOccupied,
	{BookingCheckedIn, BookingCheckedOut}: RoomSetCleaning,
	{BookingPending, BookingCancelled}:    RoomKeep,
	{BookingConfirmed, BookingCancelled}:  RoomKeep,
	{BookingCheckedIn, BookingCancelled}:  RoomSetCleaningIfOccupied,
}

// Transition resolves a requested status change against the booking state
// machine. Same-state requests are explicit no-ops. Undefined transitions,
// including skipping confirmation straight to checked_in and any move out of
// a terminal state, are rejected.
func Transition(from, to BookingStatus) (RoomEffect, error) {
	if from == to {
		return RoomKeep, nil
	}
	effect, ok := bookingTransitions[[2]BookingStatus{from, to}]
	if !ok {
		return RoomKeep, InvalidStateError{
			Msg: fmt.Sprintf("cannot change booking from %s to %s", from, to),
		}
	}
	return effect, nil
}
