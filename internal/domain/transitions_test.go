package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransitionLegalMoves(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		effect   RoomEffect
	}{
		{BookingPending, BookingConfirmed, RoomKeep},
		{BookingConfirmed, BookingCheckedIn, RoomSetOccupied},
		{BookingCheckedIn, BookingCheckedOut, RoomSetCleaning},
		{BookingPending, BookingCancelled, RoomKeep},
		{BookingConfirmed, BookingCancelled, RoomKeep},
		{BookingCheckedIn, BookingCancelled, RoomSetCleaningIfOccupied},
	}
	for _, tc := range cases {
		effect, err := Transition(tc.from, tc.to)
		require.NoError(t, err, "%s -> %s", tc.from, tc.to)
		require.Equal(t, tc.effect, effect, "%s -> %s", tc.from, tc.to)
	}
}

func TestTransitionRejectsSkippingConfirmation(t *testing.T) {
	_, err := Transition(BookingPending, BookingCheckedIn)
	require.True(t, IsInvalidState(err))
}

func TestTransitionTerminalStatesLocked(t *testing.T) {
	targets := []BookingStatus{
		BookingPending, BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled,
	}
	for _, from := range []BookingStatus{BookingCheckedOut, BookingCancelled} {
		for _, to := range targets {
			if from == to {
				continue
			}
			_, err := Transition(from, to)
			require.Truef(t, IsInvalidState(err), "%s -> %s should be rejected", from, to)
		}
	}
}

func TestTransitionSameStateIsNoOp(t *testing.T) {
	for _, s := range []BookingStatus{
		BookingPending, BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled,
	} {
		effect, err := Transition(s, s)
		require.NoError(t, err)
		require.Equal(t, RoomKeep, effect)
	}
}

func TestTransitionNoBackwardMoves(t *testing.T) {
	_, err := Transition(BookingConfirmed, BookingPending)
	require.True(t, IsInvalidState(err))
	_, err = Transition(BookingCheckedIn, BookingConfirmed)
	require.True(t, IsInvalidState(err))
}
