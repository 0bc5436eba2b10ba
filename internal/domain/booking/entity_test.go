//go:build unit

package booking_test

import (
	"testing"

	"hotelhub/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(t *testing.T) *booking.Booking {
	t.Helper()
	stay := mustStay(t, "2026-03-10", "2026-03-12")
	b, err := booking.NewBooking(uuid.New(), "Asha Patel", "asha@example.com", stay)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("starts in booked state", func(t *testing.T) {
		b := newTestBooking(t)
		assert.Equal(t, booking.StatusBooked, b.Status())
		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, "Asha Patel", b.CustomerName())
		assert.Equal(t, "asha@example.com", b.CustomerEmail())
	})

	t.Run("requires a customer name", func(t *testing.T) {
		stay := mustStay(t, "2026-03-10", "2026-03-12")
		_, err := booking.NewBooking(uuid.New(), "", "asha@example.com", stay)
		assert.ErrorIs(t, err, booking.ErrMissingCustomer)
	})
}

func TestBookingTransitionTo(t *testing.T) {
	t.Run("full stay lifecycle", func(t *testing.T) {
		b := newTestBooking(t)
		require.NoError(t, b.TransitionTo(booking.StatusCheckedIn))
		require.NoError(t, b.TransitionTo(booking.StatusCheckedOut))
		assert.Equal(t, booking.StatusCheckedOut, b.Status())
	})

	t.Run("cancel before arrival", func(t *testing.T) {
		b := newTestBooking(t)
		require.NoError(t, b.TransitionTo(booking.StatusCancelled))
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("cancel during the stay", func(t *testing.T) {
		b := newTestBooking(t)
		require.NoError(t, b.TransitionTo(booking.StatusCheckedIn))
		require.NoError(t, b.TransitionTo(booking.StatusCancelled))
	})

	t.Run("cannot check out without checking in", func(t *testing.T) {
		b := newTestBooking(t)
		err := b.TransitionTo(booking.StatusCheckedOut)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
		assert.Equal(t, booking.StatusBooked, b.Status(), "failed transition must not mutate")
	})

	t.Run("terminal states stay terminal", func(t *testing.T) {
		b := newTestBooking(t)
		require.NoError(t, b.TransitionTo(booking.StatusCancelled))
		assert.ErrorIs(t, b.TransitionTo(booking.StatusBooked), booking.ErrInvalidTransition)
		assert.ErrorIs(t, b.TransitionTo(booking.StatusCheckedIn), booking.ErrInvalidTransition)
	})

	t.Run("rejects an unknown target", func(t *testing.T) {
		b := newTestBooking(t)
		err := b.TransitionTo(booking.Status("parked"))
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}
