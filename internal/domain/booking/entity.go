package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrMissingCustomer   = errors.New("customer name is required")
)

// Booking references its Room but does not own it; many bookings may point
// at one room over time.
type Booking struct {
	id            uuid.UUID
	roomID        uuid.UUID
	customerName  string
	customerEmail string
	stay          StayPeriod
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBooking creates a booking in the initial status `booked`.
// Availability against other bookings is the store's concern, not the
// entity's; see the booking usecase.
func NewBooking(roomID uuid.UUID, customerName, customerEmail string, stay StayPeriod) (*Booking, error) {
	if customerName == "" {
		return nil, ErrMissingCustomer
	}
	return &Booking{
		id:            uuid.New(),
		roomID:        roomID,
		customerName:  customerName,
		customerEmail: customerEmail,
		stay:          stay,
		status:        StatusBooked,
	}, nil
}

func ReconstructBooking(
	id, roomID uuid.UUID,
	customerName, customerEmail string,
	stay StayPeriod,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		roomID:        roomID,
		customerName:  customerName,
		customerEmail: customerEmail,
		stay:          stay,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// TransitionTo moves the booking to target, enforcing the lifecycle state
// machine. No other field is mutated.
func (b *Booking) TransitionTo(target Status) error {
	if !target.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	b.status = target
	return nil
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) RoomID() uuid.UUID     { return b.roomID }
func (b *Booking) CustomerName() string  { return b.customerName }
func (b *Booking) CustomerEmail() string { return b.customerEmail }
func (b *Booking) Stay() StayPeriod      { return b.stay }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
