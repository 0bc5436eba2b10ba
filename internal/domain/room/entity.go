package room

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingRoomNumber = errors.New("room number is required")
	ErrNegativeTariff    = errors.New("tariff cannot be negative")
)

type Room struct {
	id         uuid.UUID
	roomNumber string
	roomType   Type
	tariff     float64
	createdAt  time.Time
	updatedAt  time.Time
}

func NewRoom(roomNumber string, roomType Type, tariff float64) (*Room, error) {
	if roomNumber == "" {
		return nil, ErrMissingRoomNumber
	}
	if !roomType.IsValid() {
		return nil, ErrInvalidType
	}
	if tariff < 0 {
		return nil, ErrNegativeTariff
	}
	return &Room{
		id:         uuid.New(),
		roomNumber: roomNumber,
		roomType:   roomType,
		tariff:     tariff,
	}, nil
}

func ReconstructRoom(id uuid.UUID, roomNumber string, roomType Type, tariff float64, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:         id,
		roomNumber: roomNumber,
		roomType:   roomType,
		tariff:     tariff,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Update applies an admin edit. Nil fields are left unchanged, matching the
// partial-update semantics of PUT /api/rooms/:id.
func (r *Room) Update(roomNumber *string, roomType *Type, tariff *float64) error {
	if roomNumber != nil {
		if *roomNumber == "" {
			return ErrMissingRoomNumber
		}
		r.roomNumber = *roomNumber
	}
	if roomType != nil {
		if !roomType.IsValid() {
			return ErrInvalidType
		}
		r.roomType = *roomType
	}
	if tariff != nil {
		if *tariff < 0 {
			return ErrNegativeTariff
		}
		r.tariff = *tariff
	}
	return nil
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) RoomNumber() string   { return r.roomNumber }
func (r *Room) Type() Type           { return r.roomType }
func (r *Room) Tariff() float64      { return r.tariff }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
