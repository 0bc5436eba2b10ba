package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// BookingRM is a booking joined with its room, as the presentation and
// export layers consume it.
type BookingRM struct {
	ID            uuid.UUID
	RoomID        uuid.UUID
	RoomNumber    string
	RoomType      string
	Tariff        float64
	CustomerName  string
	CustomerEmail string
	CheckIn       time.Time
	CheckOut      time.Time
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Nights is the whole-night count of the stay, rounded up.
func (b *BookingRM) Nights() int {
	hours := b.CheckOut.Sub(b.CheckIn).Hours()
	nights := int(hours / 24)
	if hours > float64(nights)*24 {
		nights++
	}
	return nights
}

// Amount is the derived invoice total: nights stayed times the room's
// nightly tariff.
func (b *BookingRM) Amount() float64 {
	return float64(b.Nights()) * b.Tariff
}
