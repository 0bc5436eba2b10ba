package booking

import (
	"errors"
	"time"
)

var ErrInvalidStay = errors.New("check-out must be after check-in")

const DateLayout = "2006-01-02"

// StayPeriod is a half-open calendar interval [check-in, check-out).
// No time-of-day component is modeled; both bounds are midnight UTC dates.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	checkIn = truncateToDate(checkIn)
	checkOut = truncateToDate(checkOut)
	if !checkOut.After(checkIn) {
		return StayPeriod{}, ErrInvalidStay
	}
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

func ParseStayPeriod(checkIn, checkOut string) (StayPeriod, error) {
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return StayPeriod{}, errors.New("invalid check-in date")
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return StayPeriod{}, errors.New("invalid check-out date")
	}
	return NewStayPeriod(in, out)
}

func (s StayPeriod) CheckIn() time.Time  { return s.checkIn }
func (s StayPeriod) CheckOut() time.Time { return s.checkOut }

// Overlaps reports whether two stays share at least one night under
// half-open semantics: [a1,a2) and [b1,b2) overlap iff a1 < b2 && b1 < a2.
// Back-to-back stays (one guest's check-out day is the next guest's
// check-in day) do not overlap.
func (s StayPeriod) Overlaps(other StayPeriod) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

// Nights is the number of whole nights in the stay, rounded up.
func (s StayPeriod) Nights() int {
	hours := s.checkOut.Sub(s.checkIn).Hours()
	nights := int(hours / 24)
	if hours > float64(nights)*24 {
		nights++
	}
	return nights
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
