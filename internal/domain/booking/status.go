package booking

import "errors"

var ErrInvalidStatus = errors.New("invalid booking status")

// Status represents where a booking sits in its lifecycle.
type Status string

const (
	StatusBooked     Status = "booked"
	StatusCheckedIn  Status = "checked-in"
	StatusCheckedOut Status = "checked-out"
	StatusCancelled  Status = "cancelled"
)

// validTransitions defines the state machine for booking status changes.
// checked-out and cancelled are terminal.
var validTransitions = map[Status][]Status{
	StatusBooked:     {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut, StatusCancelled},
	StatusCheckedOut: {},
	StatusCancelled:  {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

func (s Status) CanTransitionTo(target Status) bool {
	allowed, ok := validTransitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	allowed, ok := validTransitions[s]
	return !ok || len(allowed) == 0
}

// CountsAgainstAvailability reports whether a booking in this status
// occupies its room for overlap purposes. Terminal statuses are historical
// and never block new stays.
func (s Status) CountsAgainstAvailability() bool {
	return s == StatusBooked || s == StatusCheckedIn
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
