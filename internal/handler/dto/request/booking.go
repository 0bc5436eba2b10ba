package request

import (
	"hotelhub/internal/domain/booking"
	"hotelhub/internal/usecase"

	"github.com/google/uuid"
)

type CheckAvailabilityRequest struct {
	RoomID   uuid.UUID `json:"roomId" binding:"required"`
	CheckIn  string    `json:"check_in" binding:"required"`
	CheckOut string    `json:"check_out" binding:"required"`
}

func (r CheckAvailabilityRequest) ToStay() (booking.StayPeriod, error) {
	return booking.ParseStayPeriod(r.CheckIn, r.CheckOut)
}

type CreateBookingRequest struct {
	RoomID        uuid.UUID `json:"roomId" binding:"required"`
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerEmail string    `json:"customer_email" binding:"required,email"`
	CheckIn       string    `json:"check_in" binding:"required"`
	CheckOut      string    `json:"check_out" binding:"required"`
}

func (r CreateBookingRequest) ToParams() (usecase.CreateBookingParams, error) {
	stay, err := booking.ParseStayPeriod(r.CheckIn, r.CheckOut)
	if err != nil {
		return usecase.CreateBookingParams{}, err
	}
	return usecase.CreateBookingParams{
		RoomID:        r.RoomID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Stay:          stay,
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
