package response

import (
	"time"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	RoomID        uuid.UUID `json:"roomId"`
	RoomNumber    string    `json:"roomNumber"`
	RoomType      string    `json:"roomType"`
	Tariff        float64   `json:"tariff"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CheckIn       string    `json:"checkIn"`
	CheckOut      string    `json:"checkOut"`
	Nights        int       `json:"nights"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type AvailabilityResponse struct {
	RoomID    uuid.UUID `json:"roomId"`
	CheckIn   string    `json:"checkIn"`
	CheckOut  string    `json:"checkOut"`
	Available bool      `json:"available"`
	Message   string    `json:"message,omitempty"`
}

func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	var res BookingResponse
	_ = copier.Copy(&res, rm)
	res.CheckIn = rm.CheckIn.Format(booking.DateLayout)
	res.CheckOut = rm.CheckOut.Format(booking.DateLayout)
	res.Nights = rm.Nights()
	res.Amount = rm.Amount()
	return &res
}

func FromBookingRMs(rms []*readmodel.BookingRM) []*BookingResponse {
	res := make([]*BookingResponse, 0, len(rms))
	for _, rm := range rms {
		res = append(res, FromBookingRM(rm))
	}
	return res
}
