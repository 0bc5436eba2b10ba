package response

import (
	"time"

	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID         uuid.UUID `json:"id"`
	RoomNumber string    `json:"roomNumber"`
	Type       string    `json:"type"`
	Tariff     float64   `json:"tariff"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromRoomRM(rm *readmodel.RoomRM) *RoomResponse {
	var res RoomResponse
	_ = copier.Copy(&res, rm)
	return &res
}

func FromRoomRMs(rms []*readmodel.RoomRM) []*RoomResponse {
	res := make([]*RoomResponse, 0, len(rms))
	for _, rm := range rms {
		res = append(res, FromRoomRM(rm))
	}
	return res
}
