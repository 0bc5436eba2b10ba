package request

import (
	"hotelhub/internal/usecase"
)

type CreateRoomRequest struct {
	RoomNumber string  `json:"room_number" binding:"required"`
	Type       string  `json:"type" binding:"required"`
	Tariff     float64 `json:"tariff" binding:"required,gt=0"`
}

func (r CreateRoomRequest) ToParams() usecase.CreateRoomParams {
	return usecase.CreateRoomParams{
		RoomNumber: r.RoomNumber,
		Type:       r.Type,
		Tariff:     r.Tariff,
	}
}

// UpdateRoomRequest leaves omitted fields untouched.
type UpdateRoomRequest struct {
	RoomNumber *string  `json:"room_number,omitempty"`
	Type       *string  `json:"type,omitempty"`
	Tariff     *float64 `json:"tariff,omitempty" binding:"omitempty,gt=0"`
}

func (r UpdateRoomRequest) ToParams() usecase.UpdateRoomParams {
	return usecase.UpdateRoomParams{
		RoomNumber: r.RoomNumber,
		Type:       r.Type,
		Tariff:     r.Tariff,
	}
}
