package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type RoomRM struct {
	ID         uuid.UUID
	RoomNumber string
	Type       string
	Tariff     float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
