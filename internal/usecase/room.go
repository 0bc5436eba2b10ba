package usecase

import (
	"context"

	"hotelhub/internal/domain/room"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrRoomNumberTaken = errs.New("room number already exists")
	ErrRoomInUse       = errs.New("room is referenced by bookings")
	ErrRoomValidation  = errs.New("room validation failed")
)

type RoomRepository interface {
	RoomReader
	Create(ctx context.Context, q db.Queryer, r *room.Room) error
	Update(ctx context.Context, q db.Queryer, r *room.Room) error
	Delete(ctx context.Context, q db.Queryer, id uuid.UUID) error
	FindAll(ctx context.Context) ([]*readmodel.RoomRM, error)
}

type CreateRoomParams struct {
	RoomNumber string
	Type       string
	Tariff     float64
}

// UpdateRoomParams carries only the fields the caller wants changed.
type UpdateRoomParams struct {
	RoomNumber *string
	Type       *string
	Tariff     *float64
}

type RoomUseCase interface {
	CreateRoom(ctx context.Context, params CreateRoomParams) (*readmodel.RoomRM, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, params UpdateRoomParams) (*readmodel.RoomRM, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) error
	ListRooms(ctx context.Context) ([]*readmodel.RoomRM, error)
}

type roomUseCaseImpl struct {
	roomRepo RoomRepository
	pool     db.Pool
}

func NewRoomUseCase(roomRepo RoomRepository, pool db.Pool) RoomUseCase {
	return &roomUseCaseImpl{roomRepo: roomRepo, pool: pool}
}

func (u *roomUseCaseImpl) CreateRoom(ctx context.Context, params CreateRoomParams) (*readmodel.RoomRM, error) {
	roomType, err := room.NewType(params.Type)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomValidation)
	}

	entity, err := room.NewRoom(params.RoomNumber, roomType, params.Tariff)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomValidation)
	}

	if err := u.roomRepo.Create(ctx, u.pool, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrRoomNumberTaken
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	return toRoomRM(entity), nil
}

func (u *roomUseCaseImpl) UpdateRoom(ctx context.Context, id uuid.UUID, params UpdateRoomParams) (*readmodel.RoomRM, error) {
	entity, err := u.roomRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	var roomType *room.Type
	if params.Type != nil {
		t, err := room.NewType(*params.Type)
		if err != nil {
			return nil, errs.Mark(err, ErrRoomValidation)
		}
		roomType = &t
	}

	if err := entity.Update(params.RoomNumber, roomType, params.Tariff); err != nil {
		return nil, errs.Mark(err, ErrRoomValidation)
	}

	if err := u.roomRepo.Update(ctx, u.pool, entity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrRoomNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrRoomNumberTaken
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	return toRoomRM(entity), nil
}

// DeleteRoom refuses to delete a room that bookings reference; history
// stays intact and the caller gets a conflict.
func (u *roomUseCaseImpl) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	if err := u.roomRepo.Delete(ctx, u.pool, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrRoomNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrRoomInUse
		}
		return errs.Mark(err, ErrStoreFailure)
	}
	return nil
}

func (u *roomUseCaseImpl) ListRooms(ctx context.Context) ([]*readmodel.RoomRM, error) {
	rms, err := u.roomRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return rms, nil
}

func toRoomRM(r *room.Room) *readmodel.RoomRM {
	return &readmodel.RoomRM{
		ID:         r.ID(),
		RoomNumber: r.RoomNumber(),
		Type:       r.Type().String(),
		Tariff:     r.Tariff(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}
