package usecase

import (
	"context"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/domain/room"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/readmodel"
	"hotelhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound      = errs.New("room not found")
	ErrBookingNotFound   = errs.New("booking not found")
	ErrRoomUnavailable   = errs.New("room already booked for these dates")
	ErrInvalidTransition = errs.New("invalid status transition")
	ErrInvalidStatus     = errs.New("invalid status value")
	ErrBookingValidation = errs.New("booking validation failed")
	ErrStoreFailure      = errs.New("store operation failed")
)

type BookingRepository interface {
	HasOverlap(ctx context.Context, q db.Queryer, roomID uuid.UUID, stay booking.StayPeriod) (bool, error)
	Create(ctx context.Context, q db.Queryer, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, q db.Queryer, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, q db.Queryer, id uuid.UUID, status booking.Status) error
	FindByIDWithRoom(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	FindAllWithRooms(ctx context.Context) ([]*readmodel.BookingRM, error)
}

type RoomReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	FindByIDForUpdate(ctx context.Context, q db.Queryer, id uuid.UUID) (*room.Room, error)
}

type CreateBookingParams struct {
	RoomID        uuid.UUID
	CustomerName  string
	CustomerEmail string
	Stay          booking.StayPeriod
}

type BookingUseCase interface {
	CheckAvailability(ctx context.Context, roomID uuid.UUID, stay booking.StayPeriod) (bool, error)
	CreateBooking(ctx context.Context, params CreateBookingParams) (*readmodel.BookingRM, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status string) (*readmodel.BookingRM, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*readmodel.BookingRM, error)
	ListBookings(ctx context.Context) ([]*readmodel.BookingRM, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	roomRepo    RoomReader
	pool        db.Pool
}

func NewBookingUseCase(bookingRepo BookingRepository, roomRepo RoomReader, pool db.Pool) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		pool:        pool,
	}
}

// CheckAvailability is a pure read; repeating it without intervening writes
// returns the same answer. The binding check happens again inside
// CreateBooking's transaction.
func (u *bookingUseCaseImpl) CheckAvailability(ctx context.Context, roomID uuid.UUID, stay booking.StayPeriod) (bool, error) {
	if _, err := u.roomRepo.FindByID(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, ErrRoomNotFound
		}
		return false, errs.Mark(err, ErrStoreFailure)
	}

	overlap, err := u.bookingRepo.HasOverlap(ctx, u.pool, roomID, stay)
	if err != nil {
		return false, errs.Mark(err, ErrStoreFailure)
	}
	return !overlap, nil
}

// CreateBooking re-checks availability and inserts inside one transaction,
// with the room row locked, so two concurrent requests for overlapping
// dates on the same room cannot both succeed. The store's exclusion
// constraint backs this up; either path surfaces as ErrRoomUnavailable.
func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*readmodel.BookingRM, error) {
	entity, err := booking.NewBooking(params.RoomID, params.CustomerName, params.CustomerEmail, params.Stay)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingValidation)
	}

	_, err = shared.WithDefaultRetry(ctx, u.pool, func(tx db.Queryer) (uuid.UUID, error) {
		if _, err := u.roomRepo.FindByIDForUpdate(ctx, tx, params.RoomID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return uuid.Nil, ErrRoomNotFound
			}
			return uuid.Nil, errs.Mark(err, ErrStoreFailure)
		}

		overlap, err := u.bookingRepo.HasOverlap(ctx, tx, params.RoomID, params.Stay)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrStoreFailure)
		}
		if overlap {
			return uuid.Nil, ErrRoomUnavailable
		}

		if err := u.bookingRepo.Create(ctx, tx, entity); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return uuid.Nil, ErrRoomUnavailable
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return uuid.Nil, ErrRoomNotFound
			}
			return uuid.Nil, errs.Mark(err, ErrStoreFailure)
		}
		return entity.ID(), nil
	})
	if err != nil {
		return nil, err
	}

	rm, err := u.bookingRepo.FindByIDWithRoom(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return rm, nil
}

// UpdateStatus enforces the lifecycle state machine and mutates nothing but
// the status column.
func (u *bookingUseCaseImpl) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status string) (*readmodel.BookingRM, error) {
	target, err := booking.ParseStatus(status)
	if err != nil {
		return nil, ErrInvalidStatus
	}

	_, err = shared.WithDefaultRetry(ctx, u.pool, func(tx db.Queryer) (struct{}, error) {
		entity, err := u.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, ErrBookingNotFound
			}
			return struct{}{}, errs.Mark(err, ErrStoreFailure)
		}

		if err := entity.TransitionTo(target); err != nil {
			return struct{}{}, ErrInvalidTransition
		}

		if err := u.bookingRepo.UpdateStatus(ctx, tx, bookingID, entity.Status()); err != nil {
			return struct{}{}, errs.Mark(err, ErrStoreFailure)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}

	rm, err := u.bookingRepo.FindByIDWithRoom(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return rm, nil
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, bookingID uuid.UUID) (*readmodel.BookingRM, error) {
	rm, err := u.bookingRepo.FindByIDWithRoom(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return rm, nil
}

func (u *bookingUseCaseImpl) ListBookings(ctx context.Context) ([]*readmodel.BookingRM, error) {
	rms, err := u.bookingRepo.FindAllWithRooms(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return rms, nil
}
