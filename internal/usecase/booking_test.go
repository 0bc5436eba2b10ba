//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/domain/room"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/usecase"
	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx satisfies pgx.Tx for the tx manager; the query methods of the
// embedded nil interface are never reached because the fake repositories
// ignore their Queryer argument.
type fakeTx struct {
	pgx.Tx
}

func (fakeTx) Commit(context.Context) error   { return nil }
func (fakeTx) Rollback(context.Context) error { return pgx.ErrTxClosed }

type fakePool struct{}

func (fakePool) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (fakePool) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (fakePool) QueryRow(context.Context, string, ...any) pgx.Row        { return nil }
func (fakePool) Begin(context.Context) (pgx.Tx, error)                   { return fakeTx{}, nil }

type fakeBookingRepo struct {
	hasOverlap        func(roomID uuid.UUID, stay booking.StayPeriod) (bool, error)
	create            func(b *booking.Booking) error
	findByIDForUpdate func(id uuid.UUID) (*booking.Booking, error)
	updateStatus      func(id uuid.UUID, status booking.Status) error
	findByIDWithRoom  func(id uuid.UUID) (*readmodel.BookingRM, error)
	findAllWithRooms  func() ([]*readmodel.BookingRM, error)

	created        []*booking.Booking
	statusesStored []booking.Status
}

func (f *fakeBookingRepo) HasOverlap(_ context.Context, _ db.Queryer, roomID uuid.UUID, stay booking.StayPeriod) (bool, error) {
	return f.hasOverlap(roomID, stay)
}

func (f *fakeBookingRepo) Create(_ context.Context, _ db.Queryer, b *booking.Booking) error {
	if f.create != nil {
		if err := f.create(b); err != nil {
			return err
		}
	}
	f.created = append(f.created, b)
	return nil
}

func (f *fakeBookingRepo) FindByIDForUpdate(_ context.Context, _ db.Queryer, id uuid.UUID) (*booking.Booking, error) {
	return f.findByIDForUpdate(id)
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ db.Queryer, id uuid.UUID, status booking.Status) error {
	if f.updateStatus != nil {
		if err := f.updateStatus(id, status); err != nil {
			return err
		}
	}
	f.statusesStored = append(f.statusesStored, status)
	return nil
}

func (f *fakeBookingRepo) FindByIDWithRoom(_ context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	return f.findByIDWithRoom(id)
}

func (f *fakeBookingRepo) FindAllWithRooms(context.Context) ([]*readmodel.BookingRM, error) {
	return f.findAllWithRooms()
}

type fakeRoomReader struct {
	findByID func(id uuid.UUID) (*room.Room, error)
}

func (f *fakeRoomReader) FindByID(_ context.Context, id uuid.UUID) (*room.Room, error) {
	return f.findByID(id)
}

func (f *fakeRoomReader) FindByIDForUpdate(_ context.Context, _ db.Queryer, id uuid.UUID) (*room.Room, error) {
	return f.findByID(id)
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", pgx.ErrNoRows, infra.KindNotFound)
}

func testRoom(t *testing.T, id uuid.UUID) *room.Room {
	t.Helper()
	return room.ReconstructRoom(id, "101", room.TypeDeluxe, 4000, time.Now(), time.Now())
}

func testStay(t *testing.T) booking.StayPeriod {
	t.Helper()
	stay, err := booking.ParseStayPeriod("2026-03-10", "2026-03-12")
	require.NoError(t, err)
	return stay
}

func testBookingRM(id, roomID uuid.UUID, status string) *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:            id,
		RoomID:        roomID,
		RoomNumber:    "101",
		RoomType:      "Deluxe",
		Tariff:        4000,
		CustomerName:  "Asha Patel",
		CustomerEmail: "asha@example.com",
		CheckIn:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Status:        status,
	}
}

func TestCheckAvailability(t *testing.T) {
	roomID := uuid.New()

	t.Run("free room reports available", func(t *testing.T) {
		roomRepo := &fakeRoomReader{findByID: func(id uuid.UUID) (*room.Room, error) {
			return testRoom(t, id), nil
		}}
		bookingRepo := &fakeBookingRepo{hasOverlap: func(uuid.UUID, booking.StayPeriod) (bool, error) {
			return false, nil
		}}
		uc := usecase.NewBookingUseCase(bookingRepo, roomRepo, fakePool{})

		available, err := uc.CheckAvailability(context.Background(), roomID, testStay(t))
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("overlapping stay reports unavailable", func(t *testing.T) {
		roomRepo := &fakeRoomReader{findByID: func(id uuid.UUID) (*room.Room, error) {
			return testRoom(t, id), nil
		}}
		bookingRepo := &fakeBookingRepo{hasOverlap: func(uuid.UUID, booking.StayPeriod) (bool, error) {
			return true, nil
		}}
		uc := usecase.NewBookingUseCase(bookingRepo, roomRepo, fakePool{})

		available, err := uc.CheckAvailability(context.Background(), roomID, testStay(t))
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("unknown room", func(t *testing.T) {
		roomRepo := &fakeRoomReader{findByID: func(uuid.UUID) (*room.Room, error) {
			return nil, notFoundErr()
		}}
		uc := usecase.NewBookingUseCase(&fakeBookingRepo{}, roomRepo, fakePool{})

		_, err := uc.CheckAvailability(context.Background(), roomID, testStay(t))
		assert.ErrorIs(t, err, usecase.ErrRoomNotFound)
	})
}

func TestCreateBooking(t *testing.T) {
	roomID := uuid.New()

	params := func(t *testing.T) usecase.CreateBookingParams {
		return usecase.CreateBookingParams{
			RoomID:        roomID,
			CustomerName:  "Asha Patel",
			CustomerEmail: "asha@example.com",
			Stay:          testStay(t),
		}
	}

	okRoomRepo := &fakeRoomReader{findByID: func(id uuid.UUID) (*room.Room, error) {
		return testRoom(t, id), nil
	}}

	t.Run("creates when the room is free", func(t *testing.T) {
		bookingRepo := &fakeBookingRepo{
			hasOverlap: func(uuid.UUID, booking.StayPeriod) (bool, error) { return false, nil },
			findByIDWithRoom: func(id uuid.UUID) (*readmodel.BookingRM, error) {
				return testBookingRM(id, roomID, "booked"), nil
			},
		}
		uc := usecase.NewBookingUseCase(bookingRepo, okRoomRepo, fakePool{})

		rm, err := uc.CreateBooking(context.Background(), params(t))
		require.NoError(t, err)
		require.Len(t, bookingRepo.created, 1)
		assert.Equal(t, booking.StatusBooked, bookingRepo.created[0].Status())
		assert.Equal(t, "booked", rm.Status)
		assert.Equal(t, 2, rm.Nights())
		assert.Equal(t, 8000.0, rm.Amount())
	})

	t.Run("rejects an overlapping stay without inserting", func(t *testing.T) {
		bookingRepo := &fakeBookingRepo{
			hasOverlap: func(uuid.UUID, booking.StayPeriod) (bool, error) { return true, nil },
		}
		uc := usecase.NewBookingUseCase(bookingRepo, okRoomRepo, fakePool{})

		_, err := uc.CreateBooking(context.Background(), params(t))
		assert.ErrorIs(t, err, usecase.ErrRoomUnavailable)
		assert.Empty(t, bookingRepo.created)
	})

	t.Run("store conflict surfaces as unavailable", func(t *testing.T) {
		bookingRepo := &fakeBookingRepo{
			hasOverlap: func(uuid.UUID, booking.StayPeriod) (bool, error) { return false, nil },
			create: func(*booking.Booking) error {
				return infra.WrapRepoErr("overlap", errors.New("exclusion"), infra.KindConflict)
			},
		}
		uc := usecase.NewBookingUseCase(bookingRepo, okRoomRepo, fakePool{})

		_, err := uc.CreateBooking(context.Background(), params(t))
		assert.ErrorIs(t, err, usecase.ErrRoomUnavailable)
	})

	t.Run("unknown room", func(t *testing.T) {
		roomRepo := &fakeRoomReader{findByID: func(uuid.UUID) (*room.Room, error) {
			return nil, notFoundErr()
		}}
		uc := usecase.NewBookingUseCase(&fakeBookingRepo{}, roomRepo, fakePool{})

		_, err := uc.CreateBooking(context.Background(), params(t))
		assert.ErrorIs(t, err, usecase.ErrRoomNotFound)
	})

	t.Run("missing customer name fails validation", func(t *testing.T) {
		uc := usecase.NewBookingUseCase(&fakeBookingRepo{}, okRoomRepo, fakePool{})

		p := params(t)
		p.CustomerName = ""
		_, err := uc.CreateBooking(context.Background(), p)
		assert.ErrorIs(t, err, usecase.ErrBookingValidation)
	})
}

func TestUpdateStatus(t *testing.T) {
	bookingID := uuid.New()
	roomID := uuid.New()

	storedBooking := func(t *testing.T, status booking.Status) *booking.Booking {
		t.Helper()
		return booking.ReconstructBooking(
			bookingID, roomID, "Asha Patel", "asha@example.com",
			testStay(t), status, time.Now(), time.Now(),
		)
	}

	t.Run("checks in a booked stay", func(t *testing.T) {
		bookingRepo := &fakeBookingRepo{
			findByIDForUpdate: func(id uuid.UUID) (*booking.Booking, error) {
				return storedBooking(t, booking.StatusBooked), nil
			},
			findByIDWithRoom: func(id uuid.UUID) (*readmodel.BookingRM, error) {
				return testBookingRM(id, roomID, "checked-in"), nil
			},
		}
		uc := usecase.NewBookingUseCase(bookingRepo, &fakeRoomReader{}, fakePool{})

		rm, err := uc.UpdateStatus(context.Background(), bookingID, "checked-in")
		require.NoError(t, err)
		require.Len(t, bookingRepo.statusesStored, 1)
		assert.Equal(t, booking.StatusCheckedIn, bookingRepo.statusesStored[0])
		assert.Equal(t, "checked-in", rm.Status)
	})

	t.Run("rejects an illegal transition without writing", func(t *testing.T) {
		bookingRepo := &fakeBookingRepo{
			findByIDForUpdate: func(uuid.UUID) (*booking.Booking, error) {
				return storedBooking(t, booking.StatusCheckedOut), nil
			},
		}
		uc := usecase.NewBookingUseCase(bookingRepo, &fakeRoomReader{}, fakePool{})

		_, err := uc.UpdateStatus(context.Background(), bookingID, "checked-in")
		assert.ErrorIs(t, err, usecase.ErrInvalidTransition)
		assert.Empty(t, bookingRepo.statusesStored)
	})

	t.Run("rejects an unknown status value", func(t *testing.T) {
		uc := usecase.NewBookingUseCase(&fakeBookingRepo{}, &fakeRoomReader{}, fakePool{})

		_, err := uc.UpdateStatus(context.Background(), bookingID, "confirmed")
		assert.ErrorIs(t, err, usecase.ErrInvalidStatus)
	})

	t.Run("unknown booking", func(t *testing.T) {
		bookingRepo := &fakeBookingRepo{
			findByIDForUpdate: func(uuid.UUID) (*booking.Booking, error) {
				return nil, notFoundErr()
			},
		}
		uc := usecase.NewBookingUseCase(bookingRepo, &fakeRoomReader{}, fakePool{})

		_, err := uc.UpdateStatus(context.Background(), bookingID, "cancelled")
		assert.ErrorIs(t, err, usecase.ErrBookingNotFound)
	})
}

func TestGetBooking(t *testing.T) {
	t.Run("unknown booking", func(t *testing.T) {
		bookingRepo := &fakeBookingRepo{
			findByIDWithRoom: func(uuid.UUID) (*readmodel.BookingRM, error) {
				return nil, notFoundErr()
			},
		}
		uc := usecase.NewBookingUseCase(bookingRepo, &fakeRoomReader{}, fakePool{})

		_, err := uc.GetBooking(context.Background(), uuid.New())
		assert.ErrorIs(t, err, usecase.ErrBookingNotFound)
	})
}
