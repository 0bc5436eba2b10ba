package repository

import (
	"context"
	"time"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db db.Queryer
}

func NewBookingRepository(q db.Queryer) *BookingRepository {
	return &BookingRepository{db: q}
}

const bookingWithRoomColumns = `
	b.id, b.room_id, r.room_number, r.room_type, r.tariff,
	b.customer_name, b.customer_email, b.check_in, b.check_out, b.status,
	b.created_at, b.updated_at`

// HasOverlap reports whether any booked or checked-in stay on the room
// overlaps the half-open interval [checkIn, checkOut). Cancelled and
// checked-out bookings are historical and never conflict.
func (r *BookingRepository) HasOverlap(ctx context.Context, q db.Queryer, roomID uuid.UUID, stay booking.StayPeriod) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id = $1
			  AND status IN ('booked', 'checked-in')
			  AND check_in < $3
			  AND check_out > $2
		)`

	var exists bool
	err := q.QueryRow(ctx, query, roomID, stay.CheckIn(), stay.CheckOut()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return exists, nil
}

// Create inserts the booking. The bookings_no_overlap exclusion constraint
// is the backstop for concurrent writers; a violation surfaces as
// KindConflict.
func (r *BookingRepository) Create(ctx context.Context, q db.Queryer, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (id, room_id, customer_name, customer_email, check_in, check_out, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := q.Exec(ctx, query,
		b.ID(), b.RoomID(), b.CustomerName(), b.CustomerEmail(),
		b.Stay().CheckIn(), b.Stay().CheckOut(), b.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// FindByIDForUpdate loads the booking and locks its row for the duration of
// the surrounding transaction, so concurrent status updates serialize.
func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, q db.Queryer, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, room_id, customer_name, customer_email, check_in, check_out, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE`

	return scanBooking(q.QueryRow(ctx, query, id))
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, q db.Queryer, id uuid.UUID, status booking.Status) error {
	const query = `
		UPDATE bookings
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByIDWithRoom(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	query := `
		SELECT` + bookingWithRoomColumns + `
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.id = $1`

	rm, err := scanBookingRM(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return rm, nil
}

func (r *BookingRepository) FindAllWithRooms(ctx context.Context) ([]*readmodel.BookingRM, error) {
	query := `
		SELECT` + bookingWithRoomColumns + `
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		ORDER BY b.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*readmodel.BookingRM
	for rows.Next() {
		rm, err := scanBookingRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, roomID                  uuid.UUID
		customerName, customerEmail string
		checkIn, checkOut           time.Time
		status                      string
		createdAt, updatedAt        time.Time
	)
	err := row.Scan(&id, &roomID, &customerName, &customerEmail, &checkIn, &checkOut, &status, &createdAt, &updatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking", err)
	}

	stay, err := booking.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, infra.WrapRepoErr("stored stay period is invalid", err)
	}

	return booking.ReconstructBooking(
		id, roomID, customerName, customerEmail,
		stay, booking.Status(status), createdAt, updatedAt,
	), nil
}

func scanBookingRM(row pgx.Row) (*readmodel.BookingRM, error) {
	var rm readmodel.BookingRM
	err := row.Scan(
		&rm.ID, &rm.RoomID, &rm.RoomNumber, &rm.RoomType, &rm.Tariff,
		&rm.CustomerName, &rm.CustomerEmail, &rm.CheckIn, &rm.CheckOut, &rm.Status,
		&rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
