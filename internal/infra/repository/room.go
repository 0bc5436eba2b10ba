package repository

import (
	"context"
	"time"

	"hotelhub/internal/domain/room"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RoomRepository struct {
	db db.Queryer
}

func NewRoomRepository(q db.Queryer) *RoomRepository {
	return &RoomRepository{db: q}
}

func (r *RoomRepository) Create(ctx context.Context, q db.Queryer, rm *room.Room) error {
	const query = `
		INSERT INTO rooms (id, room_number, room_type, tariff)
		VALUES ($1, $2, $3, $4)`

	_, err := q.Exec(ctx, query, rm.ID(), rm.RoomNumber(), rm.Type().String(), rm.Tariff())
	if err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, q db.Queryer, rm *room.Room) error {
	const query = `
		UPDATE rooms
		SET room_number = $2, room_type = $3, tariff = $4, updated_at = now()
		WHERE id = $1`

	tag, err := q.Exec(ctx, query, rm.ID(), rm.RoomNumber(), rm.Type().String(), rm.Tariff())
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// Delete removes a room. Bookings reference rooms with ON DELETE RESTRICT,
// so a room with booking history cannot be deleted; that surfaces as
// KindForeignKeyViolated.
func (r *RoomRepository) Delete(ctx context.Context, q db.Queryer, id uuid.UUID) error {
	tag, err := q.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	const query = `
		SELECT id, room_number, room_type, tariff, created_at, updated_at
		FROM rooms
		WHERE id = $1`

	return r.scanRoom(r.db.QueryRow(ctx, query, id))
}

// FindByIDForUpdate locks the room row, serializing concurrent booking
// creations for the same room within their transactions.
func (r *RoomRepository) FindByIDForUpdate(ctx context.Context, q db.Queryer, id uuid.UUID) (*room.Room, error) {
	const query = `
		SELECT id, room_number, room_type, tariff, created_at, updated_at
		FROM rooms
		WHERE id = $1
		FOR UPDATE`

	return r.scanRoom(q.QueryRow(ctx, query, id))
}

func (r *RoomRepository) FindAll(ctx context.Context) ([]*readmodel.RoomRM, error) {
	const query = `
		SELECT id, room_number, room_type, tariff, created_at, updated_at
		FROM rooms
		ORDER BY room_number`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*readmodel.RoomRM
	for rows.Next() {
		var rm readmodel.RoomRM
		if err := rows.Scan(&rm.ID, &rm.RoomNumber, &rm.Type, &rm.Tariff, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return result, nil
}

func (r *RoomRepository) scanRoom(row pgx.Row) (*room.Room, error) {
	var (
		id                   uuid.UUID
		roomNumber, roomType string
		tariff               float64
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&id, &roomNumber, &roomType, &tariff, &createdAt, &updatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan room", err)
	}
	return room.ReconstructRoom(id, roomNumber, room.Type(roomType), tariff, createdAt, updatedAt), nil
}
