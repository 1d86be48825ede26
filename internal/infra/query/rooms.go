package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const roomColumns = `id, hotel_id, number, type, status, price_cents, description, created_at, updated_at`

const createRoom = `
INSERT INTO rooms (` + roomColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func (q *Queries) CreateRoom(ctx context.Context, db DBTX, arg Room) error {
	_, err := db.Exec(ctx, createRoom,
		arg.ID, arg.HotelID, arg.Number, arg.Type, arg.Status,
		arg.PriceCents, arg.Description, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const updateRoom = `
UPDATE rooms
SET number = $3, type = $4, status = $5, price_cents = $6, description = $7, updated_at = $8
WHERE hotel_id = $1 AND id = $2
`

func (q *Queries) UpdateRoom(ctx context.Context, db DBTX, arg Room) (int64, error) {
	tag, err := db.Exec(ctx, updateRoom,
		arg.HotelID, arg.ID, arg.Number, arg.Type, arg.Status,
		arg.PriceCents, arg.Description, arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteRoom = `DELETE FROM rooms WHERE hotel_id = $1 AND id = $2`

func (q *Queries) DeleteRoom(ctx context.Context, db DBTX, hotelID string, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteRoom, hotelID, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getRoom = `SELECT ` + roomColumns + ` FROM rooms WHERE hotel_id = $1 AND id = $2`

func (q *Queries) GetRoom(ctx context.Context, db DBTX, hotelID string, id uuid.UUID) (Room, error) {
	rows, err := db.Query(ctx, getRoom, hotelID, id)
	if err != nil {
		return Room{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Room])
}

const listRooms = `SELECT ` + roomColumns + ` FROM rooms WHERE hotel_id = $1 ORDER BY number`

func (q *Queries) ListRooms(ctx context.Context, db DBTX, hotelID string) ([]Room, error) {
	rows, err := db.Query(ctx, listRooms, hotelID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Room])
}

const getRoomsByIDs = `
SELECT ` + roomColumns + ` FROM rooms WHERE hotel_id = $1 AND id = ANY($2::uuid[]) ORDER BY number
`

func (q *Queries) GetRoomsByIDs(ctx context.Context, db DBTX, hotelID string, ids []pgtype.UUID) ([]Room, error) {
	rows, err := db.Query(ctx, getRoomsByIDs, hotelID, ids)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Room])
}

// Rooms with an occupying reservation covering the instant.
const listOccupiedRoomIDs = `
SELECT DISTINCT unnest(rooms)::uuid AS room_id
FROM reservations
WHERE hotel_id = $1
  AND start_date <= $2 AND end_date >= $2
  AND status IN ('unconfirmed', 'confirmed', 'paid')
`

func (q *Queries) ListOccupiedRoomIDs(ctx context.Context, db DBTX, hotelID string, at pgtype.Timestamptz) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, listOccupiedRoomIDs, hotelID, at)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}
