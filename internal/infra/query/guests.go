package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const guestColumns = `id, reservation_id, hotel_id, name, email, phone, doc_type, doc_num, nationality, created_at`

const createGuest = `
INSERT INTO guests (` + guestColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

func (q *Queries) CreateGuest(ctx context.Context, db DBTX, arg Guest) error {
	_, err := db.Exec(ctx, createGuest,
		arg.ID, arg.ReservationID, arg.HotelID, arg.Name, arg.Email, arg.Phone,
		arg.DocType, arg.DocNum, arg.Nationality, arg.CreatedAt,
	)
	return err
}

const deleteGuestsByReservation = `DELETE FROM guests WHERE reservation_id = $1`

func (q *Queries) DeleteGuestsByReservation(ctx context.Context, db DBTX, reservationID uuid.UUID) error {
	_, err := db.Exec(ctx, deleteGuestsByReservation, reservationID)
	return err
}

const listGuests = `
SELECT ` + guestColumns + ` FROM guests
WHERE hotel_id = $1 AND reservation_id = $2
ORDER BY created_at, id
`

func (q *Queries) ListGuests(ctx context.Context, db DBTX, hotelID string, reservationID uuid.UUID) ([]Guest, error) {
	rows, err := db.Query(ctx, listGuests, hotelID, reservationID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Guest])
}
