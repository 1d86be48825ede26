package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, reservation_id, hotel_id, amount_cents, method, created_by, created_at`

const createPayment = `
INSERT INTO payments (` + paymentColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (q *Queries) CreatePayment(ctx context.Context, db DBTX, arg Payment) error {
	_, err := db.Exec(ctx, createPayment,
		arg.ID, arg.ReservationID, arg.HotelID, arg.AmountCents, arg.Method, arg.CreatedBy, arg.CreatedAt,
	)
	return err
}

const listPayments = `
SELECT ` + paymentColumns + ` FROM payments
WHERE hotel_id = $1 AND reservation_id = $2
ORDER BY created_at, id
`

func (q *Queries) ListPayments(ctx context.Context, db DBTX, hotelID string, reservationID uuid.UUID) ([]Payment, error) {
	rows, err := db.Query(ctx, listPayments, hotelID, reservationID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Payment])
}
