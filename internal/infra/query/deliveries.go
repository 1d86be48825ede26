package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const deliveryColumns = `id, reservation_id, hotel_id, name, qty_delivered, qty_received, created_at, updated_at`

const createDeliveryItem = `
INSERT INTO delivery_items (` + deliveryColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func (q *Queries) CreateDeliveryItem(ctx context.Context, db DBTX, arg DeliveryItem) error {
	_, err := db.Exec(ctx, createDeliveryItem,
		arg.ID, arg.ReservationID, arg.HotelID, arg.Name, arg.QtyDelivered, arg.QtyReceived, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const updateDeliveryReceived = `
UPDATE delivery_items SET qty_received = $3, updated_at = $4
WHERE reservation_id = $1 AND id = $2
`

func (q *Queries) UpdateDeliveryReceived(ctx context.Context, db DBTX, arg DeliveryItem) (int64, error) {
	tag, err := db.Exec(ctx, updateDeliveryReceived, arg.ReservationID, arg.ID, arg.QtyReceived, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listDeliveryItems = `
SELECT ` + deliveryColumns + ` FROM delivery_items
WHERE hotel_id = $1 AND reservation_id = $2
ORDER BY created_at, id
`

func (q *Queries) ListDeliveryItems(ctx context.Context, db DBTX, hotelID string, reservationID uuid.UUID) ([]DeliveryItem, error) {
	rows, err := db.Query(ctx, listDeliveryItems, hotelID, reservationID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[DeliveryItem])
}
