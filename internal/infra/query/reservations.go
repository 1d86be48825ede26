package query

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, hotel_id, client_id, rooms, start_date, end_date, status, channel, notes, guests, ` +
	`total_cents, balance_cents, missing, occupancy, created_at, updated_at`

const createReservation = `
INSERT INTO reservations (` + reservationColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
`

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg Reservation) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ID, arg.HotelID, arg.ClientID, arg.Rooms, arg.StartDate, arg.EndDate,
		arg.Status, arg.Channel, arg.Notes, arg.Guests, arg.TotalCents, arg.BalanceCents,
		arg.Missing, arg.Occupancy, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const updateReservation = `
UPDATE reservations
SET client_id = $3, rooms = $4, start_date = $5, end_date = $6, status = $7, channel = $8,
    notes = $9, guests = $10, total_cents = $11, balance_cents = $12, missing = $13,
    occupancy = $14, updated_at = $15
WHERE hotel_id = $1 AND id = $2
`

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg Reservation) (int64, error) {
	tag, err := db.Exec(ctx, updateReservation,
		arg.HotelID, arg.ID, arg.ClientID, arg.Rooms, arg.StartDate, arg.EndDate,
		arg.Status, arg.Channel, arg.Notes, arg.Guests, arg.TotalCents, arg.BalanceCents,
		arg.Missing, arg.Occupancy, arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteReservations = `DELETE FROM reservations WHERE hotel_id = $1 AND id = ANY($2::uuid[])`

func (q *Queries) DeleteReservations(ctx context.Context, db DBTX, hotelID string, ids []pgtype.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteReservations, hotelID, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getReservation = `SELECT ` + reservationColumns + ` FROM reservations WHERE hotel_id = $1 AND id = $2`

func (q *Queries) GetReservation(ctx context.Context, db DBTX, hotelID string, id uuid.UUID) (Reservation, error) {
	rows, err := db.Query(ctx, getReservation, hotelID, id)
	if err != nil {
		return Reservation{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Reservation])
}

// GetReservationForUpdate locks the row until the surrounding transaction ends.
func (q *Queries) GetReservationForUpdate(ctx context.Context, db DBTX, hotelID string, id uuid.UUID) (Reservation, error) {
	rows, err := db.Query(ctx, getReservation+" FOR UPDATE", hotelID, id)
	if err != nil {
		return Reservation{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Reservation])
}

// ReservationClaim is the minimal projection the availability check reads.
type ReservationClaim struct {
	ID        uuid.UUID          `db:"id"`
	Status    string             `db:"status"`
	StartDate pgtype.Timestamptz `db:"start_date"`
	EndDate   pgtype.Timestamptz `db:"end_date"`
}

type ListRoomClaimsParams struct {
	HotelID  string
	RoomID   uuid.UUID
	Start    pgtype.Timestamptz
	End      pgtype.Timestamptz
	Statuses []string
}

// ListRoomClaims returns reservations holding RoomID whose stay touches
// [Start, End] under the closed-interval rule.
func (q *Queries) ListRoomClaims(ctx context.Context, db DBTX, arg ListRoomClaimsParams) ([]ReservationClaim, error) {
	sqlStr, args, err := q.psql.
		Select("id", "status", "start_date", "end_date").
		From("reservations").
		Where(sq.Eq{"hotel_id": arg.HotelID}).
		Where("? = ANY(rooms)", arg.RoomID).
		Where(sq.LtOrEq{"start_date": arg.End}).
		Where(sq.GtOrEq{"end_date": arg.Start}).
		Where(sq.Eq{"status": arg.Statuses}).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[ReservationClaim])
}

// ReservationView joins display data. client_id is a weak reference, so the
// client name is empty once the client is gone.
type ReservationView struct {
	Reservation
	ClientName  string   `db:"client_name"`
	RoomNumbers []string `db:"room_numbers"`
}

func (q *Queries) reservationViewSelect() sq.SelectBuilder {
	cols := strings.Split(reservationColumns, ", ")
	for i, c := range cols {
		cols[i] = "r." + c
	}
	cols = append(cols,
		"COALESCE(c.first_name || ' ' || c.last_name, '') AS client_name",
		"ARRAY(SELECT rm.number FROM rooms rm WHERE rm.id = ANY(r.rooms) ORDER BY rm.number)::text[] AS room_numbers",
	)
	return q.psql.Select(cols...).
		From("reservations r").
		LeftJoin("clients c ON c.id = r.client_id AND c.hotel_id = r.hotel_id")
}

func (q *Queries) GetReservationView(ctx context.Context, db DBTX, hotelID string, id uuid.UUID) (ReservationView, error) {
	sqlStr, args, err := q.reservationViewSelect().
		Where(sq.Eq{"r.hotel_id": hotelID, "r.id": id}).
		ToSql()
	if err != nil {
		return ReservationView{}, err
	}
	rows, err := db.Query(ctx, sqlStr, args...)
	if err != nil {
		return ReservationView{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[ReservationView])
}

type ListReservationsParams struct {
	HotelID  string
	Statuses []string
	Channel  *string
	ClientID *uuid.UUID
	RoomID   *uuid.UUID
	// From and To select stays touching the range.
	From *pgtype.Timestamptz
	To   *pgtype.Timestamptz
	// AfterCreatedAt and AfterID continue a created_at DESC, id DESC listing.
	AfterCreatedAt *pgtype.Timestamptz
	AfterID        *uuid.UUID
	Limit          uint64
}

func (q *Queries) ListReservations(ctx context.Context, db DBTX, arg ListReservationsParams) ([]ReservationView, error) {
	b := q.reservationViewSelect().
		Where(sq.Eq{"r.hotel_id": arg.HotelID}).
		OrderBy("r.created_at DESC", "r.id DESC")

	if len(arg.Statuses) > 0 {
		b = b.Where(sq.Eq{"r.status": arg.Statuses})
	}
	if arg.Channel != nil {
		b = b.Where(sq.Eq{"r.channel": *arg.Channel})
	}
	if arg.ClientID != nil {
		b = b.Where(sq.Eq{"r.client_id": *arg.ClientID})
	}
	if arg.RoomID != nil {
		b = b.Where("? = ANY(r.rooms)", *arg.RoomID)
	}
	if arg.To != nil {
		b = b.Where(sq.LtOrEq{"r.start_date": *arg.To})
	}
	if arg.From != nil {
		b = b.Where(sq.GtOrEq{"r.end_date": *arg.From})
	}
	if arg.AfterCreatedAt != nil && arg.AfterID != nil {
		b = b.Where("(r.created_at, r.id) < (?, ?)", *arg.AfterCreatedAt, *arg.AfterID)
	}
	if arg.Limit > 0 {
		b = b.Limit(arg.Limit)
	}

	return q.collectViews(ctx, db, b)
}

type ListCalendarParams struct {
	HotelID          string
	From             pgtype.Timestamptz
	To               pgtype.Timestamptz
	IncludeCancelled bool
}

// ListCalendar returns every stay touching [From, To], ordered by start.
func (q *Queries) ListCalendar(ctx context.Context, db DBTX, arg ListCalendarParams) ([]ReservationView, error) {
	b := q.reservationViewSelect().
		Where(sq.Eq{"r.hotel_id": arg.HotelID}).
		Where(sq.LtOrEq{"r.start_date": arg.To}).
		Where(sq.GtOrEq{"r.end_date": arg.From}).
		OrderBy("r.start_date", "r.id")
	if !arg.IncludeCancelled {
		b = b.Where(sq.NotEq{"r.status": "cancelled"})
	}
	return q.collectViews(ctx, db, b)
}

func (q *Queries) collectViews(ctx context.Context, db DBTX, b sq.SelectBuilder) ([]ReservationView, error) {
	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[ReservationView])
}
