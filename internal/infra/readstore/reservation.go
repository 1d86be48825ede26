package readstore

import (
	"context"
	"time"

	"frontdesk/internal/domain/reservation"
	"frontdesk/internal/infra"
	"frontdesk/internal/infra/query"
	"frontdesk/internal/pkg/pgconv"
	"frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	GetReservationView(ctx context.Context, db query.DBTX, hotelID string, id uuid.UUID) (query.ReservationView, error)
	ListReservations(ctx context.Context, db query.DBTX, arg query.ListReservationsParams) ([]query.ReservationView, error)
	ListCalendar(ctx context.Context, db query.DBTX, arg query.ListCalendarParams) ([]query.ReservationView, error)
	ListPayments(ctx context.Context, db query.DBTX, hotelID string, reservationID uuid.UUID) ([]query.Payment, error)
	ListDeliveryItems(ctx context.Context, db query.DBTX, hotelID string, reservationID uuid.UUID) ([]query.DeliveryItem, error)
	ListGuests(ctx context.Context, db query.DBTX, hotelID string, reservationID uuid.UUID) ([]query.Guest, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      query.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db query.DBTX) *ReservationReadStore {
	return &ReservationReadStore{queries: queries, db: db}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, hotelID string, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := s.queries.GetReservationView(ctx, s.db, hotelID, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return toReservationView(row), nil
}

func (s *ReservationReadStore) List(ctx context.Context, hotelID string, filter queries.ReservationFilter, after *queries.Keyset, limit int) ([]*queries.ReservationView, error) {
	params := query.ListReservationsParams{
		HotelID:  hotelID,
		Statuses: filter.Statuses,
		Channel:  filter.Channel,
		ClientID: filter.ClientID,
		RoomID:   filter.RoomID,
		From:     timestamptzPtr(filter.From),
		To:       timestamptzPtr(filter.To),
		Limit:    uint64(limit),
	}
	if after != nil {
		createdAt := pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterCreatedAt = &createdAt
		params.AfterID = &after.ID
	}

	rows, err := s.queries.ListReservations(ctx, s.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return toReservationViews(rows), nil
}

func (s *ReservationReadStore) Calendar(ctx context.Context, hotelID string, from, to time.Time, includeCancelled bool) ([]*queries.ReservationView, error) {
	rows, err := s.queries.ListCalendar(ctx, s.db, query.ListCalendarParams{
		HotelID:          hotelID,
		From:             pgconv.TimeToPgtype(from),
		To:               pgconv.TimeToPgtype(to),
		IncludeCancelled: includeCancelled,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list calendar", err)
	}
	return toReservationViews(rows), nil
}

func (s *ReservationReadStore) Payments(ctx context.Context, hotelID string, reservationID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := s.queries.ListPayments(ctx, s.db, hotelID, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	out := make([]*queries.PaymentView, len(rows))
	for i, row := range rows {
		out[i] = &queries.PaymentView{
			ID:          row.ID,
			AmountCents: row.AmountCents,
			Method:      row.Method,
			CreatedBy:   pgconv.UUIDPtrFromPgtype(row.CreatedBy),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return out, nil
}

func (s *ReservationReadStore) DeliveryItems(ctx context.Context, hotelID string, reservationID uuid.UUID) ([]*queries.DeliveryItemView, error) {
	rows, err := s.queries.ListDeliveryItems(ctx, s.db, hotelID, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list delivery items", err)
	}
	out := make([]*queries.DeliveryItemView, len(rows))
	for i, row := range rows {
		out[i] = &queries.DeliveryItemView{
			ID:           row.ID,
			Name:         row.Name,
			QtyDelivered: int(row.QtyDelivered),
			QtyReceived:  int(row.QtyReceived),
			UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return out, nil
}

func (s *ReservationReadStore) Guests(ctx context.Context, hotelID string, reservationID uuid.UUID) ([]*queries.GuestView, error) {
	rows, err := s.queries.ListGuests(ctx, s.db, hotelID, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guests", err)
	}
	out := make([]*queries.GuestView, len(rows))
	for i, row := range rows {
		out[i] = &queries.GuestView{
			ID:          row.ID,
			Name:        row.Name,
			Email:       row.Email,
			Phone:       row.Phone,
			DocType:     row.DocType,
			DocNum:      row.DocNum,
			Nationality: row.Nationality,
		}
	}
	return out, nil
}

func toReservationViews(rows []query.ReservationView) []*queries.ReservationView {
	out := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		out[i] = toReservationView(row)
	}
	return out
}

func toReservationView(row query.ReservationView) *queries.ReservationView {
	start := pgconv.TimeFromPgtype(row.StartDate)
	end := pgconv.TimeFromPgtype(row.EndDate)
	return &queries.ReservationView{
		ID:           row.ID,
		ClientID:     row.ClientID,
		ClientName:   row.ClientName,
		Rooms:        pgconv.UUIDsFromPgtype(row.Rooms),
		RoomNumbers:  row.RoomNumbers,
		StartDate:    start,
		EndDate:      end,
		Nights:       reservation.StayWindow(start, end).Nights(),
		Status:       row.Status,
		Channel:      row.Channel,
		Notes:        row.Notes,
		Guests:       int(row.Guests),
		TotalCents:   row.TotalCents,
		BalanceCents: row.BalanceCents,
		PaidCents:    row.TotalCents - row.BalanceCents,
		Missing:      row.Missing,
		Occupancy:    row.Occupancy,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func timestamptzPtr(t *time.Time) *pgtype.Timestamptz {
	if t == nil {
		return nil
	}
	ts := pgconv.TimeToPgtype(*t)
	return &ts
}
