package readstore

import (
	"context"
	"time"

	"frontdesk/internal/infra"
	"frontdesk/internal/infra/query"
	"frontdesk/internal/pkg/pgconv"
	"frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomReadQueries interface {
	GetRoom(ctx context.Context, db query.DBTX, hotelID string, id uuid.UUID) (query.Room, error)
	ListRooms(ctx context.Context, db query.DBTX, hotelID string) ([]query.Room, error)
	ListOccupiedRoomIDs(ctx context.Context, db query.DBTX, hotelID string, at pgtype.Timestamptz) ([]uuid.UUID, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      query.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db query.DBTX) *RoomReadStore {
	return &RoomReadStore{queries: queries, db: db}
}

func (s *RoomReadStore) List(ctx context.Context, hotelID string) ([]*queries.RoomView, error) {
	rows, err := s.queries.ListRooms(ctx, s.db, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	out := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		out[i] = toRoomView(row)
	}
	return out, nil
}

func (s *RoomReadStore) FindByID(ctx context.Context, hotelID string, id uuid.UUID) (*queries.RoomView, error) {
	row, err := s.queries.GetRoom(ctx, s.db, hotelID, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return toRoomView(row), nil
}

func (s *RoomReadStore) OccupiedRoomIDs(ctx context.Context, hotelID string, at time.Time) ([]uuid.UUID, error) {
	ids, err := s.queries.ListOccupiedRoomIDs(ctx, s.db, hotelID, pgconv.TimeToPgtype(at))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupied rooms", err)
	}
	return ids, nil
}

func toRoomView(row query.Room) *queries.RoomView {
	return &queries.RoomView{
		ID:          row.ID,
		Number:      row.Number,
		Type:        row.Type,
		Status:      row.Status,
		PriceCents:  row.PriceCents,
		Description: row.Description,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

type ClientReadQueries interface {
	GetClient(ctx context.Context, db query.DBTX, hotelID string, id uuid.UUID) (query.Client, error)
	SearchClients(ctx context.Context, db query.DBTX, arg query.SearchClientsParams) ([]query.Client, error)
}

type ClientReadStore struct {
	queries ClientReadQueries
	db      query.DBTX
}

func NewClientReadStore(queries ClientReadQueries, db query.DBTX) *ClientReadStore {
	return &ClientReadStore{queries: queries, db: db}
}

func (s *ClientReadStore) Search(ctx context.Context, hotelID, term string, limit int) ([]*queries.ClientView, error) {
	rows, err := s.queries.SearchClients(ctx, s.db, query.SearchClientsParams{
		HotelID: hotelID,
		Term:    term,
		Limit:   uint64(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search clients", err)
	}
	out := make([]*queries.ClientView, len(rows))
	for i, row := range rows {
		out[i] = toClientView(row)
	}
	return out, nil
}

func (s *ClientReadStore) FindByID(ctx context.Context, hotelID string, id uuid.UUID) (*queries.ClientView, error) {
	row, err := s.queries.GetClient(ctx, s.db, hotelID, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client", err)
	}
	return toClientView(row), nil
}

func toClientView(row query.Client) *queries.ClientView {
	return &queries.ClientView{
		ID:           row.ID,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Email:        row.Email,
		Phone:        row.Phone,
		DocumentType: row.DocumentType,
		DocumentID:   row.DocumentID,
		Address:      row.Address,
		Notes:        row.Notes,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
