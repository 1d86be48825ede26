package readstore

import (
	"context"

	"frontdesk/internal/infra"
	"frontdesk/internal/infra/query"
	"frontdesk/internal/pkg/pgconv"
	"frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.User, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      query.DBTX
}

func NewUserReadStore(queries UserReadQueries, db query.DBTX) *UserReadStore {
	return &UserReadStore{queries: queries, db: db}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := s.queries.GetUserByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

// password_hash never leaves this package.
func toUserView(row query.User) *queries.UserView {
	return &queries.UserView{
		ID:        row.ID,
		Email:     row.Email,
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
	}
}

type HotelReadQueries interface {
	GetHotel(ctx context.Context, db query.DBTX, id string) (query.Hotel, error)
	ListHotelMembers(ctx context.Context, db query.DBTX, hotelID string) ([]query.ListHotelMembersRow, error)
}

type HotelReadStore struct {
	queries HotelReadQueries
	db      query.DBTX
}

func NewHotelReadStore(queries HotelReadQueries, db query.DBTX) *HotelReadStore {
	return &HotelReadStore{queries: queries, db: db}
}

func (s *HotelReadStore) FindByID(ctx context.Context, id string) (*queries.HotelView, error) {
	row, err := s.queries.GetHotel(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel", err)
	}
	return &queries.HotelView{
		ID:        row.ID,
		Name:      row.Name,
		Plan:      row.Plan,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (s *HotelReadStore) Members(ctx context.Context, hotelID string) ([]*queries.MemberView, error) {
	rows, err := s.queries.ListHotelMembers(ctx, s.db, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotel members", err)
	}
	out := make([]*queries.MemberView, len(rows))
	for i, row := range rows {
		out[i] = &queries.MemberView{
			UserID:    row.UserID,
			Email:     row.Email,
			Role:      row.Role,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return out, nil
}
