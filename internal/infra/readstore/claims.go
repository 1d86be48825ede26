package readstore

import (
	"context"

	"frontdesk/internal/domain/reservation"
	"frontdesk/internal/infra"
	"frontdesk/internal/infra/query"
	"frontdesk/internal/infra/repository/converter"
	"frontdesk/internal/pkg/pgconv"
)

type ClaimQueries interface {
	ListRoomClaims(ctx context.Context, db query.DBTX, arg query.ListRoomClaimsParams) ([]query.ReservationClaim, error)
}

// ClaimReadStore reads room claims straight from the pool, outside any
// transaction and without locks.
type ClaimReadStore struct {
	queries ClaimQueries
	db      query.DBTX
}

func NewClaimReadStore(queries ClaimQueries, db query.DBTX) *ClaimReadStore {
	return &ClaimReadStore{queries: queries, db: db}
}

func (s *ClaimReadStore) RoomClaims(ctx context.Context, q reservation.ConflictQuery) ([]reservation.Claim, error) {
	rows, err := s.queries.ListRoomClaims(ctx, s.db, query.ListRoomClaimsParams{
		HotelID:  q.HotelID,
		RoomID:   q.RoomID,
		Start:    pgconv.TimeToPgtype(q.Window.Start()),
		End:      pgconv.TimeToPgtype(q.Window.End()),
		Statuses: converter.StatusesToStrings(reservation.OccupyingStatuses()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read room claims", err)
	}

	claims := make([]reservation.Claim, len(rows))
	for i, row := range rows {
		claims[i] = converter.ClaimFromRow(row)
	}
	return claims, nil
}
