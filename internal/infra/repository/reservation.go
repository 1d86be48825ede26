package repository

import (
	"context"

	"frontdesk/internal/domain/reservation"
	"frontdesk/internal/infra"
	"frontdesk/internal/infra/query"
	"frontdesk/internal/infra/repository/converter"
	"frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db query.DBTX, arg query.Reservation) error
	UpdateReservation(ctx context.Context, db query.DBTX, arg query.Reservation) (int64, error)
	DeleteReservations(ctx context.Context, db query.DBTX, hotelID string, ids []pgtype.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) Create(ctx context.Context, tx query.DBTX, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, tx, converter.ReservationToRow(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, tx query.DBTX, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservation(ctx, tx, converter.ReservationToRow(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if n == 0 {
		return infra.NotFound("reservation not found")
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx query.DBTX, hotelID string, ids []uuid.UUID) (int64, error) {
	n, err := r.queries.DeleteReservations(ctx, tx, hotelID, pgconv.UUIDsToPgtype(ids))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete reservations", err)
	}
	return n, nil
}
