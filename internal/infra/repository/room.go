package repository

import (
	"context"

	"frontdesk/internal/domain/room"
	"frontdesk/internal/infra"
	"frontdesk/internal/infra/query"
	"frontdesk/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	CreateRoom(ctx context.Context, db query.DBTX, arg query.Room) error
	UpdateRoom(ctx context.Context, db query.DBTX, arg query.Room) (int64, error)
	DeleteRoom(ctx context.Context, db query.DBTX, hotelID string, id uuid.UUID) (int64, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
}

func NewRoomRepository(queries RoomWriteQueries) *RoomRepository {
	return &RoomRepository{queries: queries}
}

func (r *RoomRepository) Create(ctx context.Context, tx query.DBTX, rm *room.Room) error {
	if err := r.queries.CreateRoom(ctx, tx, converter.RoomToRow(rm)); err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, tx query.DBTX, rm *room.Room) error {
	n, err := r.queries.UpdateRoom(ctx, tx, converter.RoomToRow(rm))
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if n == 0 {
		return infra.NotFound("room not found")
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, tx query.DBTX, hotelID string, id uuid.UUID) error {
	n, err := r.queries.DeleteRoom(ctx, tx, hotelID, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if n == 0 {
		return infra.NotFound("room not found")
	}
	return nil
}
