package repository

import (
	"context"

	"frontdesk/internal/domain/hotel"
	"frontdesk/internal/infra"
	"frontdesk/internal/infra/query"
	"frontdesk/internal/infra/repository/converter"
)

type HotelWriteQueries interface {
	CreateHotel(ctx context.Context, db query.DBTX, arg query.CreateHotelParams) error
	CreateHotelMember(ctx context.Context, db query.DBTX, arg query.HotelMember) error
}

type HotelRepository struct {
	queries HotelWriteQueries
}

func NewHotelRepository(queries HotelWriteQueries) *HotelRepository {
	return &HotelRepository{queries: queries}
}

func (r *HotelRepository) Create(ctx context.Context, tx query.DBTX, h *hotel.Hotel) error {
	if err := r.queries.CreateHotel(ctx, tx, converter.HotelToRow(h)); err != nil {
		return infra.WrapRepoErr("failed to create hotel", err)
	}
	return nil
}

func (r *HotelRepository) AddMember(ctx context.Context, tx query.DBTX, m hotel.Membership) error {
	if err := r.queries.CreateHotelMember(ctx, tx, converter.MembershipToRow(m)); err != nil {
		return infra.WrapRepoErr("failed to add hotel member", err)
	}
	return nil
}
