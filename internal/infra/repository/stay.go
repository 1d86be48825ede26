package repository

import (
	"context"

	"frontdesk/internal/domain/reservation"
	"frontdesk/internal/infra"
	"frontdesk/internal/infra/query"
	"frontdesk/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db query.DBTX, arg query.Payment) error
}

type PaymentRepository struct {
	queries PaymentWriteQueries
}

func NewPaymentRepository(queries PaymentWriteQueries) *PaymentRepository {
	return &PaymentRepository{queries: queries}
}

func (r *PaymentRepository) Create(ctx context.Context, tx query.DBTX, hotelID string, p *reservation.Payment, createdBy uuid.UUID) error {
	if err := r.queries.CreatePayment(ctx, tx, converter.PaymentToRow(hotelID, p, createdBy)); err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

type DeliveryWriteQueries interface {
	CreateDeliveryItem(ctx context.Context, db query.DBTX, arg query.DeliveryItem) error
	UpdateDeliveryReceived(ctx context.Context, db query.DBTX, arg query.DeliveryItem) (int64, error)
}

type DeliveryRepository struct {
	queries DeliveryWriteQueries
}

func NewDeliveryRepository(queries DeliveryWriteQueries) *DeliveryRepository {
	return &DeliveryRepository{queries: queries}
}

func (r *DeliveryRepository) Create(ctx context.Context, tx query.DBTX, hotelID string, item reservation.DeliveryItem) error {
	if err := r.queries.CreateDeliveryItem(ctx, tx, converter.DeliveryItemToRow(hotelID, item)); err != nil {
		return infra.WrapRepoErr("failed to create delivery item", err)
	}
	return nil
}

func (r *DeliveryRepository) UpdateReceived(ctx context.Context, tx query.DBTX, item reservation.DeliveryItem) error {
	n, err := r.queries.UpdateDeliveryReceived(ctx, tx, converter.DeliveryItemToRow("", item))
	if err != nil {
		return infra.WrapRepoErr("failed to update delivery item", err)
	}
	if n == 0 {
		return infra.NotFound("delivery item not found")
	}
	return nil
}

type GuestWriteQueries interface {
	DeleteGuestsByReservation(ctx context.Context, db query.DBTX, reservationID uuid.UUID) error
	CreateGuest(ctx context.Context, db query.DBTX, arg query.Guest) error
}

type GuestRepository struct {
	queries GuestWriteQueries
}

func NewGuestRepository(queries GuestWriteQueries) *GuestRepository {
	return &GuestRepository{queries: queries}
}

func (r *GuestRepository) Replace(ctx context.Context, tx query.DBTX, hotelID string, reservationID uuid.UUID, guests []reservation.Guest) error {
	if err := r.queries.DeleteGuestsByReservation(ctx, tx, reservationID); err != nil {
		return infra.WrapRepoErr("failed to clear guests", err)
	}
	for _, g := range guests {
		if err := r.queries.CreateGuest(ctx, tx, converter.GuestToRow(hotelID, g)); err != nil {
			return infra.WrapRepoErr("failed to create guest", err)
		}
	}
	return nil
}
