package uow

import (
	"context"

	"frontdesk/internal/domain/client"
	"frontdesk/internal/domain/hotel"
	"frontdesk/internal/domain/reservation"
	"frontdesk/internal/domain/room"
	"frontdesk/internal/domain/user"
	"frontdesk/internal/infra"
	"frontdesk/internal/infra/query"
	"frontdesk/internal/infra/repository/converter"
	"frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// commandReads loads aggregates for commands. Missing rows come back as
// infra NOT_FOUND errors.
type commandReads struct {
	q    *query.Queries
	dbtx query.DBTX
}

func notFoundOr(err error, what string) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(what+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to load "+what, err)
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.q.GetUserByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, notFoundOr(err, "user")
	}
	return converter.UserFromRow(row), nil
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	row, err := r.q.GetUserByEmail(ctx, r.dbtx, email)
	if err != nil {
		return nil, notFoundOr(err, "user")
	}
	return converter.UserFromRow(row), nil
}

func (r *commandReads) Membership(ctx context.Context, hotelID string, userID uuid.UUID) (*hotel.Membership, error) {
	row, err := r.q.GetHotelMember(ctx, r.dbtx, hotelID, userID)
	if err != nil {
		return nil, notFoundOr(err, "membership")
	}
	m := converter.MembershipFromRow(row)
	return &m, nil
}

func (r *commandReads) MembershipsByUser(ctx context.Context, userID uuid.UUID) ([]hotel.Membership, error) {
	rows, err := r.q.ListMembershipsByUser(ctx, r.dbtx, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list memberships", err)
	}
	out := make([]hotel.Membership, len(rows))
	for i, row := range rows {
		out[i] = converter.MembershipFromRow(row)
	}
	return out, nil
}

func (r *commandReads) RoomByID(ctx context.Context, hotelID string, id uuid.UUID) (*room.Room, error) {
	row, err := r.q.GetRoom(ctx, r.dbtx, hotelID, id)
	if err != nil {
		return nil, notFoundOr(err, "room")
	}
	return converter.RoomFromRow(row), nil
}

func (r *commandReads) RoomsByIDs(ctx context.Context, hotelID string, ids []uuid.UUID) ([]*room.Room, error) {
	rows, err := r.q.GetRoomsByIDs(ctx, r.dbtx, hotelID, pgconv.UUIDsToPgtype(ids))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load rooms", err)
	}
	out := make([]*room.Room, len(rows))
	for i, row := range rows {
		out[i] = converter.RoomFromRow(row)
	}
	return out, nil
}

func (r *commandReads) ClientByID(ctx context.Context, hotelID string, id uuid.UUID) (*client.Client, error) {
	row, err := r.q.GetClient(ctx, r.dbtx, hotelID, id)
	if err != nil {
		return nil, notFoundOr(err, "client")
	}
	return converter.ClientFromRow(row), nil
}

func (r *commandReads) ClientByDocument(ctx context.Context, hotelID string, docType client.DocumentType, docID string) (*client.Client, error) {
	row, err := r.q.FindClientByDocument(ctx, r.dbtx, hotelID, string(docType), docID)
	if err != nil {
		return nil, notFoundOr(err, "client")
	}
	return converter.ClientFromRow(row), nil
}

func (r *commandReads) ReservationByID(ctx context.Context, hotelID string, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.q.GetReservation(ctx, r.dbtx, hotelID, id)
	if err != nil {
		return nil, notFoundOr(err, "reservation")
	}
	return converter.ReservationFromRow(row), nil
}

func (r *commandReads) ReservationForUpdate(ctx context.Context, hotelID string, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.q.GetReservationForUpdate(ctx, r.dbtx, hotelID, id)
	if err != nil {
		return nil, notFoundOr(err, "reservation")
	}
	return converter.ReservationFromRow(row), nil
}

func (r *commandReads) DeliveryItems(ctx context.Context, hotelID string, reservationID uuid.UUID) ([]reservation.DeliveryItem, error) {
	rows, err := r.q.ListDeliveryItems(ctx, r.dbtx, hotelID, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list delivery items", err)
	}
	out := make([]reservation.DeliveryItem, len(rows))
	for i, row := range rows {
		out[i] = converter.DeliveryItemFromRow(row)
	}
	return out, nil
}
