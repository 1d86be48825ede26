package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"frontdesk/internal/domain/reservation"
	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrPublicReservationNotFound hides whether the hotel or the reservation is
// missing.
var ErrPublicReservationNotFound = errs.NotFound(errs.New("reservation link is not valid"))

type PublicQueries interface {
	GetReservation(ctx context.Context, hotelID string, id uuid.UUID) (*PublicReservationView, error)
}

type publicQueriesImpl struct {
	hotels       HotelReadStore
	reservations ReservationReadStore
}

func NewPublicQueries(hotels HotelReadStore, reservations ReservationReadStore) PublicQueries {
	return &publicQueriesImpl{hotels: hotels, reservations: reservations}
}

func (q *publicQueriesImpl) GetReservation(ctx context.Context, hotelID string, id uuid.UUID) (*PublicReservationView, error) {
	h, err := q.hotels.FindByID(ctx, hotelID)
	if err != nil {
		return nil, hideMissing(err)
	}
	v, err := q.reservations.FindByID(ctx, hotelID, id)
	if err != nil {
		return nil, hideMissing(err)
	}
	if v.Status == string(reservation.StatusCancelled) {
		return nil, ErrPublicReservationNotFound
	}
	return &PublicReservationView{
		ID:          v.ID,
		HotelName:   h.Name,
		RoomNumbers: v.RoomNumbers,
		StartDate:   v.StartDate,
		EndDate:     v.EndDate,
		Guests:      v.Guests,
		Status:      v.Status,
		Occupancy:   v.Occupancy,
	}, nil
}

func hideMissing(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrPublicReservationNotFound
	}
	return err
}
