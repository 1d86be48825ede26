package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"time"

	"frontdesk/internal/domain/reservation"
	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRoomNotFound = errs.NotFound(errs.New("room not found"))

type RoomReadStore interface {
	List(ctx context.Context, hotelID string) ([]*RoomView, error)
	FindByID(ctx context.Context, hotelID string, id uuid.UUID) (*RoomView, error)
	// OccupiedRoomIDs lists rooms held by an occupying reservation at the instant.
	OccupiedRoomIDs(ctx context.Context, hotelID string, at time.Time) ([]uuid.UUID, error)
}

type RoomQueries interface {
	List(ctx context.Context, actor shared.Actor) ([]*RoomView, error)
	Get(ctx context.Context, actor shared.Actor, id uuid.UUID) (*RoomView, error)
	Availability(ctx context.Context, actor shared.Actor, start, end time.Time, exclude *uuid.UUID) ([]*RoomAvailabilityView, error)
}

type roomQueriesImpl struct {
	store   RoomReadStore
	checker *AvailabilityChecker
	clock   clock.Clock
}

func NewRoomQueries(store RoomReadStore, checker *AvailabilityChecker, clk clock.Clock) RoomQueries {
	return &roomQueriesImpl{store: store, checker: checker, clock: clk}
}

func (q *roomQueriesImpl) List(ctx context.Context, actor shared.Actor) ([]*RoomView, error) {
	if err := requireMember(actor); err != nil {
		return nil, err
	}
	rooms, err := q.store.List(ctx, actor.HotelID)
	if err != nil {
		return nil, err
	}
	occupied, err := q.store.OccupiedRoomIDs(ctx, actor.HotelID, q.clock.Now())
	if err != nil {
		return nil, err
	}
	markOccupied(rooms, occupied)
	return rooms, nil
}

func (q *roomQueriesImpl) Get(ctx context.Context, actor shared.Actor, id uuid.UUID) (*RoomView, error) {
	if err := requireMember(actor); err != nil {
		return nil, err
	}
	rm, err := q.store.FindByID(ctx, actor.HotelID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	occupied, err := q.store.OccupiedRoomIDs(ctx, actor.HotelID, q.clock.Now())
	if err != nil {
		return nil, err
	}
	markOccupied([]*RoomView{rm}, occupied)
	return rm, nil
}

// Availability runs the conflict check for every room of the hotel. One
// failing check fails the whole listing.
func (q *roomQueriesImpl) Availability(ctx context.Context, actor shared.Actor, start, end time.Time, exclude *uuid.UUID) ([]*RoomAvailabilityView, error) {
	if err := requireMember(actor); err != nil {
		return nil, err
	}
	if _, err := reservation.NewStay(start, end); err != nil {
		return nil, errs.Validation(err)
	}

	rooms, err := q.List(ctx, actor)
	if err != nil {
		return nil, err
	}

	out := make([]*RoomAvailabilityView, 0, len(rooms))
	for _, rm := range rooms {
		free, err := q.checker.IsRoomFree(ctx, actor.HotelID, rm.ID, start, end, exclude)
		if err != nil {
			return nil, err
		}
		out = append(out, &RoomAvailabilityView{RoomView: *rm, Free: free})
	}
	return out, nil
}

func markOccupied(rooms []*RoomView, occupied []uuid.UUID) {
	set := make(map[uuid.UUID]struct{}, len(occupied))
	for _, id := range occupied {
		set[id] = struct{}{}
	}
	for _, rm := range rooms {
		_, rm.OccupiedNow = set[rm.ID]
	}
}
