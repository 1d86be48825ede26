package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"errors"
	"time"

	"frontdesk/internal/domain/reservation"
	"frontdesk/internal/domain/room"
	"frontdesk/internal/domain/user"
	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.NotFound(errs.New("reservation does not exist in this hotel"))
	ErrReservationClosed   = errs.Conflict(errs.New("reservation can no longer change"))
	ErrRoomUnavailable     = errs.Conflict(errs.New("room is not available for the selected dates"))
	ErrUnknownRoom         = errs.Validation(errs.New("reservation references an unknown room"))
	ErrUnknownClient       = errs.Validation(errs.New("reservation references an unknown client"))
	ErrNoReservationIDs    = errs.Validation(errs.New("no reservation ids given"))
	ErrAvailabilityUnknown = errs.New("room availability could not be determined")
)

// ReservationInput is the booking form. A nil TotalCents prices the stay as
// the sum of the selected rooms' nightly prices.
type ReservationInput struct {
	ClientID   uuid.UUID
	Rooms      []uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Status     string
	Channel    string
	Notes      string
	Guests     int
	TotalCents *int64
}

func (in ReservationInput) details() (reservation.Details, error) {
	stay, err := reservation.NewStay(in.StartDate, in.EndDate)
	if err != nil {
		return reservation.Details{}, err
	}
	return reservation.Details{
		ClientID: in.ClientID,
		Rooms:    in.Rooms,
		Stay:     stay,
		Status:   reservation.Status(in.Status),
		Channel:  reservation.Channel(in.Channel),
		Notes:    reservation.NewNote(in.Notes),
		Guests:   in.Guests,
	}.Validate()
}

type ReservationCommands interface {
	Create(ctx context.Context, actor shared.Actor, in ReservationInput) (uuid.UUID, error)
	Update(ctx context.Context, actor shared.Actor, id uuid.UUID, in ReservationInput) error
	ChangeStatus(ctx context.Context, actor shared.Actor, id uuid.UUID, status string) error
	Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) error
	Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) error
	BulkDelete(ctx context.Context, actor shared.Actor, ids []uuid.UUID) (int64, error)
}

type reservationCommandsImpl struct {
	uow          shared.UnitOfWork
	availability RoomAvailability
	notifier     changeNotifier
	recorder     ReservationRecorder
	clock        clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	availability RoomAvailability,
	publisher ChangePublisher,
	recorder ReservationRecorder,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:          uow,
		availability: availability,
		notifier:     changeNotifier{publisher: publisher},
		recorder:     recorder,
		clock:        clk,
	}
}

// Create books the rooms after checking each one in the order given. The
// first taken room aborts the whole booking. Checks and write are not atomic:
// two callers racing for the same room can both succeed.
func (c *reservationCommandsImpl) Create(ctx context.Context, actor shared.Actor, in ReservationInput) (uuid.UUID, error) {
	if err := requireRole(actor, user.RoleOperator); err != nil {
		return uuid.Nil, err
	}
	details, err := in.details()
	if err != nil {
		return uuid.Nil, errs.Validation(err)
	}

	rooms, err := c.loadBooking(ctx, actor.HotelID, details)
	if err != nil {
		return uuid.Nil, err
	}
	if err := c.ensureRoomsFree(ctx, actor.HotelID, rooms, details.Stay, nil); err != nil {
		return uuid.Nil, err
	}

	total := sumPrices(rooms)
	if in.TotalCents != nil {
		total = *in.TotalCents
	}
	now := c.clock.Now()
	res, err := reservation.NewReservation(actor.HotelID, details, total, now)
	if err != nil {
		return uuid.Nil, domainErr(err)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return err
		}
		return enqueue(ctx, tx, TopicReservationCreated, reservationEvent(res, now))
	})
	if err != nil {
		return uuid.Nil, err
	}

	if c.recorder != nil {
		c.recorder.ReservationCreated(string(res.Channel()))
	}
	c.notifier.notify(ctx, actor.HotelID, res.ID(), shared.ChangeCreated, now)
	return res.ID(), nil
}

// Update re-runs the availability check for every room with the reservation
// itself excluded, so keeping the same rooms and dates never conflicts. An
// edit that cancels skips the check.
func (c *reservationCommandsImpl) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, in ReservationInput) error {
	if err := requireRole(actor, user.RoleOperator); err != nil {
		return err
	}

	current, err := c.uow.CommandReads().ReservationByID(ctx, actor.HotelID, id)
	if err != nil {
		return reservationReadErr(err)
	}
	if current.IsCancelled() {
		return ErrReservationClosed
	}
	if in.Status == "" {
		in.Status = string(current.Status())
	}
	details, err := in.details()
	if err != nil {
		return errs.Validation(err)
	}

	rooms, err := c.loadBooking(ctx, actor.HotelID, details)
	if err != nil {
		return err
	}
	if details.Status.OccupiesRoom() {
		if err := c.ensureRoomsFree(ctx, actor.HotelID, rooms, details.Stay, &id); err != nil {
			return err
		}
	}

	now := c.clock.Now()
	kind := shared.ChangeUpdated
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationForUpdate(ctx, actor.HotelID, id)
		if err != nil {
			return reservationReadErr(err)
		}

		total := res.TotalCents()
		switch {
		case in.TotalCents != nil:
			total = *in.TotalCents
		case !sameRooms(res.Rooms(), details.Rooms):
			total = sumPrices(rooms)
		}

		if err := res.Update(details, total, now); err != nil {
			return domainErr(err)
		}
		if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
			return reservationReadErr(err)
		}

		topic := TopicReservationUpdated
		if res.IsCancelled() {
			topic, kind = TopicReservationCancelled, shared.ChangeCancelled
		}
		return enqueue(ctx, tx, topic, reservationEvent(res, now))
	})
	if err != nil {
		return err
	}

	c.notifier.notify(ctx, actor.HotelID, id, kind, now)
	return nil
}

// ChangeStatus never re-checks availability. Cancelled is terminal, so no
// status change can make a reservation start occupying a room again.
func (c *reservationCommandsImpl) ChangeStatus(ctx context.Context, actor shared.Actor, id uuid.UUID, status string) error {
	if err := requireRole(actor, user.RoleOperator); err != nil {
		return err
	}

	now := c.clock.Now()
	kind := shared.ChangeUpdated
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationForUpdate(ctx, actor.HotelID, id)
		if err != nil {
			return reservationReadErr(err)
		}
		if err := res.ChangeStatus(reservation.Status(status), now); err != nil {
			return domainErr(err)
		}
		if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
			return reservationReadErr(err)
		}

		topic := TopicReservationUpdated
		if res.IsCancelled() {
			topic, kind = TopicReservationCancelled, shared.ChangeCancelled
		}
		return enqueue(ctx, tx, topic, reservationEvent(res, now))
	})
	if err != nil {
		return err
	}

	c.notifier.notify(ctx, actor.HotelID, id, kind, now)
	return nil
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	return c.ChangeStatus(ctx, actor, id, string(reservation.StatusCancelled))
}

func (c *reservationCommandsImpl) Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	_, err := c.BulkDelete(ctx, actor, []uuid.UUID{id})
	return err
}

// BulkDelete removes all reservations or none. An unknown id rolls back the
// whole batch.
func (c *reservationCommandsImpl) BulkDelete(ctx context.Context, actor shared.Actor, ids []uuid.UUID) (int64, error) {
	if err := requireRole(actor, user.RoleAdmin); err != nil {
		return 0, err
	}
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return 0, ErrNoReservationIDs
	}

	var deleted int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Reservations().Delete(ctx, tx.DB(), actor.HotelID, ids)
		if err != nil {
			return err
		}
		if n != int64(len(ids)) {
			return ErrReservationNotFound
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	now := c.clock.Now()
	for _, id := range ids {
		c.notifier.notify(ctx, actor.HotelID, id, shared.ChangeDeleted, now)
	}
	return deleted, nil
}

// loadBooking resolves the client and every selected room, in the order the
// rooms were given.
func (c *reservationCommandsImpl) loadBooking(ctx context.Context, hotelID string, details reservation.Details) ([]*room.Room, error) {
	reads := c.uow.CommandReads()
	if _, err := reads.ClientByID(ctx, hotelID, details.ClientID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUnknownClient
		}
		return nil, err
	}

	found, err := reads.RoomsByIDs(ctx, hotelID, details.Rooms)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*room.Room, len(found))
	for _, rm := range found {
		byID[rm.ID()] = rm
	}
	rooms := make([]*room.Room, 0, len(details.Rooms))
	for _, id := range details.Rooms {
		rm, ok := byID[id]
		if !ok {
			return nil, ErrUnknownRoom
		}
		rooms = append(rooms, rm)
	}
	return rooms, nil
}

// ensureRoomsFree stops at the first room that is taken or whose check fails.
// A failed check is never read as free.
func (c *reservationCommandsImpl) ensureRoomsFree(ctx context.Context, hotelID string, rooms []*room.Room, stay reservation.Stay, exclude *uuid.UUID) error {
	for _, rm := range rooms {
		free, err := c.availability.IsRoomFree(ctx, hotelID, rm.ID(), stay.Start(), stay.End(), exclude)
		if err != nil {
			return errs.Mark(errs.Wrapf(err, "checking room %s", rm.Number()), ErrAvailabilityUnknown)
		}
		if !free {
			return roomUnavailable(rm.Number())
		}
	}
	return nil
}

func roomUnavailable(number string) error {
	err := errs.Newf("room %s is not available for the selected dates", number)
	return errs.Conflict(errs.Mark(err, ErrRoomUnavailable))
}

func sumPrices(rooms []*room.Room) int64 {
	var total int64
	for _, rm := range rooms {
		total += rm.PriceCents()
	}
	return total
}

func sameRooms(a, b []uuid.UUID) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[uuid.UUID]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func reservationEvent(res *reservation.Reservation, at time.Time) outboxEvent {
	return outboxEvent{
		HotelID:       res.HotelID(),
		ReservationID: res.ID(),
		At:            at,
		Data: map[string]any{
			"status":       res.Status(),
			"startDate":    res.Stay().Start(),
			"endDate":      res.Stay().End(),
			"rooms":        res.Rooms(),
			"totalCents":   res.TotalCents(),
			"balanceCents": res.BalanceCents(),
		},
	}
}

func reservationReadErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrReservationNotFound
	}
	return err
}

// domainErr maps reservation rule violations onto request categories: a
// state that forbids the change is a conflict, anything else is bad input.
func domainErr(err error) error {
	switch {
	case errors.Is(err, reservation.ErrReservationCanceled),
		errors.Is(err, reservation.ErrInvalidTransition),
		errors.Is(err, reservation.ErrAlreadyCheckedIn):
		return errs.Conflict(errs.Mark(err, ErrReservationClosed))
	case errors.Is(err, reservation.ErrDeliveryItemNotFound):
		return errs.NotFound(err)
	default:
		return errs.Validation(err)
	}
}
