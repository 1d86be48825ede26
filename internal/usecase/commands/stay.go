package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"time"

	"frontdesk/internal/domain/reservation"
	"frontdesk/internal/domain/user"
	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNoItems = errs.Validation(errs.New("no delivery items given"))

type PaymentInput struct {
	AmountCents int64
	Method      string
}

type PaymentResult struct {
	PaymentID    uuid.UUID
	BalanceCents int64
	Status       string
}

type DeliveryInput struct {
	Name     string
	Quantity int
}

type ReceptionInput struct {
	ItemID      uuid.UUID
	QtyReceived int
}

// StayCommands covers what happens to a booking after it is made: money,
// items handed to the guest and the guest's arrival and departure.
type StayCommands interface {
	RecordPayment(ctx context.Context, actor shared.Actor, reservationID uuid.UUID, in PaymentInput) (*PaymentResult, error)
	RecordDeliveries(ctx context.Context, actor shared.Actor, reservationID uuid.UUID, items []DeliveryInput) ([]uuid.UUID, error)
	RecordReception(ctx context.Context, actor shared.Actor, reservationID uuid.UUID, items []ReceptionInput) (bool, error)
	PreCheckIn(ctx context.Context, hotelID string, reservationID uuid.UUID, guests []reservation.GuestInput) error
	CheckIn(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) error
	CheckOut(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) error
}

type stayCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier changeNotifier
	clock    clock.Clock
}

func NewStayCommands(uow shared.UnitOfWork, publisher ChangePublisher, clk clock.Clock) StayCommands {
	return &stayCommandsImpl{uow: uow, notifier: changeNotifier{publisher: publisher}, clock: clk}
}

// RecordPayment locks the reservation row so two concurrent payments cannot
// both spend the same balance.
func (c *stayCommandsImpl) RecordPayment(ctx context.Context, actor shared.Actor, reservationID uuid.UUID, in PaymentInput) (*PaymentResult, error) {
	if err := requireRole(actor, user.RoleOperator); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	var result PaymentResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationForUpdate(ctx, actor.HotelID, reservationID)
		if err != nil {
			return reservationReadErr(err)
		}
		p, err := res.RecordPayment(in.AmountCents, reservation.Method(in.Method), now)
		if err != nil {
			return domainErr(err)
		}
		if err := tx.Payments().Create(ctx, tx.DB(), actor.HotelID, p, actor.UserID); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
			return reservationReadErr(err)
		}

		result = PaymentResult{PaymentID: p.ID, BalanceCents: res.BalanceCents(), Status: string(res.Status())}
		return enqueue(ctx, tx, TopicPaymentRecorded, outboxEvent{
			HotelID:       actor.HotelID,
			ReservationID: reservationID,
			At:            now,
			Data: map[string]any{
				"paymentId":    p.ID,
				"amountCents":  p.AmountCents,
				"method":       p.Method,
				"balanceCents": res.BalanceCents(),
			},
		})
	})
	if err != nil {
		return nil, err
	}

	c.notifier.notify(ctx, actor.HotelID, reservationID, shared.ChangeUpdated, now)
	return &result, nil
}

func (c *stayCommandsImpl) RecordDeliveries(ctx context.Context, actor shared.Actor, reservationID uuid.UUID, inputs []DeliveryInput) ([]uuid.UUID, error) {
	if err := requireRole(actor, user.RoleOperator); err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, ErrNoItems
	}

	now := c.clock.Now()
	items := make([]reservation.DeliveryItem, 0, len(inputs))
	for _, in := range inputs {
		item, err := reservation.NewDeliveryItem(reservationID, in.Name, in.Quantity, now)
		if err != nil {
			return nil, errs.Validation(err)
		}
		items = append(items, item)
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ReservationForUpdate(ctx, actor.HotelID, reservationID); err != nil {
			return reservationReadErr(err)
		}
		for _, item := range items {
			if err := tx.Deliveries().Create(ctx, tx.DB(), actor.HotelID, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	c.notifier.notify(ctx, actor.HotelID, reservationID, shared.ChangeUpdated, now)
	return ids, nil
}

// RecordReception stores received quantities and reports whether anything is
// still missing.
func (c *stayCommandsImpl) RecordReception(ctx context.Context, actor shared.Actor, reservationID uuid.UUID, inputs []ReceptionInput) (bool, error) {
	if err := requireRole(actor, user.RoleOperator); err != nil {
		return false, err
	}
	if len(inputs) == 0 {
		return false, ErrNoItems
	}

	now := c.clock.Now()
	var missing bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationForUpdate(ctx, actor.HotelID, reservationID)
		if err != nil {
			return reservationReadErr(err)
		}
		items, err := tx.Reads().DeliveryItems(ctx, actor.HotelID, reservationID)
		if err != nil {
			return err
		}

		index := make(map[uuid.UUID]int, len(items))
		for i, item := range items {
			index[item.ID] = i
		}
		for _, in := range inputs {
			i, ok := index[in.ItemID]
			if !ok {
				return domainErr(reservation.ErrDeliveryItemNotFound)
			}
			if err := items[i].Receive(in.QtyReceived, now); err != nil {
				return domainErr(err)
			}
			if err := tx.Deliveries().UpdateReceived(ctx, tx.DB(), items[i]); err != nil {
				return err
			}
		}

		res.ApplyReception(items, now)
		missing = res.Missing()
		return reservationReadErr(tx.Reservations().Update(ctx, tx.DB(), res))
	})
	if err != nil {
		return false, err
	}

	c.notifier.notify(ctx, actor.HotelID, reservationID, shared.ChangeUpdated, now)
	return missing, nil
}

// PreCheckIn is called from the public guest link, so there is no actor. The
// hotel id and reservation id in the link are the only credentials.
func (c *stayCommandsImpl) PreCheckIn(ctx context.Context, hotelID string, reservationID uuid.UUID, inputs []reservation.GuestInput) error {
	now := c.clock.Now()
	guests := make([]reservation.Guest, 0, len(inputs))
	for _, in := range inputs {
		g, err := reservation.NewGuest(reservationID, in, now)
		if err != nil {
			return errs.Validation(err)
		}
		guests = append(guests, g)
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationForUpdate(ctx, hotelID, reservationID)
		if err != nil {
			return reservationReadErr(err)
		}
		if err := res.PreCheckIn(guests, now); err != nil {
			return domainErr(err)
		}
		if err := tx.Guests().Replace(ctx, tx.DB(), hotelID, reservationID, guests); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
			return reservationReadErr(err)
		}
		return enqueue(ctx, tx, TopicPreCheckInCompleted, outboxEvent{
			HotelID:       hotelID,
			ReservationID: reservationID,
			At:            now,
			Data:          map[string]any{"guests": len(guests)},
		})
	})
	if err != nil {
		return err
	}

	c.notifier.notify(ctx, hotelID, reservationID, shared.ChangeUpdated, now)
	return nil
}

func (c *stayCommandsImpl) CheckIn(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) error {
	return c.moveOccupancy(ctx, actor, reservationID, (*reservation.Reservation).CheckIn)
}

func (c *stayCommandsImpl) CheckOut(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) error {
	return c.moveOccupancy(ctx, actor, reservationID, (*reservation.Reservation).CheckOut)
}

func (c *stayCommandsImpl) moveOccupancy(ctx context.Context, actor shared.Actor, reservationID uuid.UUID, move func(*reservation.Reservation, time.Time) error) error {
	if err := requireRole(actor, user.RoleOperator); err != nil {
		return err
	}

	now := c.clock.Now()
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationForUpdate(ctx, actor.HotelID, reservationID)
		if err != nil {
			return reservationReadErr(err)
		}
		if err := move(res, now); err != nil {
			return domainErr(err)
		}
		return reservationReadErr(tx.Reservations().Update(ctx, tx.DB(), res))
	})
	if err != nil {
		return err
	}

	c.notifier.notify(ctx, actor.HotelID, reservationID, shared.ChangeUpdated, now)
	return nil
}
