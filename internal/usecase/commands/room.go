package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"frontdesk/internal/domain/room"
	"frontdesk/internal/domain/user"
	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound       = errs.NotFound(errs.New("room does not exist in this hotel"))
	ErrRoomNumberConflict = errs.Conflict(errs.New("room number already exists"))
)

type RoomInput struct {
	Number      string
	Type        string
	Status      string
	PriceCents  int64
	Description string
}

func (in RoomInput) attributes() room.Attributes {
	return room.Attributes{
		Number:      in.Number,
		Type:        room.Type(in.Type),
		Status:      room.Status(in.Status),
		PriceCents:  in.PriceCents,
		Description: in.Description,
	}
}

type RoomCommands interface {
	Create(ctx context.Context, actor shared.Actor, in RoomInput) (uuid.UUID, error)
	Update(ctx context.Context, actor shared.Actor, id uuid.UUID, in RoomInput) error
	Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) error
}

type roomCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRoomCommands(uow shared.UnitOfWork, clk clock.Clock) RoomCommands {
	return &roomCommandsImpl{uow: uow, clock: clk}
}

func (c *roomCommandsImpl) Create(ctx context.Context, actor shared.Actor, in RoomInput) (uuid.UUID, error) {
	if err := requireRole(actor, user.RoleOperator); err != nil {
		return uuid.Nil, err
	}
	rm, err := room.NewRoom(actor.HotelID, in.attributes(), c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Validation(err)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return roomWriteErr(tx.Rooms().Create(ctx, tx.DB(), rm))
	})
	if err != nil {
		return uuid.Nil, err
	}
	return rm.ID(), nil
}

func (c *roomCommandsImpl) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, in RoomInput) error {
	if err := requireRole(actor, user.RoleOperator); err != nil {
		return err
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Reads().RoomByID(ctx, actor.HotelID, id)
		if err != nil {
			return roomWriteErr(err)
		}
		if err := rm.Update(in.attributes(), c.clock.Now()); err != nil {
			return errs.Validation(err)
		}
		return roomWriteErr(tx.Rooms().Update(ctx, tx.DB(), rm))
	})
}

func (c *roomCommandsImpl) Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	if err := requireRole(actor, user.RoleAdmin); err != nil {
		return err
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return roomWriteErr(tx.Rooms().Delete(ctx, tx.DB(), actor.HotelID, id))
	})
}

func roomWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrRoomNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return ErrRoomNumberConflict
	default:
		return err
	}
}
