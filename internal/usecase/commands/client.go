package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"frontdesk/internal/domain/client"
	"frontdesk/internal/domain/user"
	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound     = errs.NotFound(errs.New("client does not exist in this hotel"))
	ErrClientDocumentUsed = errs.Conflict(errs.New("another client already has this document"))
)

type ClientInput struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	DocumentType string
	DocumentID   string
	Address      string
	Notes        string
}

func (in ClientInput) profile() client.Profile {
	return client.Profile{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		DocumentType: client.DocumentType(in.DocumentType),
		DocumentID:   in.DocumentID,
		Address:      in.Address,
		Notes:        in.Notes,
	}
}

type ClientCommands interface {
	Create(ctx context.Context, actor shared.Actor, in ClientInput) (uuid.UUID, error)
	Update(ctx context.Context, actor shared.Actor, id uuid.UUID, in ClientInput) error
	Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) error
}

type clientCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewClientCommands(uow shared.UnitOfWork, clk clock.Clock) ClientCommands {
	return &clientCommandsImpl{uow: uow, clock: clk}
}

func (c *clientCommandsImpl) Create(ctx context.Context, actor shared.Actor, in ClientInput) (uuid.UUID, error) {
	if err := requireRole(actor, user.RoleOperator); err != nil {
		return uuid.Nil, err
	}
	cl, err := client.NewClient(actor.HotelID, in.profile(), c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Validation(err)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureDocumentFree(ctx, tx.Reads(), cl); err != nil {
			return err
		}
		return clientWriteErr(tx.Clients().Create(ctx, tx.DB(), cl))
	})
	if err != nil {
		return uuid.Nil, err
	}
	return cl.ID(), nil
}

func (c *clientCommandsImpl) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, in ClientInput) error {
	if err := requireRole(actor, user.RoleOperator); err != nil {
		return err
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cl, err := tx.Reads().ClientByID(ctx, actor.HotelID, id)
		if err != nil {
			return clientWriteErr(err)
		}
		if err := cl.Update(in.profile(), c.clock.Now()); err != nil {
			return errs.Validation(err)
		}
		if err := ensureDocumentFree(ctx, tx.Reads(), cl); err != nil {
			return err
		}
		return clientWriteErr(tx.Clients().Update(ctx, tx.DB(), cl))
	})
}

func (c *clientCommandsImpl) Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	if err := requireRole(actor, user.RoleAdmin); err != nil {
		return err
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return clientWriteErr(tx.Clients().Delete(ctx, tx.DB(), actor.HotelID, id))
	})
}

// ensureDocumentFree rejects a document already held by a different client of
// the same hotel. The unique index catches the concurrent case.
func ensureDocumentFree(ctx context.Context, reads shared.CommandReads, cl *client.Client) error {
	p := cl.Profile()
	if !p.HasDocument() {
		return nil
	}
	other, err := reads.ClientByDocument(ctx, cl.HotelID(), p.DocumentType, p.DocumentID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil
	case err != nil:
		return err
	case other.ID() != cl.ID():
		return ErrClientDocumentUsed
	}
	return nil
}

func clientWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrClientNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return ErrClientDocumentUsed
	default:
		return err
	}
}
