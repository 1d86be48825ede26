package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"time"

	"frontdesk/internal/domain/hotel"
	"frontdesk/internal/domain/user"
	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/pkg/password"
	"frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrHotelExists      = errs.Conflict(errs.New("a hotel with this name already exists"))
	ErrEmailTaken       = errs.Conflict(errs.New("email is already registered"))
	ErrAlreadyMember    = errs.Conflict(errs.New("user is already a member of this hotel"))
	ErrPasswordRequired = errs.Validation(errs.New("password is required for a new user"))
	ErrPasswordHashing  = errs.New("password hashing failed")
)

type SignupInput struct {
	HotelName string
	Email     string
	Password  string
}

type SignupResult struct {
	HotelID string
	UserID  uuid.UUID
}

type AddMemberInput struct {
	Email    string
	Password string
	Role     string
}

type AddMemberResult struct {
	UserID  uuid.UUID
	Created bool
}

type HotelCommands interface {
	Signup(ctx context.Context, in SignupInput) (*SignupResult, error)
	AddMember(ctx context.Context, actor shared.Actor, in AddMemberInput) (*AddMemberResult, error)
}

type hotelCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewHotelCommands(uow shared.UnitOfWork, clk clock.Clock) HotelCommands {
	return &hotelCommandsImpl{uow: uow, clock: clk}
}

// Signup creates the hotel, its first user and the admin membership in one
// transaction.
func (c *hotelCommandsImpl) Signup(ctx context.Context, in SignupInput) (*SignupResult, error) {
	now := c.clock.Now()

	h, err := hotel.NewHotel(in.HotelName, now)
	if err != nil {
		return nil, errs.Validation(err)
	}
	u, err := newUser(in.Email, in.Password, now)
	if err != nil {
		return nil, err
	}
	membership, err := hotel.NewMembership(h.ID(), u.ID(), user.RoleAdmin, now)
	if err != nil {
		return nil, errs.Validation(err)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Hotels().Create(ctx, tx.DB(), h); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrHotelExists
			}
			return err
		}
		if err := tx.Users().Create(ctx, tx.DB(), u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return err
		}
		return tx.Hotels().AddMember(ctx, tx.DB(), membership)
	})
	if err != nil {
		return nil, err
	}
	return &SignupResult{HotelID: h.ID(), UserID: u.ID()}, nil
}

// AddMember grants role to the user with the given email, creating the user
// first when the email is unknown.
func (c *hotelCommandsImpl) AddMember(ctx context.Context, actor shared.Actor, in AddMemberInput) (*AddMemberResult, error) {
	if err := requireRole(actor, user.RoleAdmin); err != nil {
		return nil, err
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return nil, errs.Validation(err)
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Validation(err)
	}

	now := c.clock.Now()
	result := &AddMemberResult{}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Reads().UserByEmail(ctx, email.Value())
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			if in.Password == "" {
				return ErrPasswordRequired
			}
			u, err = newUser(email.Value(), in.Password, now)
			if err != nil {
				return err
			}
			if err := tx.Users().Create(ctx, tx.DB(), u); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return ErrEmailTaken
				}
				return err
			}
			result.Created = true
		case err != nil:
			return err
		}

		membership, err := hotel.NewMembership(actor.HotelID, u.ID(), role, now)
		if err != nil {
			return errs.Validation(err)
		}
		if err := tx.Hotels().AddMember(ctx, tx.DB(), membership); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrAlreadyMember
			}
			return err
		}
		result.UserID = u.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func newUser(rawEmail, rawPassword string, now time.Time) (*user.User, error) {
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return nil, errs.Validation(err)
	}
	pw, err := user.NewPassword(rawPassword)
	if err != nil {
		return nil, errs.Validation(err)
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrPasswordHashing)
	}
	return user.NewUser(email, hash, now), nil
}
