package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"log/slog"

	"frontdesk/internal/domain/auth"
	"frontdesk/internal/domain/hotel"
	"frontdesk/internal/domain/user"
	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/pkg/jwt"
	"frontdesk/internal/pkg/password"
	"frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.Unauthorized(errs.New("invalid email or password"))
	ErrUserInactive       = errs.Forbidden(errs.New("user account is inactive"))
	ErrNoMembership       = errs.Forbidden(errs.New("user is not a member of the hotel"))
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.Unauthorized(errs.New("token validation failed"))
)

type TokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, hotelID string, role user.Role) (string, error)
	GenerateRefreshToken(userID uuid.UUID, hotelID string, role user.Role) (string, error)
	ValidateToken(token string) (*jwt.Claims, error)
}

type LoginInput struct {
	Email    string
	Password string
	HotelID  string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	HotelID   string
	Role      user.Role
	TokenPair *TokenPair
}

type AuthCommands interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{uow: uow, tokens: tokens, clock: clk}
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password, in.HotelID)
	if err != nil {
		return nil, errs.Unauthorized(errs.Mark(err, ErrInvalidCredentials))
	}

	u, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	membership, err := a.pickMembership(ctx, u.ID(), credentials.HotelID())
	if err != nil {
		return nil, err
	}

	pair, err := a.issue(u.ID(), membership.HotelID, membership.Role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), u.ID(), a.clock.Now())
	})
	if err != nil {
		// login already succeeded
		slog.Warn("failed to update last login", "user_id", u.ID(), "error", err.Error())
	}

	return &LoginResult{UserID: u.ID(), HotelID: membership.HotelID, Role: membership.Role, TokenPair: pair}, nil
}

// RefreshToken re-reads the membership so a changed or revoked role takes
// effect at the next refresh.
func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := a.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Unauthorized(errs.Mark(err, ErrTokenValidation))
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	reads := a.uow.CommandReads()
	u, err := reads.UserByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTokenValidation
		}
		return nil, err
	}
	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	membership, err := a.pickMembership(ctx, u.ID(), claims.HotelID)
	if err != nil {
		return nil, err
	}

	pair, err := a.issue(u.ID(), membership.HotelID, membership.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{UserID: u.ID(), HotelID: membership.HotelID, Role: membership.Role, TokenPair: pair}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*user.User, error) {
	u, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// same answer as a wrong password so emails cannot be probed
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.IsActive() {
		return nil, ErrUserInactive
	}
	if err := password.ComparePassword(u.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// pickMembership returns the membership for hotelID, or the oldest one when
// hotelID is empty.
func (a *authCommandsImpl) pickMembership(ctx context.Context, userID uuid.UUID, hotelID string) (*hotel.Membership, error) {
	reads := a.uow.CommandReads()
	if hotelID != "" {
		m, err := reads.Membership(ctx, hotelID, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrNoMembership
			}
			return nil, err
		}
		return m, nil
	}

	memberships, err := reads.MembershipsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return nil, ErrNoMembership
	}
	return &memberships[0], nil
}

func (a *authCommandsImpl) issue(userID uuid.UUID, hotelID string, role user.Role) (*TokenPair, error) {
	accessToken, err := a.tokens.GenerateAccessToken(userID, hotelID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.tokens.GenerateRefreshToken(userID, hotelID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
