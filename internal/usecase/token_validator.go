package usecase

import (
	"errors"

	"frontdesk/internal/domain/user"
	"frontdesk/internal/pkg/jwt"
	"frontdesk/internal/usecase/shared"
)

var ErrNotAccessToken = errors.New("token is not an access token")

// TokenValidator turns a bearer token into the caller identity for middleware.
type TokenValidator interface {
	ValidateAccessToken(tokenString string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateAccessToken(tokenString string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Actor{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return shared.Actor{}, ErrNotAccessToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, err
	}

	return shared.Actor{UserID: claims.UserID, HotelID: claims.HotelID, Role: role}, nil
}
