package auth

import (
	"errors"
	"strings"

	"frontdesk/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Credentials is a login attempt. HotelID is optional; when empty the user's
// first membership is used.
type Credentials struct {
	email    user.Email
	password user.Password
	hotelID  string
}

func NewCredentials(emailStr, passwordStr, hotelID string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
		hotelID:  strings.TrimSpace(hotelID),
	}, nil
}

func (c Credentials) Email() user.Email       { return c.email }
func (c Credentials) Password() user.Password { return c.password }
func (c Credentials) HotelID() string         { return c.hotelID }
