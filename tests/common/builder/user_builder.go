//go:build unit || e2e

package builder

import (
	"time"

	"frontdesk/internal/domain/hotel"
	"frontdesk/internal/domain/user"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email        string
	PasswordHash string
	Role         string
	HotelID      string
	IsActive     bool
	Now          time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "admin",
		HotelID:      "hotel-test",
		IsActive:     true,
		Now:          time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	usr := user.NewUser(email, u.PasswordHash, u.Now)
	if !u.IsActive {
		usr = user.ReconstructUser(usr.ID(), email, u.PasswordHash, nil, false, u.Now, u.Now)
	}
	return usr, nil
}

func (u *UserBuilder) BuildMembership(userID uuid.UUID) (hotel.Membership, error) {
	role, err := user.NewRole(u.Role)
	if err != nil {
		return hotel.Membership{}, err
	}
	return hotel.NewMembership(u.HotelID, userID, role, u.Now)
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithHotel(hotelID string) *UserBuilder {
	u.HotelID = hotelID
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
