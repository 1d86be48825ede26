package shared

import (
	"time"

	"frontdesk/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller. Handlers build it from the access token
// and pass it to every command and query.
type Actor struct {
	UserID  uuid.UUID
	HotelID string
	Role    user.Role
}

func (a Actor) Can(min user.Role) bool {
	return a.HotelID != "" && a.Role.AtLeast(min)
}

type ChangeKind string

const (
	ChangeCreated   ChangeKind = "created"
	ChangeUpdated   ChangeKind = "updated"
	ChangeCancelled ChangeKind = "cancelled"
	ChangeDeleted   ChangeKind = "deleted"
)

// ReservationChanged is pushed to live subscribers of a hotel after a
// reservation mutation commits.
type ReservationChanged struct {
	HotelID       string     `json:"hotelId"`
	ReservationID uuid.UUID  `json:"reservationId"`
	Kind          ChangeKind `json:"kind"`
	At            time.Time  `json:"at"`
}
