package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"time"

	"frontdesk/internal/domain/reservation"

	"github.com/google/uuid"
)

// ClaimStore narrows the reservations that can block a room. Implementations
// may over-select; the domain predicate decides.
type ClaimStore interface {
	RoomClaims(ctx context.Context, q reservation.ConflictQuery) ([]reservation.Claim, error)
}

// CheckRecorder counts availability checks by outcome.
type CheckRecorder interface {
	AvailabilityChecked(result string)
}

const (
	CheckFree     = "free"
	CheckConflict = "conflict"
	CheckError    = "error"
)

// AvailabilityChecker answers whether a room can be booked for a stay.
type AvailabilityChecker struct {
	store    ClaimStore
	recorder CheckRecorder
}

func NewAvailabilityChecker(store ClaimStore, recorder CheckRecorder) *AvailabilityChecker {
	return &AvailabilityChecker{store: store, recorder: recorder}
}

// IsRoomFree reports whether no unconfirmed, confirmed or paid reservation
// other than excludeID holds roomID over [start, end], endpoints included.
// It reads without locking and does not validate the interval. A store
// failure is returned as an error, never as free.
func (c *AvailabilityChecker) IsRoomFree(ctx context.Context, hotelID string, roomID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	q := reservation.ConflictQuery{
		HotelID:   hotelID,
		RoomID:    roomID,
		Window:    reservation.StayWindow(start, end),
		ExcludeID: excludeID,
	}

	claims, err := c.store.RoomClaims(ctx, q)
	if err != nil {
		c.record(CheckError)
		return false, err
	}

	free := q.IsFree(claims)
	if free {
		c.record(CheckFree)
	} else {
		c.record(CheckConflict)
	}
	return free, nil
}

func (c *AvailabilityChecker) record(result string) {
	if c.recorder != nil {
		c.recorder.AvailabilityChecked(result)
	}
}
