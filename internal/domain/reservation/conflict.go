package reservation

import (
	"github.com/google/uuid"
)

// Claim is the part of a stored reservation that matters for room occupancy.
type Claim struct {
	ReservationID uuid.UUID
	Status        Status
	Stay          Stay
}

// ConflictQuery asks whether a room is free over a window. ExcludeID lets an
// edited reservation ignore its own claim on the room.
type ConflictQuery struct {
	HotelID   string
	RoomID    uuid.UUID
	Window    Stay
	ExcludeID *uuid.UUID
}

// Blocks reports whether claim makes the queried room unavailable. The store
// pre-filters candidates with the same predicate; Blocks is the authority.
func (q ConflictQuery) Blocks(c Claim) bool {
	if q.ExcludeID != nil && c.ReservationID == *q.ExcludeID {
		return false
	}
	return c.Status.OccupiesRoom() && q.Window.Overlaps(c.Stay)
}

// IsFree is true when none of the claims blocks the query.
func (q ConflictQuery) IsFree(claims []Claim) bool {
	for _, c := range claims {
		if q.Blocks(c) {
			return false
		}
	}
	return true
}
