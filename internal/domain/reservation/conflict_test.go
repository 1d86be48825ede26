//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"frontdesk/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2030, 5, d, 0, 0, 0, 0, time.UTC)
}

func TestStayOverlaps(t *testing.T) {
	existing := reservation.StayWindow(day(10), day(12))

	tests := []struct {
		name     string
		window   reservation.Stay
		expected bool
	}{
		{"fully before", reservation.StayWindow(day(5), day(8)), false},
		{"fully after", reservation.StayWindow(day(13), day(15)), false},
		{"ends on existing start", reservation.StayWindow(day(8), day(10)), true},
		{"starts on existing end", reservation.StayWindow(day(12), day(14)), true},
		{"contained", reservation.StayWindow(day(11), day(11).Add(time.Hour)), true},
		{"contains", reservation.StayWindow(day(9), day(13)), true},
		{"identical", reservation.StayWindow(day(10), day(12)), true},
		{"one second before start", reservation.StayWindow(day(8), day(10).Add(-time.Second)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.window.Overlaps(existing))
			assert.Equal(t, tt.expected, existing.Overlaps(tt.window), "overlap must be symmetric")
		})
	}
}

func TestConflictQuery(t *testing.T) {
	roomID := uuid.New()
	ownID := uuid.New()
	otherID := uuid.New()

	claim := func(id uuid.UUID, status reservation.Status, start, end time.Time) reservation.Claim {
		return reservation.Claim{ReservationID: id, Status: status, Stay: reservation.StayWindow(start, end)}
	}

	tests := []struct {
		name     string
		query    reservation.ConflictQuery
		claims   []reservation.Claim
		expected bool
	}{
		{
			name:     "no claims",
			query:    reservation.ConflictQuery{RoomID: roomID, Window: reservation.StayWindow(day(1), day(3))},
			expected: true,
		},
		{
			name:     "confirmed overlap blocks",
			query:    reservation.ConflictQuery{RoomID: roomID, Window: reservation.StayWindow(day(1), day(3))},
			claims:   []reservation.Claim{claim(otherID, reservation.StatusConfirmed, day(2), day(4))},
			expected: false,
		},
		{
			name:     "unconfirmed overlap blocks",
			query:    reservation.ConflictQuery{RoomID: roomID, Window: reservation.StayWindow(day(1), day(3))},
			claims:   []reservation.Claim{claim(otherID, reservation.StatusUnconfirmed, day(2), day(4))},
			expected: false,
		},
		{
			name:     "paid overlap blocks",
			query:    reservation.ConflictQuery{RoomID: roomID, Window: reservation.StayWindow(day(1), day(3))},
			claims:   []reservation.Claim{claim(otherID, reservation.StatusPaid, day(2), day(4))},
			expected: false,
		},
		{
			name:     "cancelled overlap never blocks",
			query:    reservation.ConflictQuery{RoomID: roomID, Window: reservation.StayWindow(day(1), day(3))},
			claims:   []reservation.Claim{claim(otherID, reservation.StatusCancelled, day(1), day(3))},
			expected: true,
		},
		{
			name:     "touching boundary blocks",
			query:    reservation.ConflictQuery{RoomID: roomID, Window: reservation.StayWindow(day(3), day(5))},
			claims:   []reservation.Claim{claim(otherID, reservation.StatusConfirmed, day(1), day(3))},
			expected: false,
		},
		{
			name: "excluded reservation ignored",
			query: reservation.ConflictQuery{
				RoomID: roomID, Window: reservation.StayWindow(day(1), day(3)), ExcludeID: &ownID,
			},
			claims:   []reservation.Claim{claim(ownID, reservation.StatusConfirmed, day(1), day(3))},
			expected: true,
		},
		{
			name: "exclusion does not hide other reservations",
			query: reservation.ConflictQuery{
				RoomID: roomID, Window: reservation.StayWindow(day(1), day(3)), ExcludeID: &ownID,
			},
			claims: []reservation.Claim{
				claim(ownID, reservation.StatusConfirmed, day(1), day(3)),
				claim(otherID, reservation.StatusPaid, day(2), day(6)),
			},
			expected: false,
		},
		{
			name:     "non overlapping claims",
			query:    reservation.ConflictQuery{RoomID: roomID, Window: reservation.StayWindow(day(10), day(12))},
			claims:   []reservation.Claim{claim(otherID, reservation.StatusConfirmed, day(1), day(3))},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.query.IsFree(tt.claims))
		})
	}
}

func TestNewStay(t *testing.T) {
	_, err := reservation.NewStay(day(3), day(3))
	assert.ErrorIs(t, err, reservation.ErrInvalidStay)

	_, err = reservation.NewStay(day(4), day(3))
	assert.ErrorIs(t, err, reservation.ErrInvalidStay)

	_, err = reservation.NewStay(time.Time{}, day(3))
	assert.ErrorIs(t, err, reservation.ErrInvalidStay)

	stay, err := reservation.NewStay(day(1), day(3).Add(time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, 3, stay.Nights())
}
