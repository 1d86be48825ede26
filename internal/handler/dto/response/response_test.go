//go:build unit

package response

import (
	"testing"
	"time"

	"frontdesk/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestFromReservationViews(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	view := &queries.ReservationView{
		ID:           uuid.New(),
		ClientID:     uuid.New(),
		ClientName:   "Lucía Gómez",
		Rooms:        []uuid.UUID{uuid.New()},
		RoomNumbers:  []string{"204"},
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 2),
		Nights:       2,
		Status:       "confirmed",
		Channel:      "airbnb",
		Guests:       2,
		TotalCents:   30000,
		BalanceCents: 10000,
		PaidCents:    20000,
		Occupancy:    "pre-arrival",
	}

	got, err := FromReservationViews([]*queries.ReservationView{view})
	require.NoError(t, err)

	want := []ReservationResponse{{
		ID:           view.ID,
		ClientID:     view.ClientID,
		ClientName:   "Lucía Gómez",
		Rooms:        view.Rooms,
		RoomNumbers:  []string{"204"},
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 2),
		Nights:       2,
		Status:       "confirmed",
		Channel:      "airbnb",
		Guests:       2,
		TotalCents:   30000,
		BalanceCents: 10000,
		PaidCents:    20000,
		Occupancy:    "pre-arrival",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromReservationViews() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromRoomAvailability(t *testing.T) {
	views := []*queries.RoomAvailabilityView{
		{RoomView: queries.RoomView{ID: uuid.New(), Number: "101", PriceCents: 9000}, Free: true},
		{RoomView: queries.RoomView{ID: uuid.New(), Number: "102"}, Free: false},
	}

	got, err := FromRoomAvailability(views)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "101", got[0].Number)
	require.Equal(t, int64(9000), got[0].PriceCents)
	require.True(t, got[0].Free)
	require.False(t, got[1].Free)
}
