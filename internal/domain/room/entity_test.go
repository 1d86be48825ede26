//go:build unit

package room_test

import (
	"testing"
	"time"

	"frontdesk/internal/domain/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("defaults", func(t *testing.T) {
		r, err := room.NewRoom("hotel-a", room.Attributes{Number: " 101 ", PriceCents: 8000}, now)
		require.NoError(t, err)
		assert.Equal(t, "101", r.Number())
		assert.Equal(t, room.TypeDouble, r.Type())
		assert.Equal(t, room.StatusAvailable, r.Status())
		assert.Equal(t, "hotel-a", r.HotelID())
	})

	tests := []struct {
		name  string
		attrs room.Attributes
		errIs error
	}{
		{name: "suite", attrs: room.Attributes{Number: "301", Type: room.TypeSuite}},
		{name: "maintenance", attrs: room.Attributes{Number: "302", Status: room.StatusMaintenance}},
		{name: "blank number", attrs: room.Attributes{Number: "  "}, errIs: room.ErrEmptyNumber},
		{name: "unknown type", attrs: room.Attributes{Number: "1", Type: "penthouse"}, errIs: room.ErrInvalidType},
		{name: "unknown status", attrs: room.Attributes{Number: "1", Status: "dirty"}, errIs: room.ErrInvalidStatus},
		{name: "negative price", attrs: room.Attributes{Number: "1", PriceCents: -1}, errIs: room.ErrNegativePrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := room.NewRoom("hotel-a", tt.attrs, now)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}
}

func TestRoom_Update(t *testing.T) {
	created := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)

	r, err := room.NewRoom("hotel-a", room.Attributes{Number: "101", PriceCents: 8000}, created)
	require.NoError(t, err)

	require.ErrorIs(t, r.Update(room.Attributes{Number: ""}, later), room.ErrEmptyNumber)
	assert.Equal(t, "101", r.Number(), "failed update leaves the room untouched")

	require.NoError(t, r.Update(room.Attributes{Number: "102", Status: room.StatusOccupied, PriceCents: 9000}, later))
	assert.Equal(t, room.Attributes{Number: "102", Type: room.TypeDouble, Status: room.StatusOccupied, PriceCents: 9000}, r.Attributes())
	assert.Equal(t, created, r.CreatedAt())
	assert.Equal(t, later, r.UpdatedAt())
}
