//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"frontdesk/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryItem(t *testing.T) {
	now := time.Now()
	resID := uuid.New()

	_, err := reservation.NewDeliveryItem(resID, "  ", 1, now)
	assert.ErrorIs(t, err, reservation.ErrEmptyItemName)

	_, err = reservation.NewDeliveryItem(resID, "Towel", 0, now)
	assert.ErrorIs(t, err, reservation.ErrInvalidQuantity)

	towels, err := reservation.NewDeliveryItem(resID, " Towel ", 3, now)
	require.NoError(t, err)
	assert.Equal(t, "Towel", towels.Name)
	assert.Equal(t, 0, towels.QtyReceived)

	assert.ErrorIs(t, towels.Receive(4, now), reservation.ErrReceivedOutOfRange)
	assert.ErrorIs(t, towels.Receive(-1, now), reservation.ErrReceivedOutOfRange)

	keys, err := reservation.NewDeliveryItem(resID, "Key", 1, now)
	require.NoError(t, err)
	require.NoError(t, keys.Receive(1, now))

	require.NoError(t, towels.Receive(2, now))
	assert.Equal(t, 1, towels.Missing())
	assert.True(t, reservation.HasMissing([]reservation.DeliveryItem{keys, towels}))

	require.NoError(t, towels.Receive(3, now))
	assert.False(t, reservation.HasMissing([]reservation.DeliveryItem{keys, towels}))
	assert.False(t, reservation.HasMissing(nil))
}

func TestNewGuest(t *testing.T) {
	now := time.Now()
	resID := uuid.New()

	tests := []struct {
		name  string
		in    reservation.GuestInput
		errIs error
	}{
		{name: "valid", in: reservation.GuestInput{Name: "Ana", Email: "ANA@example.com", DocNum: "99"}},
		{name: "missing name", in: reservation.GuestInput{Email: "a@example.com", DocNum: "99"}, errIs: reservation.ErrGuestNameRequired},
		{name: "bad email", in: reservation.GuestInput{Name: "Ana", Email: "nope", DocNum: "99"}, errIs: reservation.ErrGuestEmail},
		{name: "missing document", in: reservation.GuestInput{Name: "Ana", Email: "a@example.com"}, errIs: reservation.ErrGuestDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := reservation.NewGuest(resID, tt.in, now)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, reservation.DefaultGuestDocType, g.DocType)
			assert.Equal(t, "ana@example.com", g.Email)
			assert.Equal(t, resID, g.ReservationID)
		})
	}
}
