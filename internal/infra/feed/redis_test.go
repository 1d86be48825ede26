//go:build unit

package feed

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel(t *testing.T) {
	assert.Equal(t, "frontdesk:hotel:casa-azul:reservations", Channel("casa-azul"))
}

func TestDecode(t *testing.T) {
	event := shared.ReservationChanged{
		HotelID:       "casa-azul",
		ReservationID: uuid.New(),
		Kind:          shared.ChangeCancelled,
		At:            time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	assert.Contains(t, string(payload), `"hotelId":"casa-azul"`)
	assert.Contains(t, string(payload), `"kind":"cancelled"`)

	got, err := decode(string(payload))
	require.NoError(t, err)
	assert.Equal(t, event, got)

	_, err = decode("{not json")
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	err := NoopPublisher{}.PublishReservationChanged(context.Background(), shared.ReservationChanged{HotelID: "h"})
	assert.NoError(t, err)
}
