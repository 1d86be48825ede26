//go:build unit

package hotel_test

import (
	"testing"
	"time"

	"frontdesk/internal/domain/hotel"
	"frontdesk/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHotel(t *testing.T) {
	now := time.Now()

	h, err := hotel.NewHotel("  Hotel Playa Azul ", now)
	require.NoError(t, err)
	assert.Equal(t, "hotel-playa-azul", h.ID())
	assert.Equal(t, "Hotel Playa Azul", h.Name())
	assert.Equal(t, hotel.PlanFree, h.Plan())

	_, err = hotel.NewHotel("   ", now)
	assert.ErrorIs(t, err, hotel.ErrEmptyName)

	_, err = hotel.NewHotel("!!!", now)
	assert.ErrorIs(t, err, hotel.ErrInvalidSlug)
}

func TestNewMembership(t *testing.T) {
	userID := uuid.New()

	m, err := hotel.NewMembership("hotel-a", userID, user.RoleOperator, time.Now())
	require.NoError(t, err)
	assert.Equal(t, user.RoleOperator, m.Role)

	_, err = hotel.NewMembership("hotel-a", userID, user.Role("owner"), time.Now())
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
