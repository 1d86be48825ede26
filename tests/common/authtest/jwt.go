//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"frontdesk/internal/domain/user"
	"frontdesk/internal/pkg/config"
	"frontdesk/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, access time.Duration) *jwt.Service {
	t.Helper()
	refreshDuration, err := time.ParseDuration(h.cfg.RefreshTokenDuration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, access, refreshDuration)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, hotelID string, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)
	token, err := h.service(t, duration).GenerateAccessToken(userID, hotelID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateRefreshToken(t *testing.T, userID uuid.UUID, hotelID string, role user.Role) string {
	t.Helper()
	token, err := h.service(t, time.Minute).GenerateRefreshToken(userID, hotelID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, hotelID string, role user.Role) string {
	t.Helper()
	token, err := h.service(t, time.Millisecond).GenerateAccessToken(userID, hotelID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
