//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"frontdesk/internal/handler/dto/request"
	"frontdesk/internal/pkg/cookie"
	"frontdesk/tests/common/dbtest"
	"frontdesk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password, hotelID string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password, HotelID: hotelID}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

// CreateAndLogin adds a user with role in hotelID and returns their access token.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, hotelID, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, hotelID, email, role)
	return LoginUser(t, router, email, dbtest.DefaultPassword, hotelID)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
