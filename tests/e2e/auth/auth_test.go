//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"frontdesk/internal/domain/user"
	"frontdesk/internal/handler/dto/request"
	resdto "frontdesk/internal/handler/dto/response"
	"frontdesk/internal/pkg/cookie"
	"frontdesk/tests/common/authtest"
	"frontdesk/tests/common/dbtest"
	"frontdesk/tests/common/httptest"
	"frontdesk/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt    *authtest.JWTHelper
	userID uuid.UUID
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.userID = dbtest.CreateTestUser(s.T(), s.DB, dbtest.DefaultHotelID, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, dbtest.OtherHotelID, "admin@example.com", string(user.RoleViewer))
	dbtest.CreateTestUser(s.T(), s.DB, dbtest.DefaultHotelID, "inactive@example.com", string(user.RoleOperator))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		hotelID        string
		expectedStatus int
		expectedRole   string
	}{
		{
			name:           "success: explicit hotel",
			email:          "admin@example.com",
			password:       dbtest.DefaultPassword,
			hotelID:        dbtest.DefaultHotelID,
			expectedStatus: http.StatusOK,
			expectedRole:   "admin",
		},
		{
			name:           "success: role is per hotel",
			email:          "admin@example.com",
			password:       dbtest.DefaultPassword,
			hotelID:        dbtest.OtherHotelID,
			expectedStatus: http.StatusOK,
			expectedRole:   "viewer",
		},
		{
			name:           "error: unknown user",
			email:          "nobody@example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "error: wrong password",
			email:          "admin@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "error: inactive user",
			email:          "inactive@example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "error: not a member of the hotel",
			email:          "admin@example.com",
			password:       dbtest.DefaultPassword,
			hotelID:        "hotel-unknown",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password, HotelID: tt.hotelID}, "")

			s.Equal(tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var res resdto.LoginResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
			s.Equal(tt.hotelID, res.HotelID)
			s.Equal(tt.expectedRole, res.Role)
			s.NotNil(httptest.ExtractCookie(w, cookie.AccessTokenCookieName))
			s.NotNil(httptest.ExtractCookie(w, cookie.RefreshTokenCookieName))
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("success: profile of the signed-in hotel", func() {
		token := authtest.LoginUser(s.T(), s.Router, "admin@example.com", dbtest.DefaultPassword, dbtest.DefaultHotelID)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		var me resdto.MeResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Equal(s.userID, me.ID)
		s.Equal("admin@example.com", me.Email)
		s.Equal(dbtest.DefaultHotelID, me.HotelID)
		s.Equal("Default Hotel", me.HotelName)
		s.Equal("admin", me.Role)
		s.NotNil(me.LastLogin)
	})

	s.Run("error: expired token", func() {
		token := s.jwt.CreateExpiredToken(s.T(), s.userID, dbtest.DefaultHotelID, user.RoleAdmin)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})
}

func (s *authSuite) TestRefreshAndLogout() {
	s.Run("success: refresh picks up a changed role", func() {
		refresh := s.jwt.GenerateRefreshToken(s.T(), s.userID, dbtest.DefaultHotelID, user.RoleAdmin)
		_, err := s.DB.Exec(s.T().Context(),
			"UPDATE hotel_members SET role = 'operator' WHERE user_id = $1 AND hotel_id = $2", s.userID, dbtest.DefaultHotelID)
		s.Require().NoError(err)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: refresh}, "")

		var res resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("operator", res.Role)
	})

	s.Run("error: access token used as refresh token", func() {
		access := s.jwt.GenerateToken(s.T(), s.userID, dbtest.DefaultHotelID, user.RoleAdmin)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: access}, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("success: logout clears cookies", func() {
		loginW := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "admin@example.com", Password: dbtest.DefaultPassword, HotelID: dbtest.DefaultHotelID}, "")
		s.Require().Equal(http.StatusOK, loginW.Code)

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, logoutURL, nil, httptest.ExtractCookies(loginW), "")

		s.Equal(http.StatusNoContent, w.Code)
		cleared := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		s.Require().NotNil(cleared)
		s.Empty(cleared.Value)
		s.Less(cleared.MaxAge, 0)
	})
}
