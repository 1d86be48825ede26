//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"frontdesk/internal/domain/user"
	"frontdesk/internal/handler/api"
	resdto "frontdesk/internal/handler/dto/response"
	"frontdesk/internal/handler/middleware"
	"frontdesk/internal/pkg/config"
	"frontdesk/internal/pkg/cookie"
	"frontdesk/internal/pkg/jwt"
	"frontdesk/internal/usecase/commands"
	"frontdesk/internal/usecase/queries"
	"frontdesk/internal/usecase/shared"
	"frontdesk/tests/common/builder"
	"frontdesk/tests/common/httptest"
	"frontdesk/tests/common/testutil"
	commandsmock "frontdesk/tests/mock/commands"
	queriesmock "frontdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	actor        shared.Actor
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	lifetimes := jwt.NewService("unused", 15*time.Minute, 24*time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, config.NewTestConfig(), lifetimes)
	s.actor = shared.Actor{UserID: uuid.New(), HotelID: "hotel-test", Role: user.RoleOperator}

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Stand-in for RequireAuth
		if c.GetHeader("Authorization") != "" {
			middleware.SetActor(c, s.actor)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) loginResult() *commands.LoginResult {
	return &commands.LoginResult{
		UserID:    s.actor.UserID,
		HotelID:   s.actor.HotelID,
		Role:      s.actor.Role,
		TokenPair: &commands.TokenPair{AccessToken: "test-jwt-token", RefreshToken: "test-refresh-token"},
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().WithHotel("hotel-test").BuildDTO()

	s.Run("success: returns tokens and sets cookies", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.ToInput()).
			Return(s.loginResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal("hotel-test", response.HotelID)
		s.Equal("operator", response.Role)

		access := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(access)
		s.Equal("test-jwt-token", access.Value)
		s.True(access.HttpOnly)
		s.NotNil(httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName))
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "valid email", mutate: testutil.Field("email", "valid@example.com"), expectCode: http.StatusOK},
			{name: "invalid email", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
			{name: "hotel is optional", mutate: testutil.Field("hotelId", nil), expectCode: http.StatusOK},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusOK {
					s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(s.loginResult(), nil)
				}

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: 401 on invalid credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "invalid email or password")
	})

	s.Run("error: 403 when the user is not a member of the hotel", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrNoMembership).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"

	s.Run("success: token from the request body", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "refresh-from-body").
			Return(s.loginResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"refreshToken": "refresh-from-body"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: cookie wins over the body", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "refresh-from-cookie").
			Return(s.loginResult(), nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "refresh-from-cookie"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url,
			map[string]any{"refreshToken": "refresh-from-body"}, cookies, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 without a refresh token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "refresh token required")
	})

	s.Run("error: rejected token clears cookies", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "stale").
			Return(nil, commands.ErrTokenValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"refreshToken": "stale"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
		access := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(access)
		s.Empty(access.Value)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
	access := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
	s.Require().NotNil(access)
	s.Empty(access.Value)
	s.Less(access.MaxAge, 0)
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the session's user and hotel", func() {
		view := &queries.CurrentUserView{
			UserView:  queries.UserView{ID: s.actor.UserID, Email: "test@example.com", IsActive: true},
			HotelID:   s.actor.HotelID,
			HotelName: "Hotel Test",
			Role:      s.actor.Role.String(),
		}
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.actor).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.MeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test@example.com", response.Email)
		s.Equal("Hotel Test", response.HotelName)
	})

	s.Run("error: 401 without an authenticated actor", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
