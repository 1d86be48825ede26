package api

import (
	"net/http"
	"time"

	reqdto "frontdesk/internal/handler/dto/request"
	resdto "frontdesk/internal/handler/dto/response"
	"frontdesk/internal/handler/httperr"
	"frontdesk/internal/pkg/config"
	"frontdesk/internal/pkg/cookie"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/commands"
	"frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errRefreshTokenMissing = errs.Unauthorized(errs.New("refresh token required"))

type TokenLifetimes interface {
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type AuthHandler struct {
	cmds      commands.AuthCommands
	users     queries.UserQueries
	cookies   config.CookieConfig
	lifetimes TokenLifetimes
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, cfg config.Config, lifetimes TokenLifetimes) *AuthHandler {
	return &AuthHandler{cmds: cmds, users: users, cookies: cfg.Cookie, lifetimes: lifetimes}
}

// @Summary User login
// @Description Login with email and password into one of the user's hotels
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	h.setCookies(c, result)
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Refresh tokens
// @Description Issue a new token pair from the refresh cookie or body
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		_ = c.ShouldBindJSON(&req)
		token = req.RefreshToken
	}
	if token == "" {
		httperr.Abort(c, errRefreshTokenMissing)
		return
	}

	result, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		cookie.ClearTokenCookies(c, h.cookies)
		httperr.Abort(c, err)
		return
	}

	h.setCookies(c, result)
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary User logout
// @Description Clear the session cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookies)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Current user with the hotel and role of the session
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	view, err := h.users.GetCurrentUser(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCurrentUser(view))
}

func (h *AuthHandler) setCookies(c *gin.Context, result *commands.LoginResult) {
	cookie.SetTokenCookies(c, h.cookies,
		result.TokenPair.AccessToken, result.TokenPair.RefreshToken,
		h.lifetimes.AccessTokenDuration(), h.lifetimes.RefreshTokenDuration())
}
