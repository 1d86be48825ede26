//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"frontdesk/internal/domain/user"
	"frontdesk/internal/handler/middleware"
	"frontdesk/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	actor shared.Actor
	err   error
	seen  string
}

func (s *stubValidator) ValidateAccessToken(token string) (shared.Actor, error) {
	s.seen = token
	return s.actor, s.err
}

type observation struct {
	method, route string
	status        int
}

type recorderFunc func(method, route string, status int, elapsed time.Duration)

func (f recorderFunc) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	f(method, route, status, elapsed)
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRequireAuth(t *testing.T) {
	actor := shared.Actor{UserID: uuid.New(), HotelID: "casa-azul", Role: user.RoleOperator}

	t.Run("bearer token sets the actor", func(t *testing.T) {
		v := &stubValidator{actor: actor}
		r := newEngine()
		r.GET("/x", middleware.NewAuthMiddleware(v).RequireAuth(), func(c *gin.Context) {
			got, ok := middleware.GetActor(c)
			require.True(t, ok)
			assert.Equal(t, actor, got)
			c.Status(http.StatusNoContent)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Authorization", "Bearer abc.def")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "abc.def", v.seen)
	})

	t.Run("missing token", func(t *testing.T) {
		r := newEngine()
		r.GET("/x", middleware.NewAuthMiddleware(&stubValidator{}).RequireAuth(), func(c *gin.Context) {
			t.Fatal("handler must not run")
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		r := newEngine()
		v := &stubValidator{err: errors.New("expired")}
		r.GET("/x", middleware.NewAuthMiddleware(v).RequireAuth(), func(c *gin.Context) {
			t.Fatal("handler must not run")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Authorization", "Bearer stale")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	tests := []struct {
		name string
		role user.Role
		want int
	}{
		{name: "viewer is rejected", role: user.RoleViewer, want: http.StatusForbidden},
		{name: "operator passes", role: user.RoleOperator, want: http.StatusOK},
		{name: "admin passes", role: user.RoleAdmin, want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &stubValidator{actor: shared.Actor{UserID: uuid.New(), HotelID: "h", Role: tt.role}}
			m := middleware.NewAuthMiddleware(v)
			r := newEngine()
			r.POST("/x", m.RequireAuth(), m.RequireRoleAtLeast(user.RoleOperator), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/x", nil)
			req.Header.Set("Authorization", "Bearer t")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	var got []observation
	rec := recorderFunc(func(method, route string, status int, _ time.Duration) {
		got = append(got, observation{method: method, route: route, status: status})
	})

	r := newEngine()
	r.Use(middleware.Metrics(rec))
	r.GET("/api/rooms/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/rooms/"+uuid.NewString(), nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Len(t, got, 2)
	assert.Equal(t, observation{method: "GET", route: "/api/rooms/:id", status: 200}, got[0])
	assert.Equal(t, observation{method: "GET", route: "unmatched", status: 404}, got[1])
}
