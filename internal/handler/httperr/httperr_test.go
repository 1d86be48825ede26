//go:build unit

package httperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: errs.Validation(errs.New("guests must be at least 1")), want: http.StatusBadRequest},
		{name: "unauthorized", err: errs.Unauthorized(errs.New("bad password")), want: http.StatusUnauthorized},
		{name: "forbidden", err: errs.Forbidden(errs.New("role")), want: http.StatusForbidden},
		{name: "not found", err: errs.NotFound(errs.New("missing")), want: http.StatusNotFound},
		{name: "conflict", err: errs.Conflict(errs.New("room 101 is not available")), want: http.StatusConflict},
		{name: "wrapped conflict", err: errs.Wrap(errs.Conflict(errs.New("taken")), "create"), want: http.StatusConflict},
		{name: "feed disabled", err: queries.ErrFeedUnavailable, want: http.StatusServiceUnavailable},
		{name: "unknown", err: errors.New("db exploded"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestAbort_HidesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Abort(c, errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
	assert.Len(t, c.Errors, 1)
}

func TestAbort_ExposesClientErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Abort(c, errs.Conflict(errs.New("room 101 is not available for the selected dates")))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":{"message":"room 101 is not available for the selected dates"}}`, w.Body.String())
}
