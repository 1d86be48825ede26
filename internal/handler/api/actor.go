package api

import (
	"net/http"

	"frontdesk/internal/handler/httperr"
	"frontdesk/internal/handler/middleware"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errNoActor   = errs.New("authenticated actor missing from context")
	errInvalidID = errs.New("invalid id")
)

// mustActor aborts with 401 when the route was mounted without RequireAuth.
func mustActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return shared.Actor{}, false
	}
	return actor, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, errs.Mark(err, errInvalidID), "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return false
	}
	return true
}

func optionalQueryUUID(c *gin.Context, name string) (*uuid.UUID, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
