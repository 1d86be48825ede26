package api

import (
	"net/http"

	reqdto "frontdesk/internal/handler/dto/request"
	resdto "frontdesk/internal/handler/dto/response"
	"frontdesk/internal/handler/httperr"
	"frontdesk/internal/usecase/commands"
	"frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	cmds commands.HotelCommands
	q    queries.HotelQueries
}

func NewHotelHandler(cmds commands.HotelCommands, q queries.HotelQueries) *HotelHandler {
	return &HotelHandler{cmds: cmds, q: q}
}

// @Summary Sign up a hotel
// @Description Create a hotel with its first admin user
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.SignupResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /hotels/signup [post]
func (h *HotelHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.Signup(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.SignupResponse{HotelID: result.HotelID, UserID: result.UserID})
}

// @Summary Current hotel
// @Tags hotels
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.HotelResponse
// @Router /hotels/current [get]
func (h *HotelHandler) Current(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	view, err := h.q.GetCurrent(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromHotelView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List members
// @Tags hotels
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.MemberResponse
// @Router /hotels/current/members [get]
func (h *HotelHandler) Members(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	views, err := h.q.ListMembers(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromMemberViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Add member
// @Description Admins add a user to the hotel, creating the account if needed
// @Tags hotels
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AddMemberRequest true "Member"
// @Success 201 {object} resdto.AddMemberResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /hotels/current/members [post]
func (h *HotelHandler) AddMember(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req reqdto.AddMemberRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.AddMember(c.Request.Context(), actor, in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.AddMemberResponse{UserID: result.UserID, Created: result.Created})
}
