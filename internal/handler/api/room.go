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

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

// @Summary List rooms
// @Tags rooms
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	views, err := h.q.List(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromRoomViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get room
// @Tags rooms
// @Security BearerAuth
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromRoomView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Room availability
// @Description Every room with whether it can be booked for [start, end]
// @Tags rooms
// @Security BearerAuth
// @Produce json
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Param exclude query string false "Reservation being edited"
// @Success 200 {array} resdto.RoomAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms/availability [get]
func (h *RoomHandler) Availability(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	start, err := reqdto.ParseDate(c.Query("start"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	end, err := reqdto.ParseDate(c.Query("end"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	exclude, err := optionalQueryUUID(c, "exclude")
	if err != nil {
		httperr.BadRequest(c, err, "Invalid exclude")
		return
	}

	views, err := h.q.Availability(c.Request.Context(), actor, start, end, exclude)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromRoomAvailability(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create room
// @Tags rooms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.RoomRequest true "Room"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req reqdto.RoomRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), actor, in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Update room
// @Tags rooms
// @Security BearerAuth
// @Accept json
// @Param id path string true "Room ID"
// @Param request body reqdto.RoomRequest true "Room"
// @Success 204 "No Content"
// @Router /rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RoomRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	if err := h.cmds.Update(c.Request.Context(), actor, id, in); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete room
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
