package api

import (
	"net/http"
	"strconv"

	reqdto "frontdesk/internal/handler/dto/request"
	resdto "frontdesk/internal/handler/dto/response"
	"frontdesk/internal/handler/httperr"
	"frontdesk/internal/usecase/commands"
	"frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	cmds commands.ClientCommands
	q    queries.ClientQueries
}

func NewClientHandler(cmds commands.ClientCommands, q queries.ClientQueries) *ClientHandler {
	return &ClientHandler{cmds: cmds, q: q}
}

// @Summary Search clients
// @Description Match name, email or document number
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Param q query string false "Search term"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {array} resdto.ClientResponse
// @Router /clients [get]
func (h *ClientHandler) Search(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	views, err := h.q.Search(c.Request.Context(), actor, c.Query("q"), limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromClientViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get client
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} resdto.ClientResponse
// @Failure 404 {object} httperr.Response
// @Router /clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
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
	res, err := resdto.FromClientView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create client
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ClientRequest true "Client"
// @Success 201 {object} resdto.IDResponse
// @Failure 409 {object} httperr.Response
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req reqdto.ClientRequest
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

// @Summary Update client
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Param id path string true "Client ID"
// @Param request body reqdto.ClientRequest true "Client"
// @Success 204 "No Content"
// @Router /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ClientRequest
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

// @Summary Delete client
// @Tags clients
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 204 "No Content"
// @Router /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
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
