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

// PublicHandler serves the guest-facing pre-check-in page. The reservation
// id in the link is the only credential.
type PublicHandler struct {
	stay commands.StayCommands
	q    queries.PublicQueries
}

func NewPublicHandler(stay commands.StayCommands, q queries.PublicQueries) *PublicHandler {
	return &PublicHandler{stay: stay, q: q}
}

// @Summary Public reservation summary
// @Tags public
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.PublicReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /public/hotels/{hotelId}/reservations/{id} [get]
func (h *PublicHandler) GetReservation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetReservation(c.Request.Context(), c.Param("hotelId"), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromPublicReservation(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Pre-check-in
// @Description Register arriving guests ahead of check-in
// @Tags public
// @Accept json
// @Param hotelId path string true "Hotel ID"
// @Param id path string true "Reservation ID"
// @Param request body reqdto.PreCheckInRequest true "Guests"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /public/hotels/{hotelId}/reservations/{id}/precheckin [post]
func (h *PublicHandler) PreCheckIn(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.PreCheckInRequest
	if !bindJSON(c, &req) {
		return
	}
	guests, err := req.ToInput()
	if err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	if err := h.stay.PreCheckIn(c.Request.Context(), c.Param("hotelId"), id, guests); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
