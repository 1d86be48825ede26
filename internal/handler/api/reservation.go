package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	reqdto "frontdesk/internal/handler/dto/request"
	resdto "frontdesk/internal/handler/dto/response"
	"frontdesk/internal/handler/httperr"
	"frontdesk/internal/usecase/commands"
	"frontdesk/internal/usecase/queries"
	"frontdesk/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	xlsxContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	feedKeepAlive     = 25 * time.Second
	defaultCalendarTo = 31 * 24 * time.Hour
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	stay commands.StayCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, stay commands.StayCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, stay: stay, q: q}
}

// @Summary List reservations
// @Description Filtered listing, newest first, with keyset pagination
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param status query string false "Comma separated statuses"
// @Param channel query string false "Channel"
// @Param clientId query string false "Client ID"
// @Param roomId query string false "Room ID"
// @Param from query string false "Stays ending on or after (YYYY-MM-DD)"
// @Param to query string false "Stays starting on or before (YYYY-MM-DD)"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var query reqdto.ReservationListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}
	filter, err := query.Filter()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	items, next, err := h.q.List(c.Request.Context(), actor, filter, query.Cursor(), queries.ValidateLimit(query.Limit))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromReservationViews(items)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out := resdto.ReservationListResponse{Items: res}
	if next != nil {
		out.NextCursor = next.After
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Reservation calendar
// @Description Reservations overlapping [from, to]
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param from query string true "From (YYYY-MM-DD)"
// @Param to query string false "To (YYYY-MM-DD), defaults to from + 31 days"
// @Param includeCancelled query bool false "Include cancelled reservations"
// @Success 200 {array} resdto.ReservationResponse
// @Router /reservations/calendar [get]
func (h *ReservationHandler) Calendar(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	includeCancelled, _ := strconv.ParseBool(c.Query("includeCancelled"))

	views, err := h.q.Calendar(c.Request.Context(), actor, from, to, includeCancelled)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromReservationViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Export reservations
// @Description XLSX workbook of the reservations overlapping [from, to]
// @Tags reservations
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string true "From (YYYY-MM-DD)"
// @Param to query string false "To (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Router /reservations/export [get]
func (h *ReservationHandler) Export(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	from, to, ok := dateRange(c)
	if !ok {
		return
	}

	body, err := h.q.Export(c.Request.Context(), actor, from, to)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	filename := fmt.Sprintf("reservations-%s-%s.xlsx", from.Format(reqdto.DateLayout), to.Format(reqdto.DateLayout))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, body)
}

// @Summary Live reservation changes
// @Description Server-sent events for every committed reservation change of the caller's hotel
// @Tags reservations
// @Security BearerAuth
// @Produce text/event-stream
// @Success 200 {object} shared.ReservationChanged
// @Failure 503 {object} httperr.Response
// @Router /reservations/feed [get]
func (h *ReservationHandler) Feed(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	events, err := h.q.Subscribe(ctx, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ticker := time.NewTicker(feedKeepAlive)
	defer ticker.Stop()

	c.Stream(func(io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("reservation", ev)
			return true
		case <-ticker.C:
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
			return true
		}
	})
}

// @Summary Get reservation
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondWithView(c, actor, id, http.StatusOK)
}

// @Summary Create reservation
// @Description Books the rooms when none is held by another active reservation over the stay
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ReservationRequest true "Reservation"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req reqdto.ReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, actor, id, http.StatusCreated)
}

// @Summary Update reservation
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ReservationRequest true "Reservation"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), actor, id, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, actor, id, http.StatusOK)
}

// @Summary Change reservation status
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.StatusRequest true "Status"
// @Success 200 {object} resdto.ReservationResponse
// @Router /reservations/{id}/status [patch]
func (h *ReservationHandler) ChangeStatus(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.StatusRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.ChangeStatus(c.Request.Context(), actor, id, req.Status); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, actor, id, http.StatusOK)
}

// @Summary Cancel reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.runOnReservation(c, h.cmds.Cancel)
}

// @Summary Delete reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	h.runOnReservation(c, h.cmds.Delete)
}

// @Summary Delete several reservations
// @Description All listed reservations are deleted or none is
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.BulkDeleteRequest true "IDs"
// @Success 200 {object} resdto.BulkDeleteResponse
// @Router /reservations/bulk-delete [post]
func (h *ReservationHandler) BulkDelete(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req reqdto.BulkDeleteRequest
	if !bindJSON(c, &req) {
		return
	}
	n, err := h.cmds.BulkDelete(c.Request.Context(), actor, req.IDs)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BulkDeleteResponse{Deleted: n})
}

// @Summary List payments
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {array} resdto.PaymentResponse
// @Router /reservations/{id}/payments [get]
func (h *ReservationHandler) Payments(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.Payments(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromPaymentViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Record payment
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.PaymentRequest true "Payment"
// @Success 201 {object} resdto.PaymentRecordedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/payments [post]
func (h *ReservationHandler) RecordPayment(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.stay.RecordPayment(c.Request.Context(), actor, id, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.PaymentRecordedResponse{
		PaymentID:    result.PaymentID,
		BalanceCents: result.BalanceCents,
		Status:       result.Status,
	})
}

// @Summary List delivered items
// @Tags deliveries
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {array} resdto.DeliveryItemResponse
// @Router /reservations/{id}/deliveries [get]
func (h *ReservationHandler) Deliveries(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.DeliveryItems(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromDeliveryItemViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Record delivered items
// @Tags deliveries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.DeliveriesRequest true "Items"
// @Success 201 {array} string
// @Router /reservations/{id}/deliveries [post]
func (h *ReservationHandler) RecordDeliveries(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.DeliveriesRequest
	if !bindJSON(c, &req) {
		return
	}
	ids, err := h.stay.RecordDeliveries(c.Request.Context(), actor, id, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ids": ids})
}

// @Summary Record item reception
// @Description Sets the reservation's missing flag from the received quantities
// @Tags deliveries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ReceptionRequest true "Received quantities"
// @Success 200 {object} resdto.ReceptionResponse
// @Router /reservations/{id}/deliveries/receive [post]
func (h *ReservationHandler) RecordReception(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ReceptionRequest
	if !bindJSON(c, &req) {
		return
	}
	missing, err := h.stay.RecordReception(c.Request.Context(), actor, id, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ReceptionResponse{Missing: missing})
}

// @Summary List registered guests
// @Tags guests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {array} resdto.GuestResponse
// @Router /reservations/{id}/guests [get]
func (h *ReservationHandler) Guests(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.Guests(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromGuestViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Check in
// @Tags guests
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/check-in [post]
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	h.runOnReservation(c, h.stay.CheckIn)
}

// @Summary Check out
// @Tags guests
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/check-out [post]
func (h *ReservationHandler) CheckOut(c *gin.Context) {
	h.runOnReservation(c, h.stay.CheckOut)
}

func (h *ReservationHandler) runOnReservation(c *gin.Context, run func(ctx context.Context, actor shared.Actor, id uuid.UUID) error) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := run(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) respondWithView(c *gin.Context, actor shared.Actor, id uuid.UUID, status int) {
	view, err := h.q.Get(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, res)
}

func dateRange(c *gin.Context) (time.Time, time.Time, bool) {
	from, err := reqdto.ParseDate(c.Query("from"))
	if err != nil {
		httperr.Abort(c, err)
		return time.Time{}, time.Time{}, false
	}
	to := from.Add(defaultCalendarTo)
	if v := c.Query("to"); v != "" {
		if to, err = reqdto.ParseDate(v); err != nil {
			httperr.Abort(c, err)
			return time.Time{}, time.Time{}, false
		}
	}
	return from, to, true
}
