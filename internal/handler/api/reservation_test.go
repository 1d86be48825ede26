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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	cmds     *commandsmock.MockReservationCommands
	stay     *commandsmock.MockStayCommands
	q        *queriesmock.MockReservationQueries
	actor    shared.Actor
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.cmds = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.stay = commandsmock.NewMockStayCommands(s.mockCtrl)
	s.q = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.actor = shared.Actor{UserID: uuid.New(), HotelID: "hotel-test", Role: user.RoleOperator}

	h := api.NewReservationHandler(s.cmds, s.stay, s.q)
	g := s.router.Group("/reservations", func(c *gin.Context) { middleware.SetActor(c, s.actor) })
	g.GET("", h.List)
	g.GET("/export", h.Export)
	g.GET("/feed", h.Feed)
	g.POST("", h.Create)
	g.POST("/bulk-delete", h.BulkDelete)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.PATCH("/:id/status", h.ChangeStatus)
	g.POST("/:id/cancel", h.Cancel)
	g.POST("/:id/payments", h.RecordPayment)
	g.POST("/:id/check-in", h.CheckIn)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildRequestDTO()
	view := b.BuildView()

	s.Run("success: 201 with the stored reservation", func() {
		s.cmds.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ any, _ shared.Actor, in commands.ReservationInput) (uuid.UUID, error) {
				s.Equal(b.Rooms, in.Rooms)
				s.True(in.StartDate.Equal(time.Date(2030, 3, 10, 0, 0, 0, 0, time.UTC)))
				s.Nil(in.TotalCents)
				return view.ID, nil
			}).Times(1)
		s.q.EXPECT().Get(gomock.Any(), s.actor, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.Rooms, response.Rooms)
		s.Equal(view.TotalCents, response.BalanceCents)
	})

	s.Run("error: 409 when a room is taken", func() {
		s.cmds.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).
			Return(uuid.Nil, commands.ErrRoomUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "room is not available")
	})

	s.Run("error: 400 on malformed bodies", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing client", mutate: testutil.Field("clientId", nil)},
			{name: "no rooms", mutate: testutil.Field("rooms", []string{})},
			{name: "bad start date", mutate: testutil.Field("startDate", "10/03/2030")},
			{name: "negative total", mutate: testutil.Field("totalCents", -1)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	s.Run("error: 404 for another hotel's reservation", func() {
		id := uuid.New()
		s.q.EXPECT().Get(gomock.Any(), s.actor, id).Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *ReservationHandlerTestSuite) TestList() {
	roomID := uuid.New()
	view := builder.NewReservationBuilder().BuildView()

	s.Run("success: filter and cursor are passed through", func() {
		s.q.EXPECT().List(gomock.Any(), s.actor, gomock.Any(), &queries.Cursor{After: "abc"}, 5).
			DoAndReturn(func(_ any, _ shared.Actor, f queries.ReservationFilter, _ *queries.Cursor, _ int) ([]*queries.ReservationView, *queries.Cursor, error) {
				s.Equal([]string{"confirmed", "paid"}, f.Statuses)
				s.Require().NotNil(f.RoomID)
				s.Equal(roomID, *f.RoomID)
				s.Require().NotNil(f.From)
				return []*queries.ReservationView{view}, &queries.Cursor{After: "next"}, nil
			}).Times(1)

		url := "/reservations?status=confirmed,paid&roomId=" + roomID.String() + "&from=2030-03-01&limit=5&after=abc"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Equal("next", response.NextCursor)
	})

	s.Run("error: 400 for a malformed room filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?roomId=nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ReservationHandlerTestSuite) TestChangeStatusAndCancel() {
	id := uuid.New()
	view := builder.NewReservationBuilder().BuildView()
	view.ID = id

	s.Run("status change returns the updated view", func() {
		s.cmds.EXPECT().ChangeStatus(gomock.Any(), s.actor, id, "confirmed").Return(nil).Times(1)
		s.q.EXPECT().Get(gomock.Any(), s.actor, id).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reservations/"+id.String()+"/status",
			map[string]any{"status": "confirmed"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("cancel answers 204", func() {
		s.cmds.EXPECT().Cancel(gomock.Any(), s.actor, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestBulkDelete() {
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	s.Run("success: reports the deleted count", func() {
		s.cmds.EXPECT().BulkDelete(gomock.Any(), s.actor, ids).Return(int64(2), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/bulk-delete",
			map[string]any{"ids": ids}, "")

		var response resdto.BulkDeleteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(2), response.Deleted)
	})

	s.Run("error: 400 for an empty list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/bulk-delete",
			map[string]any{"ids": []string{}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ReservationHandlerTestSuite) TestRecordPayment() {
	id := uuid.New()
	paymentID := uuid.New()

	s.Run("success: 201 with the new balance", func() {
		s.stay.EXPECT().RecordPayment(gomock.Any(), s.actor, id, commands.PaymentInput{AmountCents: 5000, Method: "cash"}).
			Return(&commands.PaymentResult{PaymentID: paymentID, BalanceCents: 25000, Status: "confirmed"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/payments",
			map[string]any{"amountCents": 5000, "method": "cash"}, "")

		var response resdto.PaymentRecordedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(paymentID, response.PaymentID)
		s.Equal(int64(25000), response.BalanceCents)
	})

	s.Run("error: 400 for a zero amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/payments",
			map[string]any{"amountCents": 0, "method": "cash"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ReservationHandlerTestSuite) TestExport() {
	s.q.EXPECT().Export(gomock.Any(), s.actor,
		time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2030, 3, 31, 0, 0, 0, 0, time.UTC)).
		Return([]byte("xlsx-bytes"), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/export?from=2030-03-01&to=2030-03-31", nil, "")

	s.Equal(http.StatusOK, rec.Code)
	httptest.AssertHeaders(s.T(), rec, map[string]string{
		"Content-Type":        "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"Content-Disposition": `attachment; filename="reservations-2030-03-01-2030-03-31.xlsx"`,
	})
	s.Equal("xlsx-bytes", rec.Body.String())
}

func (s *ReservationHandlerTestSuite) TestFeedUnavailable() {
	s.q.EXPECT().Subscribe(gomock.Any(), s.actor).Return(nil, queries.ErrFeedUnavailable).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/feed", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Service unavailable")
}
