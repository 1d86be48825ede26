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

type InventoryHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	roomCmds   *commandsmock.MockRoomCommands
	roomQ      *queriesmock.MockRoomQueries
	clientCmds *commandsmock.MockClientCommands
	clientQ    *queriesmock.MockClientQueries
	actor      shared.Actor
}

func (s *InventoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.roomCmds = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.roomQ = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.clientCmds = commandsmock.NewMockClientCommands(s.mockCtrl)
	s.clientQ = queriesmock.NewMockClientQueries(s.mockCtrl)
	s.actor = shared.Actor{UserID: uuid.New(), HotelID: "hotel-test", Role: user.RoleAdmin}

	rooms := api.NewRoomHandler(s.roomCmds, s.roomQ)
	clients := api.NewClientHandler(s.clientCmds, s.clientQ)

	g := s.router.Group("", func(c *gin.Context) { middleware.SetActor(c, s.actor) })
	g.GET("/rooms/availability", rooms.Availability)
	g.GET("/rooms/:id", rooms.Get)
	g.POST("/rooms", rooms.Create)
	g.DELETE("/rooms/:id", rooms.Delete)
	g.GET("/clients", clients.Search)
	g.POST("/clients", clients.Create)
}

func (s *InventoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInventoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(InventoryHandlerTestSuite))
}

func (s *InventoryHandlerTestSuite) TestRoomAvailability() {
	free := builder.NewRoomBuilder().BuildView()
	taken := builder.NewRoomBuilder().WithNumber("102").BuildView()
	exclude := uuid.New()

	s.Run("success: every room with its free flag", func() {
		s.roomQ.EXPECT().Availability(gomock.Any(), s.actor,
			time.Date(2030, 3, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2030, 3, 12, 0, 0, 0, 0, time.UTC),
			&exclude).
			Return([]*queries.RoomAvailabilityView{
				{RoomView: *free, Free: true},
				{RoomView: *taken, Free: false},
			}, nil).Times(1)

		url := "/rooms/availability?start=2030-03-10&end=2030-03-12&exclude=" + exclude.String()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.RoomAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("101", response[0].Number)
		s.True(response[0].Free)
		s.False(response[1].Free)
	})

	s.Run("error: 400 on bad parameters", func() {
		for _, url := range []string{
			"/rooms/availability?end=2030-03-12",
			"/rooms/availability?start=2030-03-10&end=tomorrow",
			"/rooms/availability?start=2030-03-10&end=2030-03-12&exclude=nope",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})
}

func (s *InventoryHandlerTestSuite) TestRoomCreate() {
	reqBody := builder.NewRoomBuilder().BuildRequestDTO()

	s.Run("success: 201 with the new id", func() {
		id := uuid.New()
		s.roomCmds.EXPECT().Create(gomock.Any(), s.actor, commands.RoomInput{
			Number:      reqBody.Number,
			Type:        reqBody.Type,
			Status:      reqBody.Status,
			PriceCents:  reqBody.PriceCents,
			Description: reqBody.Description,
		}).Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", reqBody, "")

		var response resdto.IDResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id, response.ID)
	})

	s.Run("error: 409 on a duplicate number", func() {
		s.roomCmds.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).
			Return(uuid.Nil, commands.ErrRoomNumberConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "room number already exists")
	})

	s.Run("error: 400 on validation errors", func() {
		for _, mutate := range []func(map[string]any){
			testutil.Field("number", nil),
			testutil.Field("priceCents", -100),
		} {
			body := testutil.DtoMap(s.T(), reqBody, mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", body, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})
}

func (s *InventoryHandlerTestSuite) TestRoomGetAndDelete() {
	id := uuid.New()

	s.Run("get: 404 for an unknown room", func() {
		s.roomQ.EXPECT().Get(gomock.Any(), s.actor, id).Return(nil, queries.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "room not found")
	})

	s.Run("delete: 204", func() {
		s.roomCmds.EXPECT().Delete(gomock.Any(), s.actor, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/rooms/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *InventoryHandlerTestSuite) TestClients() {
	s.Run("search passes term and clamped limit", func() {
		view := builder.NewClientBuilder().BuildView()
		s.clientQ.EXPECT().Search(gomock.Any(), s.actor, "gom", 5).
			Return([]*queries.ClientView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/clients?q=gom&limit=5", nil, "")

		var response []resdto.ClientResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("Gomez", response[0].LastName)
		s.Equal("10203040", response[0].DocumentID)
	})

	s.Run("create: 409 when the document is taken", func() {
		s.clientCmds.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).
			Return(uuid.Nil, commands.ErrClientDocumentUsed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/clients",
			builder.NewClientBuilder().BuildRequestDTO(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "document")
	})

	s.Run("create: 400 for an invalid email", func() {
		body := testutil.DtoMap(s.T(), builder.NewClientBuilder().BuildRequestDTO(), testutil.Field("email", "nope"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/clients", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
