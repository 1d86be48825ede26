//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"frontdesk/internal/domain/reservation"
	"frontdesk/internal/handler/api"
	resdto "frontdesk/internal/handler/dto/response"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/queries"
	"frontdesk/tests/common/httptest"
	commandsmock "frontdesk/tests/mock/commands"
	queriesmock "frontdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPublicRouter(t *testing.T) (*gin.Engine, *commandsmock.MockStayCommands, *queriesmock.MockPublicQueries) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	stay := commandsmock.NewMockStayCommands(ctrl)
	q := queriesmock.NewMockPublicQueries(ctrl)

	h := api.NewPublicHandler(stay, q)
	r := gin.New()
	r.GET("/public/hotels/:hotelId/reservations/:id", h.GetReservation)
	r.POST("/public/hotels/:hotelId/reservations/:id/precheckin", h.PreCheckIn)
	return r, stay, q
}

func TestPublicHandler_GetReservation(t *testing.T) {
	router, _, q := newPublicRouter(t)
	id := uuid.New()
	view := &queries.PublicReservationView{
		ID:          id,
		HotelName:   "Casa Azul",
		RoomNumbers: []string{"101"},
		StartDate:   time.Date(2030, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2030, 3, 12, 0, 0, 0, 0, time.UTC),
		Guests:      2,
		Status:      "confirmed",
	}
	q.EXPECT().GetReservation(gomock.Any(), "casa-azul", id).Return(view, nil)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/public/hotels/casa-azul/reservations/"+id.String(), nil, "")

	var response resdto.PublicReservationResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
	assert.Equal(t, "Casa Azul", response.HotelName)
	assert.Equal(t, []string{"101"}, response.RoomNumbers)
	assert.NotContains(t, rec.Body.String(), "totalCents")
}

func TestPublicHandler_PreCheckIn(t *testing.T) {
	id := uuid.New()
	url := "/public/hotels/casa-azul/reservations/" + id.String() + "/precheckin"
	guest := map[string]any{
		"name": "Ana Gomez", "email": "ana@example.com", "phone": "+57 300",
		"docType": "CC", "docNum": "123", "nationality": "CO",
	}

	t.Run("guests reach the stay commands", func(t *testing.T) {
		router, stay, _ := newPublicRouter(t)
		stay.EXPECT().PreCheckIn(gomock.Any(), "casa-azul", id, gomock.Any()).
			DoAndReturn(func(_ any, _ string, _ uuid.UUID, guests []reservation.GuestInput) error {
				require.Len(t, guests, 1)
				assert.Equal(t, "Ana Gomez", guests[0].Name)
				assert.Equal(t, "123", guests[0].DocNum)
				return nil
			})

		rec := httptest.PerformRequest(t, router, http.MethodPost, url, map[string]any{"guests": []any{guest}}, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("domain validation errors are 400", func(t *testing.T) {
		router, stay, _ := newPublicRouter(t)
		stay.EXPECT().PreCheckIn(gomock.Any(), "casa-azul", id, gomock.Any()).
			Return(errs.Validation(reservation.ErrNoGuests))

		rec := httptest.PerformRequest(t, router, http.MethodPost, url, map[string]any{"guests": []any{}}, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "at least one guest")
	})
}
