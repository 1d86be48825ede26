//go:build e2e

package reservation_test

import (
	"net/http"
	"testing"
	"time"

	"frontdesk/internal/domain/user"
	"frontdesk/internal/handler/dto/request"
	resdto "frontdesk/internal/handler/dto/response"
	"frontdesk/tests/common/authtest"
	"frontdesk/tests/common/dbtest"
	"frontdesk/tests/common/httptest"
	"frontdesk/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const reservationsURL = "/api/reservations"

type reservationSuite struct {
	e2e.SharedSuite
	token    string
	viewer   string
	clientID uuid.UUID
	room101  uuid.UUID
	room102  uuid.UUID
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, dbtest.DefaultHotelID, "admin@example.com", string(user.RoleAdmin))
	s.viewer = authtest.CreateAndLogin(s.T(), s.DB, s.Router, dbtest.DefaultHotelID, "viewer@example.com", string(user.RoleViewer))
	s.clientID = dbtest.CreateTestClient(s.T(), s.DB, dbtest.DefaultHotelID, "Ana", "Gomez")
	s.room101 = dbtest.CreateTestRoom(s.T(), s.DB, dbtest.DefaultHotelID, "101", 10000)
	s.room102 = dbtest.CreateTestRoom(s.T(), s.DB, dbtest.DefaultHotelID, "102", 15000)
}

func day(d int) time.Time {
	return time.Date(2030, 3, d, 0, 0, 0, 0, time.UTC)
}

func (s *reservationSuite) booking(start, end time.Time, rooms ...uuid.UUID) request.ReservationRequest {
	return request.ReservationRequest{
		ClientID:  s.clientID,
		Rooms:     rooms,
		StartDate: request.Date{Time: start},
		EndDate:   request.Date{Time: end},
		Status:    "confirmed",
		Guests:    2,
	}
}

func (s *reservationSuite) create(body request.ReservationRequest) (*resdto.ReservationResponse, int) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, body, s.token)
	if w.Code != http.StatusCreated {
		return nil, w.Code
	}
	var res resdto.ReservationResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return &res, w.Code
}

func (s *reservationSuite) TestRoomConflicts() {
	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{name: "identical stay", start: day(10), end: day(12), want: http.StatusConflict},
		{name: "overlapping start", start: day(11), end: day(14), want: http.StatusConflict},
		{name: "contained stay", start: day(10), end: day(11), want: http.StatusConflict},
		{name: "new stay starts on the checkout day", start: day(12), end: day(14), want: http.StatusConflict},
		{name: "new stay ends on the arrival day", start: day(8), end: day(10), want: http.StatusConflict},
		{name: "disjoint stay", start: day(13), end: day(15), want: http.StatusCreated},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, code := s.create(s.booking(day(10), day(12), s.room101))
			s.Require().Equal(http.StatusCreated, code)

			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL,
				s.booking(tt.start, tt.end, s.room101), s.token)

			s.Equal(tt.want, w.Code, w.Body.String())
			if tt.want == http.StatusConflict {
				httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "room 101")
			}
		})
	}
}

func (s *reservationSuite) TestCancelledStaysDoNotBlock() {
	s.Run("cancelled reservation frees the room", func() {
		dbtest.CreateTestReservation(s.T(), s.DB, dbtest.DefaultHotelID, s.clientID, []uuid.UUID{s.room101}, day(10), day(12), "cancelled")

		_, code := s.create(s.booking(day(10), day(12), s.room101))
		s.Equal(http.StatusCreated, code)
	})

	s.Run("cancelling through the API frees the room", func() {
		first, code := s.create(s.booking(day(10), day(12), s.room101))
		s.Require().Equal(http.StatusCreated, code)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL+"/"+first.ID.String()+"/cancel", nil, s.token)
		s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

		_, code = s.create(s.booking(day(11), day(13), s.room101))
		s.Equal(http.StatusCreated, code)
	})
}

func (s *reservationSuite) TestMultiRoomBooking() {
	s.Run("one taken room rejects the whole booking", func() {
		dbtest.CreateTestReservation(s.T(), s.DB, dbtest.DefaultHotelID, s.clientID, []uuid.UUID{s.room102}, day(10), day(12), "unconfirmed")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL,
			s.booking(day(11), day(13), s.room101, s.room102), s.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "room 102")

		var count int
		s.Require().NoError(s.DB.QueryRow(s.T().Context(),
			"SELECT count(*) FROM reservations WHERE $1 = ANY(rooms)", s.room101).Scan(&count))
		s.Zero(count)
	})

	s.Run("total is the sum of room prices", func() {
		res, code := s.create(s.booking(day(10), day(12), s.room101, s.room102))
		s.Require().Equal(http.StatusCreated, code)
		s.Equal(int64(25000), res.TotalCents)
		s.Equal(int64(25000), res.BalanceCents)
		s.ElementsMatch([]string{"101", "102"}, res.RoomNumbers)
	})
}

func (s *reservationSuite) TestUpdateExcludesItself() {
	s.Run("same rooms and dates never conflict with themselves", func() {
		res, code := s.create(s.booking(day(10), day(12), s.room101))
		s.Require().Equal(http.StatusCreated, code)

		body := s.booking(day(10), day(13), s.room101)
		body.Status = ""
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, reservationsURL+"/"+res.ID.String(), body, s.token)

		var updated resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &updated)
		s.Equal("confirmed", updated.Status)
		s.Equal(3, updated.Nights)
	})

	s.Run("moving onto another booking conflicts", func() {
		dbtest.CreateTestReservation(s.T(), s.DB, dbtest.DefaultHotelID, s.clientID, []uuid.UUID{s.room102}, day(10), day(12), "paid")
		res, code := s.create(s.booking(day(10), day(12), s.room101))
		s.Require().Equal(http.StatusCreated, code)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, reservationsURL+"/"+res.ID.String(),
			s.booking(day(10), day(12), s.room102), s.token)
		s.Equal(http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *reservationSuite) TestPaymentsAndTenancy() {
	s.Run("payment lowers the balance and settles", func() {
		res, code := s.create(s.booking(day(10), day(12), s.room101))
		s.Require().Equal(http.StatusCreated, code)
		url := reservationsURL + "/" + res.ID.String() + "/payments"

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url,
			request.PaymentRequest{AmountCents: 4000, Method: "cash"}, s.token)
		var paid resdto.PaymentRecordedResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &paid)
		s.Equal(int64(6000), paid.BalanceCents)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url,
			request.PaymentRequest{AmountCents: 7000, Method: "cash"}, s.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "exceeds")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url,
			request.PaymentRequest{AmountCents: 6000, Method: "transfer"}, s.token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &paid)
		s.Equal("paid", paid.Status)
	})

	s.Run("viewers are read-only", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL,
			s.booking(day(10), day(12), s.room101), s.viewer)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("other hotels see nothing", func() {
		res, code := s.create(s.booking(day(10), day(12), s.room101))
		s.Require().Equal(http.StatusCreated, code)
		other := authtest.CreateAndLogin(s.T(), s.DB, s.Router, dbtest.OtherHotelID, "other@example.com", string(user.RoleAdmin))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL+"/"+res.ID.String(), nil, other)
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *reservationSuite) TestAvailabilityEndpoint() {
	s.Run("closed interval with exclusion", func() {
		res, code := s.create(s.booking(day(10), day(12), s.room101))
		s.Require().Equal(http.StatusCreated, code)

		check := func(url string) map[string]bool {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, s.token)
			var rooms []resdto.RoomAvailabilityResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &rooms)
			out := make(map[string]bool, len(rooms))
			for _, r := range rooms {
				out[r.Number] = r.Free
			}
			return out
		}

		free := check("/api/rooms/availability?start=2030-03-12&end=2030-03-14")
		s.False(free["101"])
		s.True(free["102"])

		free = check("/api/rooms/availability?start=2030-03-12&end=2030-03-14&exclude=" + res.ID.String())
		s.True(free["101"])
	})
}
