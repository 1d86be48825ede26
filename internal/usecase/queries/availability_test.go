//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"frontdesk/internal/domain/reservation"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/queries"
	queriesmock "frontdesk/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func day(d int) time.Time {
	return time.Date(2030, 3, d, 0, 0, 0, 0, time.UTC)
}

func claim(status reservation.Status, start, end time.Time) reservation.Claim {
	return reservation.Claim{ReservationID: uuid.New(), Status: status, Stay: reservation.StayWindow(start, end)}
}

func TestAvailabilityChecker_IsRoomFree(t *testing.T) {
	roomID := uuid.New()

	tests := []struct {
		name   string
		claims []reservation.Claim
		want   bool
		metric string
	}{
		{name: "no claims", want: true, metric: queries.CheckFree},
		{
			name:   "overlapping confirmed stay",
			claims: []reservation.Claim{claim(reservation.StatusConfirmed, day(11), day(14))},
			want:   false,
			metric: queries.CheckConflict,
		},
		{
			name:   "checkout day equals requested start",
			claims: []reservation.Claim{claim(reservation.StatusPaid, day(8), day(10))},
			want:   false,
			metric: queries.CheckConflict,
		},
		{
			name:   "cancelled stay never blocks",
			claims: []reservation.Claim{claim(reservation.StatusCancelled, day(10), day(12))},
			want:   true,
			metric: queries.CheckFree,
		},
		{
			name:   "disjoint stay",
			claims: []reservation.Claim{claim(reservation.StatusUnconfirmed, day(13), day(15))},
			want:   true,
			metric: queries.CheckFree,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockClaimStore(ctrl)
			recorder := queriesmock.NewMockCheckRecorder(ctrl)

			store.EXPECT().RoomClaims(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, q reservation.ConflictQuery) ([]reservation.Claim, error) {
					assert.Equal(t, "hotel-test", q.HotelID)
					assert.Equal(t, roomID, q.RoomID)
					return tt.claims, nil
				})
			recorder.EXPECT().AvailabilityChecked(tt.metric)

			checker := queries.NewAvailabilityChecker(store, recorder)
			free, err := checker.IsRoomFree(context.Background(), "hotel-test", roomID, day(10), day(12), nil)

			require.NoError(t, err)
			assert.Equal(t, tt.want, free)
		})
	}
}

func TestAvailabilityChecker_ExcludesOwnReservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockClaimStore(ctrl)
	own := claim(reservation.StatusConfirmed, day(10), day(12))

	store.EXPECT().RoomClaims(gomock.Any(), gomock.Any()).Return([]reservation.Claim{own}, nil).Times(2)
	checker := queries.NewAvailabilityChecker(store, nil)

	free, err := checker.IsRoomFree(context.Background(), "hotel-test", uuid.New(), day(10), day(12), &own.ReservationID)
	require.NoError(t, err)
	assert.True(t, free)

	free, err = checker.IsRoomFree(context.Background(), "hotel-test", uuid.New(), day(10), day(12), nil)
	require.NoError(t, err)
	assert.False(t, free)
}

func TestAvailabilityChecker_StoreFailureIsNotFree(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockClaimStore(ctrl)
	recorder := queriesmock.NewMockCheckRecorder(ctrl)

	store.EXPECT().RoomClaims(gomock.Any(), gomock.Any()).Return(nil, errs.New("connection refused"))
	recorder.EXPECT().AvailabilityChecked(queries.CheckError)

	free, err := queries.NewAvailabilityChecker(store, recorder).
		IsRoomFree(context.Background(), "hotel-test", uuid.New(), day(10), day(12), nil)

	require.Error(t, err)
	assert.False(t, free)
}

func TestAfterCursor(t *testing.T) {
	at := time.Date(2030, 3, 1, 9, 30, 0, 123456000, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
	require.NoError(t, err)
	assert.True(t, at.Equal(gotAt))
	assert.Equal(t, id, gotID)

	for _, bad := range []string{"", "%%%", "djI6MTIz"} {
		_, _, err := queries.DecodeAfterCursor(bad)
		assert.Error(t, err, bad)
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 5, queries.ValidateLimit(5))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}
