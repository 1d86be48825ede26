//go:build unit

package query

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, sql, args)
	rows, _ := mockArgs.Get(0).(pgx.Rows)
	return rows, mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestListRoomClaims_Statement(t *testing.T) {
	roomID := uuid.New()
	start := pgtype.Timestamptz{Time: time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC), Valid: true}
	end := pgtype.Timestamptz{Time: time.Date(2030, 5, 12, 0, 0, 0, 0, time.UTC), Valid: true}

	var gotSQL string
	var gotArgs []interface{}
	db := new(MockDBTX)
	db.On("Query", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			gotSQL = args.String(1)
			gotArgs = args.Get(2).([]interface{})
		}).
		Return(nil, assert.AnError)

	_, err := New().ListRoomClaims(context.Background(), db, ListRoomClaimsParams{
		HotelID:  "hotel-a",
		RoomID:   roomID,
		Start:    start,
		End:      end,
		Statuses: []string{"unconfirmed", "confirmed", "paid"},
	})

	require.ErrorIs(t, err, assert.AnError)
	db.AssertExpectations(t)

	where := gotSQL[strings.Index(gotSQL, "WHERE"):]
	assert.Equal(t,
		"WHERE hotel_id = $1 AND $2 = ANY(rooms) AND start_date <= $3 AND end_date >= $4 AND status IN ($5,$6,$7)",
		where)
	assert.True(t, strings.HasPrefix(gotSQL, "SELECT id, status, start_date, end_date FROM reservations"))

	// the stay end bounds start_date and the stay start bounds end_date
	assert.Equal(t, []interface{}{"hotel-a", roomID, end, start, "unconfirmed", "confirmed", "paid"}, gotArgs)
}
