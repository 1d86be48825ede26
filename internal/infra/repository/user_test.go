//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"frontdesk/internal/domain/user"
	"frontdesk/internal/infra"
	"frontdesk/internal/infra/query"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) UpdateUserLastLogin(ctx context.Context, db query.DBTX, id uuid.UUID, at pgtype.Timestamptz) error {
	args := m.Called(ctx, db, id, at)
	return args.Error(0)
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db query.DBTX, arg query.CreateUserParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

// query.DBTX implementation for MockUserWriteQueries
func (m *MockUserWriteQueries) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()
	at := time.Date(2030, 1, 2, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{
			name:      "success",
			mockError: nil,
			wantError: false,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateUserLastLogin", mock.Anything, mock.Anything, testUserID,
				pgtype.Timestamptz{Time: at, Valid: true}).Return(tt.mockError)

			repo := NewUserRepository(mockQueries)

			err := repo.UpdateLastLogin(context.Background(), mockQueries, testUserID, at)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	email, err := user.NewEmail("dup@example.com")
	assert.NoError(t, err)
	u := user.NewUser(email, "hash", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))

	mockQueries := new(MockUserWriteQueries)
	mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(arg query.CreateUserParams) bool {
		return arg.ID == u.ID() && arg.Email == "dup@example.com"
	})).Return(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err = NewUserRepository(mockQueries).Create(context.Background(), mockQueries, u)

	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	assert.Equal(t, "users_email_key", infra.Constraint(err))
	mockQueries.AssertExpectations(t)
}
