//go:build unit

package outbox

import (
	"context"
	"errors"
	"testing"
	"time"

	"frontdesk/internal/infra/query"
	"frontdesk/internal/infra/repository"
	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type fakeDB struct {
	tx *fakeTx
}

func (d *fakeDB) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	return d.tx, nil
}

type mockJobStore struct {
	mock.Mock
}

func (m *mockJobStore) ClaimDue(ctx context.Context, tx query.DBTX, now time.Time, limit int) ([]query.NotificationJob, error) {
	args := m.Called(ctx, tx, now, limit)
	jobs, _ := args.Get(0).([]query.NotificationJob)
	return jobs, args.Error(1)
}

func (m *mockJobStore) UpdateJobStatus(ctx context.Context, tx query.DBTX, jobID uuid.UUID, status string, attempts int32, lastError *string, runAt time.Time) error {
	args := m.Called(ctx, tx, jobID, status, attempts, lastError, runAt)
	return args.Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	return m.Called(ctx, topic, payload).Error(0)
}

type countingRecorder map[string]int

func (r countingRecorder) OutboxPublished(result string) { r[result]++ }

func newTestDispatcher(jobs *mockJobStore, pub *mockPublisher, rec countingRecorder, now time.Time) (*Dispatcher, *fakeTx) {
	tx := &fakeTx{}
	cfg := config.OutboxConfig{PollInterval: time.Second, BatchSize: 10, MaxAttempts: 3}
	return NewDispatcher(&fakeDB{tx: tx}, jobs, pub, rec, clock.NewMockClock(now), cfg), tx
}

func TestDispatcher_DispatchOnce(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	publishErr := errors.New("broker down")

	t.Run("publishes due jobs and marks them sent", func(t *testing.T) {
		jobs, pub, rec := &mockJobStore{}, &mockPublisher{}, countingRecorder{}
		d, tx := newTestDispatcher(jobs, pub, rec, now)
		job := query.NotificationJob{ID: uuid.New(), Topic: "reservation.created", Payload: []byte(`{"a":1}`)}

		jobs.On("ClaimDue", mock.Anything, tx, now, 10).Return([]query.NotificationJob{job}, nil)
		pub.On("Publish", mock.Anything, "reservation.created", job.Payload).Return(nil)
		jobs.On("UpdateJobStatus", mock.Anything, tx, job.ID, repository.JobStatusSent, int32(1), (*string)(nil), now).Return(nil)

		sent, err := d.DispatchOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.True(t, tx.committed)
		assert.Equal(t, 1, rec[ResultSent])
		jobs.AssertExpectations(t)
		pub.AssertExpectations(t)
	})

	t.Run("reschedules with backoff on publish failure", func(t *testing.T) {
		jobs, pub, rec := &mockJobStore{}, &mockPublisher{}, countingRecorder{}
		d, tx := newTestDispatcher(jobs, pub, rec, now)
		job := query.NotificationJob{ID: uuid.New(), Topic: "payment.recorded", Attempts: 1}

		jobs.On("ClaimDue", mock.Anything, tx, now, 10).Return([]query.NotificationJob{job}, nil)
		pub.On("Publish", mock.Anything, "payment.recorded", mock.Anything).Return(publishErr)
		jobs.On("UpdateJobStatus", mock.Anything, tx, job.ID, repository.JobStatusQueued, int32(2),
			mock.MatchedBy(func(msg *string) bool { return msg != nil && *msg == "broker down" }),
			now.Add(10*time.Second)).Return(nil)

		sent, err := d.DispatchOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 0, sent)
		assert.Equal(t, 1, rec[ResultRetry])
		jobs.AssertExpectations(t)
	})

	t.Run("marks failed after max attempts", func(t *testing.T) {
		jobs, pub, rec := &mockJobStore{}, &mockPublisher{}, countingRecorder{}
		d, tx := newTestDispatcher(jobs, pub, rec, now)
		job := query.NotificationJob{ID: uuid.New(), Topic: "reservation.updated", Attempts: 2}

		jobs.On("ClaimDue", mock.Anything, tx, now, 10).Return([]query.NotificationJob{job}, nil)
		pub.On("Publish", mock.Anything, "reservation.updated", mock.Anything).Return(publishErr)
		jobs.On("UpdateJobStatus", mock.Anything, tx, job.ID, repository.JobStatusFailed, int32(3), mock.Anything, now).Return(nil)

		_, err := d.DispatchOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, rec[ResultFailed])
		jobs.AssertExpectations(t)
	})

	t.Run("rolls back when claiming fails", func(t *testing.T) {
		jobs, pub, rec := &mockJobStore{}, &mockPublisher{}, countingRecorder{}
		d, tx := newTestDispatcher(jobs, pub, rec, now)

		jobs.On("ClaimDue", mock.Anything, tx, now, 10).Return(nil, errors.New("db gone"))

		_, err := d.DispatchOnce(context.Background())

		require.Error(t, err)
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
		pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, 5*time.Second, RetryDelay(0))
	assert.Equal(t, 5*time.Second, RetryDelay(1))
	assert.Equal(t, 10*time.Second, RetryDelay(2))
	assert.Equal(t, 40*time.Second, RetryDelay(4))
	assert.Equal(t, 10*time.Minute, RetryDelay(20))
}

func TestDispatcher_StartStop(t *testing.T) {
	jobs, pub := &mockJobStore{}, &mockPublisher{}
	jobs.On("ClaimDue", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	d, _ := newTestDispatcher(jobs, pub, countingRecorder{}, time.Now())

	d.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, d.Stop(ctx))
}

func TestDispatcher_StopWithoutStart(t *testing.T) {
	d, _ := newTestDispatcher(&mockJobStore{}, &mockPublisher{}, countingRecorder{}, time.Now())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, d.Stop(ctx))
	assert.NoError(t, ctx.Err(), "stop must not wait for the deadline")

	d.Start()
	assert.NoError(t, d.Stop(ctx), "a second stop is a no-op")
}
