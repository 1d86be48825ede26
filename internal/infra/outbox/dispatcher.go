package outbox

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"frontdesk/internal/infra/query"
	"frontdesk/internal/infra/repository"
	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/pkg/config"
	"frontdesk/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	ResultSent    = "sent"
	ResultRetry   = "retry"
	ResultFailed  = "failed"
	maxRetryDelay = 10 * time.Minute
)

type TxBeginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

type JobStore interface {
	ClaimDue(ctx context.Context, tx query.DBTX, now time.Time, limit int) ([]query.NotificationJob, error)
	UpdateJobStatus(ctx context.Context, tx query.DBTX, jobID uuid.UUID, status string, attempts int32, lastError *string, runAt time.Time) error
}

type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

type Recorder interface {
	OutboxPublished(result string)
}

// Dispatcher drains due notification jobs to the broker. Each batch is
// claimed and settled in one transaction, so a crash before commit leaves
// the jobs queued for the next poll.
type Dispatcher struct {
	db        TxBeginner
	jobs      JobStore
	publisher Publisher
	recorder  Recorder
	clock     clock.Clock
	cfg       config.OutboxConfig

	mu      sync.Mutex
	started bool
	stopped bool
	stop    chan struct{}
	done    chan struct{}
}

func NewDispatcher(db TxBeginner, jobs JobStore, publisher Publisher, recorder Recorder, clk clock.Clock, cfg config.OutboxConfig) *Dispatcher {
	return &Dispatcher{
		db:        db,
		jobs:      jobs,
		publisher: publisher,
		recorder:  recorder,
		clock:     clk,
		cfg:       cfg,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start polls in the background until Stop is called. A stopped dispatcher
// does not start again.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.stopped {
		return
	}
	d.started = true
	go d.run()
}

// Stop waits for the polling loop to exit. It returns at once when the loop
// never ran.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.stop)
		if !d.started {
			close(d.done)
		}
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-d.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := d.DispatchOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("outbox dispatch failed", "error", err.Error())
			}
		}
	}
}

// DispatchOnce publishes one batch of due jobs and reports how many were sent.
func (d *Dispatcher) DispatchOnce(ctx context.Context) (int, error) {
	tx, err := d.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return 0, errs.Wrap(err, "failed to begin outbox transaction")
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("outbox rollback failed", "error", rbErr.Error())
		}
	}()

	now := d.clock.Now()
	jobs, err := d.jobs.ClaimDue(ctx, tx, now, d.cfg.BatchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, job := range jobs {
		status, attempts, lastErr, runAt := d.deliver(ctx, job, now)
		if err := d.jobs.UpdateJobStatus(ctx, tx, job.ID, status, attempts, lastErr, runAt); err != nil {
			return 0, err
		}
		if status == repository.JobStatusSent {
			sent++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, errs.Wrap(err, "failed to commit outbox transaction")
	}
	return sent, nil
}

func (d *Dispatcher) deliver(ctx context.Context, job query.NotificationJob, now time.Time) (status string, attempts int32, lastErr *string, runAt time.Time) {
	err := d.publisher.Publish(ctx, job.Topic, job.Payload)
	if err == nil {
		d.record(ResultSent)
		return repository.JobStatusSent, job.Attempts + 1, nil, now
	}

	attempts = job.Attempts + 1
	msg := err.Error()
	if int(attempts) >= d.cfg.MaxAttempts {
		slog.Error("outbox job exhausted retries",
			"job_id", job.ID.String(),
			"topic", job.Topic,
			"attempts", attempts,
			"error", msg)
		d.record(ResultFailed)
		return repository.JobStatusFailed, attempts, &msg, now
	}

	slog.Warn("outbox publish failed, rescheduling",
		"job_id", job.ID.String(),
		"topic", job.Topic,
		"attempts", attempts,
		"error", msg)
	d.record(ResultRetry)
	return repository.JobStatusQueued, attempts, &msg, now.Add(RetryDelay(attempts))
}

func (d *Dispatcher) record(result string) {
	if d.recorder != nil {
		d.recorder.OutboxPublished(result)
	}
}

// RetryDelay doubles from five seconds per attempt, capped at ten minutes.
func RetryDelay(attempts int32) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	delay := 5 * time.Second
	for i := int32(1); i < attempts; i++ {
		delay *= 2
		if delay >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return delay
}
