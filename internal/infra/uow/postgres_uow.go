package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"frontdesk/internal/infra/query"
	"frontdesk/internal/infra/repository"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *query.Queries
	repos repositories
}

// repositories are stateless; every transaction shares one set.
type repositories struct {
	hotels        *repository.HotelRepository
	users         *repository.UserRepository
	rooms         *repository.RoomRepository
	clients       *repository.ClientRepository
	reservations  *repository.ReservationRepository
	payments      *repository.PaymentRepository
	deliveries    *repository.DeliveryRepository
	guests        *repository.GuestRepository
	notifications *repository.NotificationRepository
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries) *PostgresUoW {
	return &PostgresUoW{
		pool: pool,
		q:    q,
		repos: repositories{
			hotels:        repository.NewHotelRepository(q),
			users:         repository.NewUserRepository(q),
			rooms:         repository.NewRoomRepository(q),
			clients:       repository.NewClientRepository(q),
			reservations:  repository.NewReservationRepository(q),
			payments:      repository.NewPaymentRepository(q),
			deliveries:    repository.NewDeliveryRepository(q),
			guests:        repository.NewGuestRepository(q),
			notifications: repository.NewNotificationRepository(q),
		},
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return fn(ctx, u.pool)
}

// CommandReads runs on the pool. Rows read here are not locked.
func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{q: u.q, dbtx: u.pool}
}

// Notifications exposes the outbox repository to the dispatcher, which
// manages its own transactions.
func (u *PostgresUoW) Notifications() *repository.NotificationRepository {
	return u.repos.notifications
}

func (u *PostgresUoW) Pool() *pgxpool.Pool {
	return u.pool
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx:  pgxTx,
			q:     u.q,
			repos: &u.repos,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db query.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx  query.DBTX
	q     *query.Queries
	repos *repositories

	commandReads shared.CommandReads
}

func (t *pgTx) DB() query.DBTX { return t.dbtx }

func (t *pgTx) Hotels() shared.HotelRepository               { return t.repos.hotels }
func (t *pgTx) Users() shared.UserRepository                 { return t.repos.users }
func (t *pgTx) Rooms() shared.RoomRepository                 { return t.repos.rooms }
func (t *pgTx) Clients() shared.ClientRepository             { return t.repos.clients }
func (t *pgTx) Reservations() shared.ReservationRepository   { return t.repos.reservations }
func (t *pgTx) Payments() shared.PaymentRepository           { return t.repos.payments }
func (t *pgTx) Deliveries() shared.DeliveryRepository        { return t.repos.deliveries }
func (t *pgTx) Guests() shared.GuestRepository               { return t.repos.guests }
func (t *pgTx) Notifications() shared.NotificationRepository { return t.repos.notifications }

// Reads runs inside the transaction, so ReservationForUpdate holds its lock
// until commit.
func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{q: t.q, dbtx: t.dbtx}
	}
	return t.commandReads
}
