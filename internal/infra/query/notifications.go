package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createNotificationJob = `
INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5)
`

type CreateNotificationJobParams struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   pgtype.Timestamptz
	Status  string
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob, arg.Kind, arg.Topic, arg.Payload, arg.RunAt, arg.Status)
	return err
}

// Concurrent dispatchers skip rows another transaction already holds.
const claimDueNotificationJobs = `
SELECT id, kind, topic, payload, status, attempts, last_error, run_at, created_at, updated_at
FROM notification_jobs
WHERE status = 'queued' AND run_at <= $1
ORDER BY run_at, id
LIMIT $2
FOR UPDATE SKIP LOCKED
`

func (q *Queries) ClaimDueNotificationJobs(ctx context.Context, db DBTX, now pgtype.Timestamptz, limit int32) ([]NotificationJob, error) {
	rows, err := db.Query(ctx, claimDueNotificationJobs, now, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[NotificationJob])
}

const updateNotificationJobStatus = `
UPDATE notification_jobs
SET status = $2, attempts = $3, last_error = $4, run_at = $5, updated_at = now()
WHERE id = $1
`

type UpdateNotificationJobStatusParams struct {
	ID        uuid.UUID
	Status    string
	Attempts  int32
	LastError pgtype.Text
	RunAt     pgtype.Timestamptz
}

func (q *Queries) UpdateNotificationJobStatus(ctx context.Context, db DBTX, arg UpdateNotificationJobStatusParams) error {
	_, err := db.Exec(ctx, updateNotificationJobStatus, arg.ID, arg.Status, arg.Attempts, arg.LastError, arg.RunAt)
	return err
}
