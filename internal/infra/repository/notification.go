package repository

import (
	"context"
	"time"

	"frontdesk/internal/infra"
	"frontdesk/internal/infra/query"
	"frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db query.DBTX, arg query.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db query.DBTX, now pgtype.Timestamptz, limit int32) ([]query.NotificationJob, error)
	UpdateNotificationJobStatus(ctx context.Context, db query.DBTX, arg query.UpdateNotificationJobStatusParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx query.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := query.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  JobStatusQueued,
	}

	if err := r.queries.CreateNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimDue locks up to limit queued jobs whose run_at has passed. The locks
// last until tx ends.
func (r *NotificationRepository) ClaimDue(ctx context.Context, tx query.DBTX, now time.Time, limit int) ([]query.NotificationJob, error) {
	jobs, err := r.queries.ClaimDueNotificationJobs(ctx, tx, pgconv.TimeToPgtype(now), int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) UpdateJobStatus(ctx context.Context, tx query.DBTX, jobID uuid.UUID, status string, attempts int32, lastError *string, runAt time.Time) error {
	params := query.UpdateNotificationJobStatusParams{
		ID:        jobID,
		Status:    status,
		Attempts:  attempts,
		LastError: pgconv.StringPtrToPgtype(lastError),
		RunAt:     pgconv.TimeToPgtype(runAt),
	}

	if err := r.queries.UpdateNotificationJobStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	return nil
}
