package repository

import (
	"context"
	"time"

	"frontdesk/internal/domain/user"
	"frontdesk/internal/infra"
	"frontdesk/internal/infra/query"
	"frontdesk/internal/infra/repository/converter"
	"frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db query.DBTX, arg query.CreateUserParams) error
	UpdateUserLastLogin(ctx context.Context, db query.DBTX, id uuid.UUID, at pgtype.Timestamptz) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx query.DBTX, u *user.User) error {
	if err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx query.DBTX, userID uuid.UUID, at time.Time) error {
	if err := r.queries.UpdateUserLastLogin(ctx, tx, userID, pgconv.TimeToPgtype(at)); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
