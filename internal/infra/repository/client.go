package repository

import (
	"context"

	"frontdesk/internal/domain/client"
	"frontdesk/internal/infra"
	"frontdesk/internal/infra/query"
	"frontdesk/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type ClientWriteQueries interface {
	CreateClient(ctx context.Context, db query.DBTX, arg query.Client) error
	UpdateClient(ctx context.Context, db query.DBTX, arg query.Client) (int64, error)
	DeleteClient(ctx context.Context, db query.DBTX, hotelID string, id uuid.UUID) (int64, error)
}

type ClientRepository struct {
	queries ClientWriteQueries
}

func NewClientRepository(queries ClientWriteQueries) *ClientRepository {
	return &ClientRepository{queries: queries}
}

func (r *ClientRepository) Create(ctx context.Context, tx query.DBTX, c *client.Client) error {
	if err := r.queries.CreateClient(ctx, tx, converter.ClientToRow(c)); err != nil {
		return infra.WrapRepoErr("failed to create client", err)
	}
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, tx query.DBTX, c *client.Client) error {
	n, err := r.queries.UpdateClient(ctx, tx, converter.ClientToRow(c))
	if err != nil {
		return infra.WrapRepoErr("failed to update client", err)
	}
	if n == 0 {
		return infra.NotFound("client not found")
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, tx query.DBTX, hotelID string, id uuid.UUID) error {
	n, err := r.queries.DeleteClient(ctx, tx, hotelID, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete client", err)
	}
	if n == 0 {
		return infra.NotFound("client not found")
	}
	return nil
}
