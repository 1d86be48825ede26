package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrClientNotFound = errs.NotFound(errs.New("client not found"))

type ClientReadStore interface {
	Search(ctx context.Context, hotelID, term string, limit int) ([]*ClientView, error)
	FindByID(ctx context.Context, hotelID string, id uuid.UUID) (*ClientView, error)
}

type ClientQueries interface {
	Search(ctx context.Context, actor shared.Actor, term string, limit int) ([]*ClientView, error)
	Get(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ClientView, error)
}

type clientQueriesImpl struct {
	store ClientReadStore
}

func NewClientQueries(store ClientReadStore) ClientQueries {
	return &clientQueriesImpl{store: store}
}

func (q *clientQueriesImpl) Search(ctx context.Context, actor shared.Actor, term string, limit int) ([]*ClientView, error) {
	if err := requireMember(actor); err != nil {
		return nil, err
	}
	return q.store.Search(ctx, actor.HotelID, term, ValidateLimit(limit))
}

func (q *clientQueriesImpl) Get(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ClientView, error) {
	if err := requireMember(actor); err != nil {
		return nil, err
	}
	c, err := q.store.FindByID(ctx, actor.HotelID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return c, nil
}
