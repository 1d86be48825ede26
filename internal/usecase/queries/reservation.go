package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"time"

	"frontdesk/internal/domain/reservation"
	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.NotFound(errs.New("reservation not found"))
	ErrInvalidCursor       = errs.Validation(errs.New("invalid cursor"))
	ErrInvalidRange        = errs.Validation(errs.New("range end must be after range start"))
	ErrInvalidFilter       = errs.Validation(errs.New("invalid reservation filter"))
	ErrFeedUnavailable     = errs.New("live feed is not configured")
)

// ReservationFilter narrows a listing. From and To select stays touching the
// range under the same closed-interval rule as the conflict check.
type ReservationFilter struct {
	Statuses []string
	Channel  *string
	ClientID *uuid.UUID
	RoomID   *uuid.UUID
	From     *time.Time
	To       *time.Time
}

// Keyset continues a created_at DESC, id DESC listing after the given row.
type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, hotelID string, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, hotelID string, filter ReservationFilter, after *Keyset, limit int) ([]*ReservationView, error)
	Calendar(ctx context.Context, hotelID string, from, to time.Time, includeCancelled bool) ([]*ReservationView, error)
	Payments(ctx context.Context, hotelID string, reservationID uuid.UUID) ([]*PaymentView, error)
	DeliveryItems(ctx context.Context, hotelID string, reservationID uuid.UUID) ([]*DeliveryItemView, error)
	Guests(ctx context.Context, hotelID string, reservationID uuid.UUID) ([]*GuestView, error)
}

// ReservationExporter renders reservations as a downloadable workbook.
type ReservationExporter interface {
	Export(rows []*ReservationView) ([]byte, error)
}

// ReservationFeed delivers change events for one hotel until ctx ends.
type ReservationFeed interface {
	Subscribe(ctx context.Context, hotelID string) (<-chan shared.ReservationChanged, error)
}

type ReservationQueries interface {
	Get(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, actor shared.Actor, filter ReservationFilter, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error)
	Calendar(ctx context.Context, actor shared.Actor, from, to time.Time, includeCancelled bool) ([]*ReservationView, error)
	Payments(ctx context.Context, actor shared.Actor, id uuid.UUID) ([]*PaymentView, error)
	DeliveryItems(ctx context.Context, actor shared.Actor, id uuid.UUID) ([]*DeliveryItemView, error)
	Guests(ctx context.Context, actor shared.Actor, id uuid.UUID) ([]*GuestView, error)
	Export(ctx context.Context, actor shared.Actor, from, to time.Time) ([]byte, error)
	Subscribe(ctx context.Context, actor shared.Actor) (<-chan shared.ReservationChanged, error)
}

type reservationQueriesImpl struct {
	store    ReservationReadStore
	exporter ReservationExporter
	feed     ReservationFeed
}

func NewReservationQueries(store ReservationReadStore, exporter ReservationExporter, feed ReservationFeed) ReservationQueries {
	return &reservationQueriesImpl{store: store, exporter: exporter, feed: feed}
}

func (q *reservationQueriesImpl) Get(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error) {
	if err := requireMember(actor); err != nil {
		return nil, err
	}
	return q.find(ctx, actor.HotelID, id)
}

func (q *reservationQueriesImpl) find(ctx context.Context, hotelID string, id uuid.UUID) (*ReservationView, error) {
	v, err := q.store.FindByID(ctx, hotelID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, actor shared.Actor, filter ReservationFilter, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	if err := requireMember(actor); err != nil {
		return nil, nil, err
	}
	if err := validateFilter(filter); err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var after *Keyset
	if cursor != nil && cursor.After != "" {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		after = &Keyset{CreatedAt: lastCreatedAt, ID: lastID}
	}

	rows, err := q.store.List(ctx, actor.HotelID, filter, after, limit+1)
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func validateFilter(f ReservationFilter) error {
	for _, s := range f.Statuses {
		if !reservation.Status(s).IsValid() {
			return ErrInvalidFilter
		}
	}
	if f.Channel != nil && !reservation.Channel(*f.Channel).IsValid() {
		return ErrInvalidFilter
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return ErrInvalidRange
	}
	return nil
}

func (q *reservationQueriesImpl) Calendar(ctx context.Context, actor shared.Actor, from, to time.Time, includeCancelled bool) ([]*ReservationView, error) {
	if err := requireMember(actor); err != nil {
		return nil, err
	}
	if from.IsZero() || to.IsZero() || !to.After(from) {
		return nil, ErrInvalidRange
	}
	return q.store.Calendar(ctx, actor.HotelID, from, to, includeCancelled)
}

func (q *reservationQueriesImpl) Payments(ctx context.Context, actor shared.Actor, id uuid.UUID) ([]*PaymentView, error) {
	if err := q.ensureVisible(ctx, actor, id); err != nil {
		return nil, err
	}
	return q.store.Payments(ctx, actor.HotelID, id)
}

func (q *reservationQueriesImpl) DeliveryItems(ctx context.Context, actor shared.Actor, id uuid.UUID) ([]*DeliveryItemView, error) {
	if err := q.ensureVisible(ctx, actor, id); err != nil {
		return nil, err
	}
	return q.store.DeliveryItems(ctx, actor.HotelID, id)
}

func (q *reservationQueriesImpl) Guests(ctx context.Context, actor shared.Actor, id uuid.UUID) ([]*GuestView, error) {
	if err := q.ensureVisible(ctx, actor, id); err != nil {
		return nil, err
	}
	return q.store.Guests(ctx, actor.HotelID, id)
}

// Export includes cancelled reservations so the sheet matches the books.
func (q *reservationQueriesImpl) Export(ctx context.Context, actor shared.Actor, from, to time.Time) ([]byte, error) {
	rows, err := q.Calendar(ctx, actor, from, to, true)
	if err != nil {
		return nil, err
	}
	return q.exporter.Export(rows)
}

func (q *reservationQueriesImpl) Subscribe(ctx context.Context, actor shared.Actor) (<-chan shared.ReservationChanged, error) {
	if err := requireMember(actor); err != nil {
		return nil, err
	}
	if q.feed == nil {
		return nil, ErrFeedUnavailable
	}
	return q.feed.Subscribe(ctx, actor.HotelID)
}

func (q *reservationQueriesImpl) ensureVisible(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	if err := requireMember(actor); err != nil {
		return err
	}
	_, err := q.find(ctx, actor.HotelID, id)
	return err
}
