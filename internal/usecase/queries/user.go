package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound  = errs.NotFound(errs.New("user not found"))
	ErrUserInactive  = errs.Forbidden(errs.New("user inactive"))
	ErrHotelNotFound = errs.NotFound(errs.New("hotel not found"))
)

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type HotelReadStore interface {
	FindByID(ctx context.Context, id string) (*HotelView, error)
	Members(ctx context.Context, hotelID string) ([]*MemberView, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, actor shared.Actor) (*CurrentUserView, error)
}

type HotelQueries interface {
	GetCurrent(ctx context.Context, actor shared.Actor) (*HotelView, error)
	ListMembers(ctx context.Context, actor shared.Actor) ([]*MemberView, error)
}

type userQueriesImpl struct {
	users  UserReadStore
	hotels HotelReadStore
}

func NewUserQueries(users UserReadStore, hotels HotelReadStore) UserQueries {
	return &userQueriesImpl{users: users, hotels: hotels}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, actor shared.Actor) (*CurrentUserView, error) {
	u, err := q.users.FindByID(ctx, actor.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrUserInactive
	}

	view := &CurrentUserView{UserView: *u, HotelID: actor.HotelID, Role: actor.Role.String()}
	if actor.HotelID != "" {
		h, err := q.hotels.FindByID(ctx, actor.HotelID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrHotelNotFound
			}
			return nil, err
		}
		view.HotelName = h.Name
	}
	return view, nil
}

type hotelQueriesImpl struct {
	hotels HotelReadStore
}

func NewHotelQueries(hotels HotelReadStore) HotelQueries {
	return &hotelQueriesImpl{hotels: hotels}
}

func (q *hotelQueriesImpl) GetCurrent(ctx context.Context, actor shared.Actor) (*HotelView, error) {
	if err := requireMember(actor); err != nil {
		return nil, err
	}
	h, err := q.hotels.FindByID(ctx, actor.HotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return h, nil
}

func (q *hotelQueriesImpl) ListMembers(ctx context.Context, actor shared.Actor) ([]*MemberView, error) {
	if err := requireMember(actor); err != nil {
		return nil, err
	}
	return q.hotels.Members(ctx, actor.HotelID)
}
