package response

import (
	"time"

	"frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SignupResponse struct {
	HotelID string    `json:"hotelId"`
	UserID  uuid.UUID `json:"userId"`
}

type HotelResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"createdAt"`
}

type MemberResponse struct {
	UserID    uuid.UUID `json:"userId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type AddMemberResponse struct {
	UserID  uuid.UUID `json:"userId"`
	Created bool      `json:"created"`
}

func FromHotelView(v *queries.HotelView) (*HotelResponse, error) {
	var out HotelResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromMemberViews(vs []*queries.MemberView) ([]MemberResponse, error) {
	out := make([]MemberResponse, 0, len(vs))
	if err := copier.Copy(&out, &vs); err != nil {
		return nil, err
	}
	return out, nil
}
