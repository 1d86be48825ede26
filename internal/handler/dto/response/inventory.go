package response

import (
	"time"

	"frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type IDResponse struct {
	ID uuid.UUID `json:"id"`
}

type RoomResponse struct {
	ID          uuid.UUID `json:"id"`
	Number      string    `json:"number"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"priceCents"`
	Description string    `json:"description"`
	OccupiedNow bool      `json:"occupiedNow"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type RoomAvailabilityResponse struct {
	RoomResponse
	Free bool `json:"free"`
}

type ClientResponse struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	DocumentType string    `json:"documentType"`
	DocumentID   string    `json:"documentId"`
	Address      string    `json:"address"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	var out RoomResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromRoomViews(vs []*queries.RoomView) ([]RoomResponse, error) {
	out := make([]RoomResponse, 0, len(vs))
	if err := copier.Copy(&out, &vs); err != nil {
		return nil, err
	}
	return out, nil
}

func FromRoomAvailability(vs []*queries.RoomAvailabilityView) ([]RoomAvailabilityResponse, error) {
	out := make([]RoomAvailabilityResponse, len(vs))
	for i, v := range vs {
		if err := copier.Copy(&out[i].RoomResponse, &v.RoomView); err != nil {
			return nil, err
		}
		out[i].Free = v.Free
	}
	return out, nil
}

func FromClientView(v *queries.ClientView) (*ClientResponse, error) {
	var out ClientResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromClientViews(vs []*queries.ClientView) ([]ClientResponse, error) {
	out := make([]ClientResponse, 0, len(vs))
	if err := copier.Copy(&out, &vs); err != nil {
		return nil, err
	}
	return out, nil
}
