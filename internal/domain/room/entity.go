package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyNumber   = errors.New("room number is required")
	ErrInvalidType   = errors.New("invalid room type")
	ErrInvalidStatus = errors.New("invalid room status")
	ErrNegativePrice = errors.New("room price cannot be negative")
)

type Type string

const (
	TypeSingle Type = "single"
	TypeDouble Type = "double"
	TypeSuite  Type = "suite"
	TypeFamily Type = "family"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeSingle, TypeDouble, TypeSuite, TypeFamily:
		return true
	}
	return false
}

// Status is set by staff. It is not derived from reservations.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance:
		return true
	}
	return false
}

type Room struct {
	id          uuid.UUID
	hotelID     string
	number      string
	roomType    Type
	status      Status
	priceCents  int64
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

// Attributes are the editable fields of a room. Empty Type and Status take
// the defaults.
type Attributes struct {
	Number      string
	Type        Type
	Status      Status
	PriceCents  int64
	Description string
}

func (a Attributes) normalize() (Attributes, error) {
	a.Number = strings.TrimSpace(a.Number)
	a.Description = strings.TrimSpace(a.Description)
	if a.Type == "" {
		a.Type = TypeDouble
	}
	if a.Status == "" {
		a.Status = StatusAvailable
	}
	switch {
	case a.Number == "":
		return a, ErrEmptyNumber
	case !a.Type.IsValid():
		return a, ErrInvalidType
	case !a.Status.IsValid():
		return a, ErrInvalidStatus
	case a.PriceCents < 0:
		return a, ErrNegativePrice
	}
	return a, nil
}

func NewRoom(hotelID string, attrs Attributes, now time.Time) (*Room, error) {
	attrs, err := attrs.normalize()
	if err != nil {
		return nil, err
	}
	r := &Room{id: uuid.New(), hotelID: hotelID, createdAt: now}
	r.apply(attrs, now)
	return r, nil
}

func ReconstructRoom(id uuid.UUID, hotelID string, attrs Attributes, createdAt, updatedAt time.Time) *Room {
	r := &Room{id: id, hotelID: hotelID, createdAt: createdAt}
	r.apply(attrs, updatedAt)
	return r
}

func (r *Room) Update(attrs Attributes, now time.Time) error {
	attrs, err := attrs.normalize()
	if err != nil {
		return err
	}
	r.apply(attrs, now)
	return nil
}

func (r *Room) apply(a Attributes, now time.Time) {
	r.number = a.Number
	r.roomType = a.Type
	r.status = a.Status
	r.priceCents = a.PriceCents
	r.description = a.Description
	r.updatedAt = now
}

func (r *Room) Attributes() Attributes {
	return Attributes{
		Number:      r.number,
		Type:        r.roomType,
		Status:      r.status,
		PriceCents:  r.priceCents,
		Description: r.description,
	}
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) HotelID() string      { return r.hotelID }
func (r *Room) Number() string       { return r.number }
func (r *Room) Type() Type           { return r.roomType }
func (r *Room) Status() Status       { return r.status }
func (r *Room) PriceCents() int64    { return r.priceCents }
func (r *Room) Description() string  { return r.description }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
