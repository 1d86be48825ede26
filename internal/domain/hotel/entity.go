package hotel

import (
	"errors"
	"strings"
	"time"

	"frontdesk/internal/domain/user"
	"frontdesk/internal/pkg/slug"

	"github.com/google/uuid"
)

var (
	ErrEmptyName   = errors.New("hotel name is required")
	ErrInvalidSlug = errors.New("hotel name must contain letters or digits")
)

const PlanFree = "free"

// Hotel is the tenant. Its id is a slug derived from the name at signup and
// never changes afterwards.
type Hotel struct {
	id        string
	name      string
	plan      string
	createdAt time.Time
}

func NewHotel(name string, now time.Time) (*Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	id := slug.Make(name)
	if id == "" {
		return nil, ErrInvalidSlug
	}
	return &Hotel{id: id, name: name, plan: PlanFree, createdAt: now}, nil
}

func ReconstructHotel(id, name, plan string, createdAt time.Time) *Hotel {
	return &Hotel{id: id, name: name, plan: plan, createdAt: createdAt}
}

func (h *Hotel) ID() string           { return h.id }
func (h *Hotel) Name() string         { return h.name }
func (h *Hotel) Plan() string         { return h.plan }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }

// Membership grants a user a role inside one hotel.
type Membership struct {
	HotelID   string
	UserID    uuid.UUID
	Role      user.Role
	CreatedAt time.Time
}

func NewMembership(hotelID string, userID uuid.UUID, role user.Role, now time.Time) (Membership, error) {
	if !role.IsValid() {
		return Membership{}, user.ErrInvalidRole
	}
	return Membership{HotelID: hotelID, UserID: userID, Role: role, CreatedAt: now}, nil
}
