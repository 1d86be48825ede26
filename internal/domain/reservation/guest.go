package reservation

import (
	"errors"
	"strings"
	"time"

	"frontdesk/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrNoGuests          = errors.New("at least one guest is required")
	ErrAlreadyCheckedIn  = errors.New("reservation is already checked in")
	ErrGuestNameRequired = errors.New("guest name is required")
	ErrGuestEmail        = errors.New("guest email is invalid")
	ErrGuestDocument     = errors.New("guest document number is required")
)

const DefaultGuestDocType = "CC"

// Guest is a person registered through the public pre-check-in form.
type Guest struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Name          string
	Email         string
	Phone         string
	DocType       string
	DocNum        string
	Nationality   string
	CreatedAt     time.Time
}

type GuestInput struct {
	Name        string
	Email       string
	Phone       string
	DocType     string
	DocNum      string
	Nationality string
}

func NewGuest(reservationID uuid.UUID, in GuestInput, now time.Time) (Guest, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	docNum := strings.TrimSpace(in.DocNum)
	docType := strings.ToUpper(strings.TrimSpace(in.DocType))
	if docType == "" {
		docType = DefaultGuestDocType
	}

	if name == "" {
		return Guest{}, ErrGuestNameRequired
	}
	if !user.IsValidEmail(email) {
		return Guest{}, ErrGuestEmail
	}
	if docNum == "" {
		return Guest{}, ErrGuestDocument
	}

	return Guest{
		ID:            uuid.New(),
		ReservationID: reservationID,
		Name:          name,
		Email:         email,
		Phone:         strings.TrimSpace(in.Phone),
		DocType:       docType,
		DocNum:        docNum,
		Nationality:   strings.TrimSpace(in.Nationality),
		CreatedAt:     now,
	}, nil
}
