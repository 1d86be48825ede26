package queries

import (
	"time"

	"github.com/google/uuid"
)

type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type CurrentUserView struct {
	UserView
	HotelID   string `json:"hotel_id"`
	HotelName string `json:"hotel_name"`
	Role      string `json:"role"`
}

type HotelView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"created_at"`
}

type MemberView struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type RoomView struct {
	ID          uuid.UUID `json:"id"`
	Number      string    `json:"number"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"price_cents"`
	Description string    `json:"description"`
	// OccupiedNow is derived from reservations; Status is the manual flag.
	OccupiedNow bool      `json:"occupied_now"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RoomAvailabilityView struct {
	RoomView
	Free bool `json:"free"`
}

type ClientView struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	DocumentType string    `json:"document_type"`
	DocumentID   string    `json:"document_id"`
	Address      string    `json:"address"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ReservationView struct {
	ID           uuid.UUID   `json:"id"`
	ClientID     uuid.UUID   `json:"client_id"`
	ClientName   string      `json:"client_name"`
	Rooms        []uuid.UUID `json:"rooms"`
	RoomNumbers  []string    `json:"room_numbers"`
	StartDate    time.Time   `json:"start_date"`
	EndDate      time.Time   `json:"end_date"`
	Nights       int         `json:"nights"`
	Status       string      `json:"status"`
	Channel      string      `json:"channel"`
	Notes        string      `json:"notes"`
	Guests       int         `json:"guests"`
	TotalCents   int64       `json:"total_cents"`
	BalanceCents int64       `json:"balance_cents"`
	PaidCents    int64       `json:"paid_cents"`
	Missing      bool        `json:"missing"`
	Occupancy    string      `json:"occupancy"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type PaymentView struct {
	ID          uuid.UUID  `json:"id"`
	AmountCents int64      `json:"amount_cents"`
	Method      string     `json:"method"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type DeliveryItemView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	QtyDelivered int       `json:"qty_delivered"`
	QtyReceived  int       `json:"qty_received"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type GuestView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	DocType     string    `json:"doc_type"`
	DocNum      string    `json:"doc_num"`
	Nationality string    `json:"nationality"`
}

// PublicReservationView is what an unauthenticated guest sees on the
// pre-check-in page. It leaves out money and client details.
type PublicReservationView struct {
	ID          uuid.UUID `json:"id"`
	HotelName   string    `json:"hotel_name"`
	RoomNumbers []string  `json:"room_numbers"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Guests      int       `json:"guests"`
	Status      string    `json:"status"`
	Occupancy   string    `json:"occupancy"`
}
