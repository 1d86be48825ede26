package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Hotel struct {
	ID        string             `db:"id"`
	Name      string             `db:"name"`
	Plan      string             `db:"plan"`
	CreatedAt pgtype.Timestamptz `db:"created_at"`
}

type User struct {
	ID           uuid.UUID          `db:"id"`
	Email        string             `db:"email"`
	PasswordHash string             `db:"password_hash"`
	LastLogin    pgtype.Timestamptz `db:"last_login"`
	IsActive     bool               `db:"is_active"`
	CreatedAt    pgtype.Timestamptz `db:"created_at"`
	UpdatedAt    pgtype.Timestamptz `db:"updated_at"`
}

type HotelMember struct {
	HotelID   string             `db:"hotel_id"`
	UserID    uuid.UUID          `db:"user_id"`
	Role      string             `db:"role"`
	CreatedAt pgtype.Timestamptz `db:"created_at"`
}

type Room struct {
	ID          uuid.UUID          `db:"id"`
	HotelID     string             `db:"hotel_id"`
	Number      string             `db:"number"`
	Type        string             `db:"type"`
	Status      string             `db:"status"`
	PriceCents  int64              `db:"price_cents"`
	Description string             `db:"description"`
	CreatedAt   pgtype.Timestamptz `db:"created_at"`
	UpdatedAt   pgtype.Timestamptz `db:"updated_at"`
}

type Client struct {
	ID           uuid.UUID          `db:"id"`
	HotelID      string             `db:"hotel_id"`
	FirstName    string             `db:"first_name"`
	LastName     string             `db:"last_name"`
	Email        string             `db:"email"`
	Phone        string             `db:"phone"`
	DocumentType string             `db:"document_type"`
	DocumentID   string             `db:"document_id"`
	Address      string             `db:"address"`
	Notes        string             `db:"notes"`
	CreatedAt    pgtype.Timestamptz `db:"created_at"`
	UpdatedAt    pgtype.Timestamptz `db:"updated_at"`
}

type Reservation struct {
	ID           uuid.UUID          `db:"id"`
	HotelID      string             `db:"hotel_id"`
	ClientID     uuid.UUID          `db:"client_id"`
	Rooms        []pgtype.UUID      `db:"rooms"`
	StartDate    pgtype.Timestamptz `db:"start_date"`
	EndDate      pgtype.Timestamptz `db:"end_date"`
	Status       string             `db:"status"`
	Channel      string             `db:"channel"`
	Notes        string             `db:"notes"`
	Guests       int32              `db:"guests"`
	TotalCents   int64              `db:"total_cents"`
	BalanceCents int64              `db:"balance_cents"`
	Missing      bool               `db:"missing"`
	Occupancy    string             `db:"occupancy"`
	CreatedAt    pgtype.Timestamptz `db:"created_at"`
	UpdatedAt    pgtype.Timestamptz `db:"updated_at"`
}

type Payment struct {
	ID            uuid.UUID          `db:"id"`
	ReservationID uuid.UUID          `db:"reservation_id"`
	HotelID       string             `db:"hotel_id"`
	AmountCents   int64              `db:"amount_cents"`
	Method        string             `db:"method"`
	CreatedBy     pgtype.UUID        `db:"created_by"`
	CreatedAt     pgtype.Timestamptz `db:"created_at"`
}

type DeliveryItem struct {
	ID            uuid.UUID          `db:"id"`
	ReservationID uuid.UUID          `db:"reservation_id"`
	HotelID       string             `db:"hotel_id"`
	Name          string             `db:"name"`
	QtyDelivered  int32              `db:"qty_delivered"`
	QtyReceived   int32              `db:"qty_received"`
	CreatedAt     pgtype.Timestamptz `db:"created_at"`
	UpdatedAt     pgtype.Timestamptz `db:"updated_at"`
}

type Guest struct {
	ID            uuid.UUID          `db:"id"`
	ReservationID uuid.UUID          `db:"reservation_id"`
	HotelID       string             `db:"hotel_id"`
	Name          string             `db:"name"`
	Email         string             `db:"email"`
	Phone         string             `db:"phone"`
	DocType       string             `db:"doc_type"`
	DocNum        string             `db:"doc_num"`
	Nationality   string             `db:"nationality"`
	CreatedAt     pgtype.Timestamptz `db:"created_at"`
}

type NotificationJob struct {
	ID        uuid.UUID          `db:"id"`
	Kind      string             `db:"kind"`
	Topic     string             `db:"topic"`
	Payload   []byte             `db:"payload"`
	Status    string             `db:"status"`
	Attempts  int32              `db:"attempts"`
	LastError pgtype.Text        `db:"last_error"`
	RunAt     pgtype.Timestamptz `db:"run_at"`
	CreatedAt pgtype.Timestamptz `db:"created_at"`
	UpdatedAt pgtype.Timestamptz `db:"updated_at"`
}
