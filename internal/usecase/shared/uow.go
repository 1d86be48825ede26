package shared

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/$GOFILE -package=sharedmock

import (
	"context"
	"time"

	"frontdesk/internal/domain/client"
	"frontdesk/internal/domain/hotel"
	"frontdesk/internal/domain/reservation"
	"frontdesk/internal/domain/room"
	"frontdesk/internal/domain/user"
	"frontdesk/internal/infra/query"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Hotels() HotelRepository
	Users() UserRepository
	Rooms() RoomRepository
	Clients() ClientRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Deliveries() DeliveryRepository
	Guests() GuestRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() query.DBTX
}

// CommandReads loads aggregates for the write side. Every lookup is scoped by
// hotel except the identity ones used before a hotel is known.
type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	Membership(ctx context.Context, hotelID string, userID uuid.UUID) (*hotel.Membership, error)
	MembershipsByUser(ctx context.Context, userID uuid.UUID) ([]hotel.Membership, error)
	RoomByID(ctx context.Context, hotelID string, id uuid.UUID) (*room.Room, error)
	RoomsByIDs(ctx context.Context, hotelID string, ids []uuid.UUID) ([]*room.Room, error)
	ClientByID(ctx context.Context, hotelID string, id uuid.UUID) (*client.Client, error)
	ClientByDocument(ctx context.Context, hotelID string, docType client.DocumentType, docID string) (*client.Client, error)
	ReservationByID(ctx context.Context, hotelID string, id uuid.UUID) (*reservation.Reservation, error)
	// ReservationForUpdate row-locks the reservation when called inside Within.
	ReservationForUpdate(ctx context.Context, hotelID string, id uuid.UUID) (*reservation.Reservation, error)
	DeliveryItems(ctx context.Context, hotelID string, reservationID uuid.UUID) ([]reservation.DeliveryItem, error)
}

type HotelRepository interface {
	Create(ctx context.Context, tx query.DBTX, h *hotel.Hotel) error
	AddMember(ctx context.Context, tx query.DBTX, membership hotel.Membership) error
}

type UserRepository interface {
	Create(ctx context.Context, tx query.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx query.DBTX, userID uuid.UUID, at time.Time) error
}

type RoomRepository interface {
	Create(ctx context.Context, tx query.DBTX, r *room.Room) error
	Update(ctx context.Context, tx query.DBTX, r *room.Room) error
	Delete(ctx context.Context, tx query.DBTX, hotelID string, id uuid.UUID) error
}

type ClientRepository interface {
	Create(ctx context.Context, tx query.DBTX, c *client.Client) error
	Update(ctx context.Context, tx query.DBTX, c *client.Client) error
	Delete(ctx context.Context, tx query.DBTX, hotelID string, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx query.DBTX, res *reservation.Reservation) error
	Update(ctx context.Context, tx query.DBTX, res *reservation.Reservation) error
	// Delete removes every listed reservation of the hotel and reports how many existed.
	Delete(ctx context.Context, tx query.DBTX, hotelID string, ids []uuid.UUID) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, tx query.DBTX, hotelID string, p *reservation.Payment, createdBy uuid.UUID) error
}

type DeliveryRepository interface {
	Create(ctx context.Context, tx query.DBTX, hotelID string, item reservation.DeliveryItem) error
	UpdateReceived(ctx context.Context, tx query.DBTX, item reservation.DeliveryItem) error
}

type GuestRepository interface {
	// Replace swaps the reservation's guest list for guests.
	Replace(ctx context.Context, tx query.DBTX, hotelID string, reservationID uuid.UUID, guests []reservation.Guest) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx query.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
