package response

import (
	"time"

	"frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID           uuid.UUID   `json:"id"`
	ClientID     uuid.UUID   `json:"clientId"`
	ClientName   string      `json:"clientName"`
	Rooms        []uuid.UUID `json:"rooms"`
	RoomNumbers  []string    `json:"roomNumbers"`
	StartDate    time.Time   `json:"startDate"`
	EndDate      time.Time   `json:"endDate"`
	Nights       int         `json:"nights"`
	Status       string      `json:"status"`
	Channel      string      `json:"channel"`
	Notes        string      `json:"notes"`
	Guests       int         `json:"guests"`
	TotalCents   int64       `json:"totalCents"`
	BalanceCents int64       `json:"balanceCents"`
	PaidCents    int64       `json:"paidCents"`
	Missing      bool        `json:"missing"`
	Occupancy    string      `json:"occupancy"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

type ReservationListResponse struct {
	Items      []ReservationResponse `json:"items"`
	NextCursor string                `json:"nextCursor,omitempty"`
}

type PaymentResponse struct {
	ID          uuid.UUID  `json:"id"`
	AmountCents int64      `json:"amountCents"`
	Method      string     `json:"method"`
	CreatedBy   *uuid.UUID `json:"createdBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type PaymentRecordedResponse struct {
	PaymentID    uuid.UUID `json:"paymentId"`
	BalanceCents int64     `json:"balanceCents"`
	Status       string    `json:"status"`
}

type DeliveryItemResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	QtyDelivered int       `json:"qtyDelivered"`
	QtyReceived  int       `json:"qtyReceived"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ReceptionResponse struct {
	Missing bool `json:"missing"`
}

type GuestResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	DocType     string    `json:"docType"`
	DocNum      string    `json:"docNum"`
	Nationality string    `json:"nationality"`
}

type BulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

type PublicReservationResponse struct {
	ID          uuid.UUID `json:"id"`
	HotelName   string    `json:"hotelName"`
	RoomNumbers []string  `json:"roomNumbers"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Guests      int       `json:"guests"`
	Status      string    `json:"status"`
	Occupancy   string    `json:"occupancy"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var out ReservationResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromReservationViews(vs []*queries.ReservationView) ([]ReservationResponse, error) {
	out := make([]ReservationResponse, 0, len(vs))
	if err := copier.Copy(&out, &vs); err != nil {
		return nil, err
	}
	return out, nil
}

func FromPaymentViews(vs []*queries.PaymentView) ([]PaymentResponse, error) {
	out := make([]PaymentResponse, 0, len(vs))
	if err := copier.Copy(&out, &vs); err != nil {
		return nil, err
	}
	return out, nil
}

func FromDeliveryItemViews(vs []*queries.DeliveryItemView) ([]DeliveryItemResponse, error) {
	out := make([]DeliveryItemResponse, 0, len(vs))
	if err := copier.Copy(&out, &vs); err != nil {
		return nil, err
	}
	return out, nil
}

func FromGuestViews(vs []*queries.GuestView) ([]GuestResponse, error) {
	out := make([]GuestResponse, 0, len(vs))
	if err := copier.Copy(&out, &vs); err != nil {
		return nil, err
	}
	return out, nil
}

func FromPublicReservation(v *queries.PublicReservationView) (*PublicReservationResponse, error) {
	var out PublicReservationResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}
