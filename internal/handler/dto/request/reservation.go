package request

import (
	"strings"

	"frontdesk/internal/domain/reservation"
	"frontdesk/internal/usecase/commands"
	"frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationRequest struct {
	ClientID   uuid.UUID   `json:"clientId" binding:"required"`
	Rooms      []uuid.UUID `json:"rooms" binding:"required,min=1"`
	StartDate  Date        `json:"startDate" binding:"required"`
	EndDate    Date        `json:"endDate" binding:"required"`
	Status     string      `json:"status"`
	Channel    string      `json:"channel"`
	Notes      string      `json:"notes" binding:"max=2000"`
	Guests     int         `json:"guests" binding:"gte=0"`
	TotalCents *int64      `json:"totalCents" binding:"omitempty,gte=0"`
}

func (r ReservationRequest) ToInput() commands.ReservationInput {
	return commands.ReservationInput{
		ClientID:   r.ClientID,
		Rooms:      r.Rooms,
		StartDate:  r.StartDate.Time,
		EndDate:    r.EndDate.Time,
		Status:     r.Status,
		Channel:    r.Channel,
		Notes:      r.Notes,
		Guests:     r.Guests,
		TotalCents: r.TotalCents,
	}
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BulkDeleteRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1,max=500"`
}

type PaymentRequest struct {
	AmountCents int64  `json:"amountCents" binding:"required,gt=0"`
	Method      string `json:"method" binding:"required"`
}

func (r PaymentRequest) ToInput() commands.PaymentInput {
	return commands.PaymentInput{AmountCents: r.AmountCents, Method: r.Method}
}

type DeliveryItemRequest struct {
	Item     string `json:"item" binding:"required,max=120"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type DeliveriesRequest struct {
	Items []DeliveryItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r DeliveriesRequest) ToInput() []commands.DeliveryInput {
	out := make([]commands.DeliveryInput, len(r.Items))
	for i, it := range r.Items {
		out[i] = commands.DeliveryInput{Name: it.Item, Quantity: it.Quantity}
	}
	return out
}

type ReceptionItemRequest struct {
	ID          uuid.UUID `json:"id" binding:"required"`
	QtyReceived int       `json:"qtyReceived" binding:"gte=0"`
}

type ReceptionRequest struct {
	Items []ReceptionItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r ReceptionRequest) ToInput() []commands.ReceptionInput {
	out := make([]commands.ReceptionInput, len(r.Items))
	for i, it := range r.Items {
		out[i] = commands.ReceptionInput{ItemID: it.ID, QtyReceived: it.QtyReceived}
	}
	return out
}

type GuestRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DocType     string `json:"docType"`
	DocNum      string `json:"docNum"`
	Nationality string `json:"nationality"`
}

// PreCheckInRequest leaves guest field rules to the domain so the public
// page gets the same messages as staff forms.
type PreCheckInRequest struct {
	Guests []GuestRequest `json:"guests"`
}

func (r PreCheckInRequest) ToInput() ([]reservation.GuestInput, error) {
	out := make([]reservation.GuestInput, 0, len(r.Guests))
	if err := copier.Copy(&out, &r.Guests); err != nil {
		return nil, err
	}
	return out, nil
}

// ReservationListQuery is bound from the query string of the list endpoint.
type ReservationListQuery struct {
	Status   string `form:"status"`
	Channel  string `form:"channel"`
	ClientID string `form:"clientId"`
	RoomID   string `form:"roomId"`
	From     string `form:"from"`
	To       string `form:"to"`
	Limit    int    `form:"limit"`
	After    string `form:"after"`
}

func (q ReservationListQuery) Filter() (queries.ReservationFilter, error) {
	var f queries.ReservationFilter
	for _, s := range strings.Split(q.Status, ",") {
		if s = strings.TrimSpace(s); s != "" {
			f.Statuses = append(f.Statuses, s)
		}
	}
	if ch := strings.TrimSpace(q.Channel); ch != "" {
		f.Channel = &ch
	}

	var err error
	if f.ClientID, err = optionalUUID(q.ClientID); err != nil {
		return f, err
	}
	if f.RoomID, err = optionalUUID(q.RoomID); err != nil {
		return f, err
	}
	if f.From, err = OptionalDate(q.From); err != nil {
		return f, err
	}
	if f.To, err = OptionalDate(q.To); err != nil {
		return f, err
	}
	return f, nil
}

func (q ReservationListQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

func optionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, queries.ErrInvalidFilter
	}
	return &id, nil
}
