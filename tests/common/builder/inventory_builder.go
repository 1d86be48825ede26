//go:build unit || e2e

package builder

import (
	"time"

	"frontdesk/internal/domain/client"
	"frontdesk/internal/domain/room"
	reqdto "frontdesk/internal/handler/dto/request"
	"frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	HotelID     string
	Number      string
	Type        string
	Status      string
	PriceCents  int64
	Description string
	Now         time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		HotelID:     "hotel-test",
		Number:      "101",
		Type:        "double",
		Status:      "available",
		PriceCents:  10000,
		Description: "Garden view",
		Now:         time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) WithNumber(number string) *RoomBuilder {
	r.Number = number
	return r
}

func (r *RoomBuilder) WithPrice(cents int64) *RoomBuilder {
	r.PriceCents = cents
	return r
}

func (r *RoomBuilder) attributes() room.Attributes {
	return room.Attributes{
		Number:      r.Number,
		Type:        room.Type(r.Type),
		Status:      room.Status(r.Status),
		PriceCents:  r.PriceCents,
		Description: r.Description,
	}
}

// Build methods
func (r *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(r.HotelID, r.attributes(), r.Now)
}

func (r *RoomBuilder) MustBuildDomain() *room.Room {
	rm, err := r.BuildDomain()
	if err != nil {
		panic(err)
	}
	return rm
}

func (r *RoomBuilder) BuildRequestDTO() reqdto.RoomRequest {
	return reqdto.RoomRequest{
		Number:      r.Number,
		Type:        r.Type,
		Status:      r.Status,
		PriceCents:  r.PriceCents,
		Description: r.Description,
	}
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:          uuid.New(),
		Number:      r.Number,
		Type:        r.Type,
		Status:      r.Status,
		PriceCents:  r.PriceCents,
		Description: r.Description,
		CreatedAt:   r.Now,
		UpdatedAt:   r.Now,
	}
}

type ClientBuilder struct {
	HotelID      string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	DocumentType string
	DocumentID   string
	Now          time.Time
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		HotelID:      "hotel-test",
		FirstName:    "Ana",
		LastName:     "Gomez",
		Email:        "ana@example.com",
		Phone:        "+57 300 000 0000",
		DocumentType: "dni",
		DocumentID:   "10203040",
		Now:          time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (c *ClientBuilder) With(mutate func(*ClientBuilder)) *ClientBuilder {
	mutate(c)
	return c
}

func (c *ClientBuilder) WithDocument(docType, docID string) *ClientBuilder {
	c.DocumentType, c.DocumentID = docType, docID
	return c
}

func (c *ClientBuilder) profile() client.Profile {
	return client.Profile{
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		Phone:        c.Phone,
		DocumentType: client.DocumentType(c.DocumentType),
		DocumentID:   c.DocumentID,
	}
}

// Build methods
func (c *ClientBuilder) BuildDomain() (*client.Client, error) {
	return client.NewClient(c.HotelID, c.profile(), c.Now)
}

func (c *ClientBuilder) BuildRequestDTO() reqdto.ClientRequest {
	return reqdto.ClientRequest{
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		Phone:        c.Phone,
		DocumentType: c.DocumentType,
		DocumentID:   c.DocumentID,
	}
}

func (c *ClientBuilder) BuildView() *queries.ClientView {
	return &queries.ClientView{
		ID:           uuid.New(),
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		Phone:        c.Phone,
		DocumentType: c.DocumentType,
		DocumentID:   c.DocumentID,
		CreatedAt:    c.Now,
		UpdatedAt:    c.Now,
	}
}
