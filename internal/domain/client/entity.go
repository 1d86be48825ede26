package client

import (
	"errors"
	"strings"
	"time"

	"frontdesk/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrEmptyName           = errors.New("client first and last name are required")
	ErrInvalidEmail        = errors.New("invalid client email")
	ErrInvalidDocumentType = errors.New("invalid document type")
)

type DocumentType string

const (
	DocumentDNI      DocumentType = "dni"
	DocumentPassport DocumentType = "passport"
	DocumentOther    DocumentType = "other"
)

func (d DocumentType) IsValid() bool {
	switch d {
	case DocumentDNI, DocumentPassport, DocumentOther:
		return true
	}
	return false
}

// Profile holds the editable client fields.
type Profile struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	DocumentType DocumentType
	DocumentID   string
	Address      string
	Notes        string
}

func (p Profile) normalize() (Profile, error) {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Phone = strings.TrimSpace(p.Phone)
	p.DocumentID = strings.TrimSpace(p.DocumentID)
	p.Address = strings.TrimSpace(p.Address)
	p.Notes = strings.TrimSpace(p.Notes)
	if p.DocumentType == "" {
		p.DocumentType = DocumentDNI
	}

	switch {
	case p.FirstName == "" || p.LastName == "":
		return p, ErrEmptyName
	case p.Email != "" && !user.IsValidEmail(p.Email):
		return p, ErrInvalidEmail
	case !p.DocumentType.IsValid():
		return p, ErrInvalidDocumentType
	}
	return p, nil
}

// HasDocument reports whether the profile carries an identity document, which
// must then be unique per hotel.
func (p Profile) HasDocument() bool {
	return p.DocumentID != ""
}

type Client struct {
	id        uuid.UUID
	hotelID   string
	profile   Profile
	createdAt time.Time
	updatedAt time.Time
}

func NewClient(hotelID string, profile Profile, now time.Time) (*Client, error) {
	profile, err := profile.normalize()
	if err != nil {
		return nil, err
	}
	return &Client{id: uuid.New(), hotelID: hotelID, profile: profile, createdAt: now, updatedAt: now}, nil
}

func ReconstructClient(id uuid.UUID, hotelID string, profile Profile, createdAt, updatedAt time.Time) *Client {
	return &Client{id: id, hotelID: hotelID, profile: profile, createdAt: createdAt, updatedAt: updatedAt}
}

func (c *Client) Update(profile Profile, now time.Time) error {
	profile, err := profile.normalize()
	if err != nil {
		return err
	}
	c.profile = profile
	c.updatedAt = now
	return nil
}

func (c *Client) ID() uuid.UUID        { return c.id }
func (c *Client) HotelID() string      { return c.hotelID }
func (c *Client) Profile() Profile     { return c.profile }
func (c *Client) CreatedAt() time.Time { return c.createdAt }
func (c *Client) UpdatedAt() time.Time { return c.updatedAt }

func (c *Client) FullName() string {
	return c.profile.FirstName + " " + c.profile.LastName
}
