package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyItemName        = errors.New("item name is required")
	ErrInvalidQuantity      = errors.New("delivered quantity must be at least 1")
	ErrReceivedOutOfRange   = errors.New("received quantity must be between 0 and the delivered quantity")
	ErrDeliveryItemNotFound = errors.New("delivery item not found")
)

// DeliveryItem is something handed to the guest at check-in (towels, keys,
// remotes) that is counted back at checkout.
type DeliveryItem struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Name          string
	QtyDelivered  int
	QtyReceived   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewDeliveryItem(reservationID uuid.UUID, name string, qty int, now time.Time) (DeliveryItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DeliveryItem{}, ErrEmptyItemName
	}
	if qty < 1 {
		return DeliveryItem{}, ErrInvalidQuantity
	}
	return DeliveryItem{
		ID:            uuid.New(),
		ReservationID: reservationID,
		Name:          name,
		QtyDelivered:  qty,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func (d *DeliveryItem) Receive(qty int, now time.Time) error {
	if qty < 0 || qty > d.QtyDelivered {
		return ErrReceivedOutOfRange
	}
	d.QtyReceived = qty
	d.UpdatedAt = now
	return nil
}

func (d DeliveryItem) Missing() int {
	return d.QtyDelivered - d.QtyReceived
}

// HasMissing is true when any item came back short.
func HasMissing(items []DeliveryItem) bool {
	for _, it := range items {
		if it.QtyReceived < it.QtyDelivered {
			return true
		}
	}
	return false
}
