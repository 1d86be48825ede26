package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrClientRequired      = errors.New("client is required")
	ErrNoRooms             = errors.New("at least one room is required")
	ErrInvalidGuests       = errors.New("guests must be at least 1")
	ErrInvalidChannel      = errors.New("invalid reservation channel")
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrNegativeTotal       = errors.New("total cannot be negative")
	ErrTotalBelowPaid      = errors.New("new total is below the amount already paid")
	ErrReservationCanceled = errors.New("reservation is cancelled")
	ErrInvalidTransition   = errors.New("invalid occupancy transition")
)

// Details are the fields a front-desk user edits on the booking form.
type Details struct {
	ClientID uuid.UUID
	Rooms    []uuid.UUID
	Stay     Stay
	Status   Status
	Channel  Channel
	Notes    Note
	Guests   int
}

func (d Details) normalize() (Details, error) {
	if d.Status == "" {
		d.Status = StatusUnconfirmed
	}
	if d.Channel == "" {
		d.Channel = ChannelHotel
	}
	if d.Guests == 0 {
		d.Guests = 1
	}
	d.Rooms = dedupeRooms(d.Rooms)

	switch {
	case d.ClientID == uuid.Nil:
		return d, ErrClientRequired
	case len(d.Rooms) == 0:
		return d, ErrNoRooms
	case d.Stay.start.IsZero() || !d.Stay.end.After(d.Stay.start):
		return d, ErrInvalidStay
	case d.Guests < 1:
		return d, ErrInvalidGuests
	case !d.Channel.IsValid():
		return d, ErrInvalidChannel
	case !d.Status.IsValid():
		return d, ErrInvalidStatus
	}
	return d, nil
}

// Validate runs the booking form checks without building a reservation.
func (d Details) Validate() (Details, error) {
	return d.normalize()
}

func dedupeRooms(rooms []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(rooms))
	out := make([]uuid.UUID, 0, len(rooms))
	for _, id := range rooms {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

type Reservation struct {
	id           uuid.UUID
	hotelID      string
	details      Details
	totalCents   int64
	balanceCents int64
	missing      bool
	occupancy    Occupancy
	createdAt    time.Time
	updatedAt    time.Time
}

// NewReservation builds a booking. totalCents is the price of the selected
// rooms; the whole amount starts as outstanding balance.
func NewReservation(hotelID string, details Details, totalCents int64, now time.Time) (*Reservation, error) {
	details, err := details.normalize()
	if err != nil {
		return nil, err
	}
	if totalCents < 0 {
		return nil, ErrNegativeTotal
	}
	return &Reservation{
		id:           uuid.New(),
		hotelID:      hotelID,
		details:      details,
		totalCents:   totalCents,
		balanceCents: totalCents,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	hotelID string,
	details Details,
	totalCents, balanceCents int64,
	missing bool,
	occupancy Occupancy,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		hotelID:      hotelID,
		details:      details,
		totalCents:   totalCents,
		balanceCents: balanceCents,
		missing:      missing,
		occupancy:    occupancy,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Update replaces the booking form fields. Payments already received are kept,
// so the balance becomes the new total minus what was paid.
func (r *Reservation) Update(details Details, totalCents int64, now time.Time) error {
	if r.IsCancelled() {
		return ErrReservationCanceled
	}
	details, err := details.normalize()
	if err != nil {
		return err
	}
	if totalCents < 0 {
		return ErrNegativeTotal
	}
	paid := r.PaidCents()
	if totalCents < paid {
		return ErrTotalBelowPaid
	}
	r.details = details
	r.totalCents = totalCents
	r.balanceCents = totalCents - paid
	r.updatedAt = now
	return nil
}

// ChangeStatus moves between statuses. Cancelled is terminal.
func (r *Reservation) ChangeStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	if r.IsCancelled() && status != StatusCancelled {
		return ErrReservationCanceled
	}
	r.details.Status = status
	r.updatedAt = now
	return nil
}

func (r *Reservation) Cancel(now time.Time) error {
	return r.ChangeStatus(StatusCancelled, now)
}

// RecordPayment takes amountCents off the balance. The reservation becomes
// paid once nothing is owed.
func (r *Reservation) RecordPayment(amountCents int64, method Method, now time.Time) (*Payment, error) {
	if r.IsCancelled() {
		return nil, ErrReservationCanceled
	}
	p, err := NewPayment(r.id, amountCents, method, now)
	if err != nil {
		return nil, err
	}
	if amountCents > r.balanceCents {
		return nil, ErrAmountExceedsBalance
	}
	r.balanceCents -= amountCents
	if r.balanceCents <= 0 {
		r.details.Status = StatusPaid
	}
	r.updatedAt = now
	return p, nil
}

// ApplyReception recomputes the missing-items flag from the full item list.
func (r *Reservation) ApplyReception(items []DeliveryItem, now time.Time) {
	r.missing = HasMissing(items)
	r.updatedAt = now
}

// PreCheckIn registers the arriving guests ahead of check-in.
func (r *Reservation) PreCheckIn(guests []Guest, now time.Time) error {
	if r.IsCancelled() {
		return ErrReservationCanceled
	}
	if r.occupancy.HasArrived() {
		return ErrAlreadyCheckedIn
	}
	if len(guests) == 0 {
		return ErrNoGuests
	}
	r.occupancy = OccupancyPreArrival
	r.updatedAt = now
	return nil
}

func (r *Reservation) CheckIn(now time.Time) error {
	if r.IsCancelled() {
		return ErrReservationCanceled
	}
	if r.occupancy.HasArrived() {
		return ErrInvalidTransition
	}
	r.occupancy = OccupancyCheckIn
	r.updatedAt = now
	return nil
}

func (r *Reservation) CheckOut(now time.Time) error {
	if r.occupancy != OccupancyCheckIn {
		return ErrInvalidTransition
	}
	r.occupancy = OccupancyCheckOut
	r.updatedAt = now
	return nil
}

// Claim is what this reservation holds on each of its rooms.
func (r *Reservation) Claim() Claim {
	return Claim{ReservationID: r.id, Status: r.details.Status, Stay: r.details.Stay}
}

func (r *Reservation) IsCancelled() bool {
	return r.details.Status == StatusCancelled
}

func (r *Reservation) OccupiesRooms() bool {
	return r.details.Status.OccupiesRoom()
}

func (r *Reservation) PaidCents() int64 {
	return r.totalCents - r.balanceCents
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) HotelID() string      { return r.hotelID }
func (r *Reservation) Details() Details     { return r.details }
func (r *Reservation) ClientID() uuid.UUID  { return r.details.ClientID }
func (r *Reservation) Rooms() []uuid.UUID   { return append([]uuid.UUID(nil), r.details.Rooms...) }
func (r *Reservation) Stay() Stay           { return r.details.Stay }
func (r *Reservation) Status() Status       { return r.details.Status }
func (r *Reservation) Channel() Channel     { return r.details.Channel }
func (r *Reservation) Notes() Note          { return r.details.Notes }
func (r *Reservation) Guests() int          { return r.details.Guests }
func (r *Reservation) TotalCents() int64    { return r.totalCents }
func (r *Reservation) BalanceCents() int64  { return r.balanceCents }
func (r *Reservation) Missing() bool        { return r.missing }
func (r *Reservation) Occupancy() Occupancy { return r.occupancy }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
