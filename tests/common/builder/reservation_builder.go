//go:build unit || e2e

package builder

import (
	"time"

	domres "frontdesk/internal/domain/reservation"
	reqdto "frontdesk/internal/handler/dto/request"
	"frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	HotelID    string
	ClientID   uuid.UUID
	Rooms      []uuid.UUID
	Start      time.Time
	End        time.Time
	Status     domres.Status
	Channel    domres.Channel
	Notes      string
	Guests     int
	TotalCents int64
	Now        time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2030, 3, 10, 14, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		HotelID:    "hotel-test",
		ClientID:   uuid.New(),
		Rooms:      []uuid.UUID{uuid.New()},
		Start:      start,
		End:        start.Add(3 * 24 * time.Hour),
		Status:     domres.StatusConfirmed,
		Channel:    domres.ChannelHotel,
		Notes:      "late arrival",
		Guests:     2,
		TotalCents: 30000,
		Now:        time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithStay(start, end time.Time) *ReservationBuilder {
	r.Start, r.End = start, end
	return r
}

func (r *ReservationBuilder) WithStatus(s domres.Status) *ReservationBuilder {
	r.Status = s
	return r
}

func (r *ReservationBuilder) WithRooms(ids ...uuid.UUID) *ReservationBuilder {
	r.Rooms = ids
	return r
}

func (r *ReservationBuilder) Details() domres.Details {
	return domres.Details{
		ClientID: r.ClientID,
		Rooms:    r.Rooms,
		Stay:     domres.StayWindow(r.Start, r.End),
		Status:   r.Status,
		Channel:  r.Channel,
		Notes:    domres.NewNote(r.Notes),
		Guests:   r.Guests,
	}
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	return domres.NewReservation(r.HotelID, r.Details(), r.TotalCents, r.Now)
}

func (r *ReservationBuilder) MustBuildDomain() *domres.Reservation {
	res, err := r.BuildDomain()
	if err != nil {
		panic(err)
	}
	return res
}

func (r *ReservationBuilder) BuildRequestDTO() reqdto.ReservationRequest {
	return reqdto.ReservationRequest{
		ClientID:  r.ClientID,
		Rooms:     r.Rooms,
		StartDate: reqdto.Date{Time: r.Start},
		EndDate:   reqdto.Date{Time: r.End},
		Status:    string(r.Status),
		Channel:   string(r.Channel),
		Notes:     r.Notes,
		Guests:    r.Guests,
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:           uuid.New(),
		ClientID:     r.ClientID,
		ClientName:   "Ana Gomez",
		Rooms:        r.Rooms,
		StartDate:    r.Start,
		EndDate:      r.End,
		Nights:       int(r.End.Sub(r.Start).Hours() / 24),
		Status:       string(r.Status),
		Channel:      string(r.Channel),
		Notes:        r.Notes,
		Guests:       r.Guests,
		TotalCents:   r.TotalCents,
		BalanceCents: r.TotalCents,
		CreatedAt:    r.Now,
		UpdatedAt:    r.Now,
	}
}
