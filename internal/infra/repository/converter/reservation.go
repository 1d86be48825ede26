package converter

import (
	"frontdesk/internal/domain/reservation"
	"frontdesk/internal/infra/query"
	"frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToRow(r *reservation.Reservation) query.Reservation {
	return query.Reservation{
		ID:           r.ID(),
		HotelID:      r.HotelID(),
		ClientID:     r.ClientID(),
		Rooms:        pgconv.UUIDsToPgtype(r.Rooms()),
		StartDate:    pgconv.TimeToPgtype(r.Stay().Start()),
		EndDate:      pgconv.TimeToPgtype(r.Stay().End()),
		Status:       r.Status().String(),
		Channel:      string(r.Channel()),
		Notes:        r.Notes().String(),
		Guests:       int32(r.Guests()),
		TotalCents:   r.TotalCents(),
		BalanceCents: r.BalanceCents(),
		Missing:      r.Missing(),
		Occupancy:    string(r.Occupancy()),
		CreatedAt:    pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReservationFromRow(row query.Reservation) *reservation.Reservation {
	details := reservation.Details{
		ClientID: row.ClientID,
		Rooms:    pgconv.UUIDsFromPgtype(row.Rooms),
		Stay:     reservation.StayWindow(pgconv.TimeFromPgtype(row.StartDate), pgconv.TimeFromPgtype(row.EndDate)),
		Status:   reservation.Status(row.Status),
		Channel:  reservation.Channel(row.Channel),
		Notes:    reservation.NewNote(row.Notes),
		Guests:   int(row.Guests),
	}
	return reservation.ReconstructReservation(
		row.ID,
		row.HotelID,
		details,
		row.TotalCents,
		row.BalanceCents,
		row.Missing,
		reservation.Occupancy(row.Occupancy),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func ClaimFromRow(row query.ReservationClaim) reservation.Claim {
	return reservation.Claim{
		ReservationID: row.ID,
		Status:        reservation.Status(row.Status),
		Stay:          reservation.StayWindow(pgconv.TimeFromPgtype(row.StartDate), pgconv.TimeFromPgtype(row.EndDate)),
	}
}

func StatusesToStrings(statuses []reservation.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}

func PaymentToRow(hotelID string, p *reservation.Payment, createdBy uuid.UUID) query.Payment {
	by := pgtype.UUID{}
	if createdBy != uuid.Nil {
		by = pgtype.UUID{Bytes: createdBy, Valid: true}
	}
	return query.Payment{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		HotelID:       hotelID,
		AmountCents:   p.AmountCents,
		Method:        string(p.Method),
		CreatedBy:     by,
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt),
	}
}

func DeliveryItemToRow(hotelID string, d reservation.DeliveryItem) query.DeliveryItem {
	return query.DeliveryItem{
		ID:            d.ID,
		ReservationID: d.ReservationID,
		HotelID:       hotelID,
		Name:          d.Name,
		QtyDelivered:  int32(d.QtyDelivered),
		QtyReceived:   int32(d.QtyReceived),
		CreatedAt:     pgconv.TimeToPgtype(d.CreatedAt),
		UpdatedAt:     pgconv.TimeToPgtype(d.UpdatedAt),
	}
}

func DeliveryItemFromRow(row query.DeliveryItem) reservation.DeliveryItem {
	return reservation.DeliveryItem{
		ID:            row.ID,
		ReservationID: row.ReservationID,
		Name:          row.Name,
		QtyDelivered:  int(row.QtyDelivered),
		QtyReceived:   int(row.QtyReceived),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func GuestToRow(hotelID string, g reservation.Guest) query.Guest {
	return query.Guest{
		ID:            g.ID,
		ReservationID: g.ReservationID,
		HotelID:       hotelID,
		Name:          g.Name,
		Email:         g.Email,
		Phone:         g.Phone,
		DocType:       g.DocType,
		DocNum:        g.DocNum,
		Nationality:   g.Nationality,
		CreatedAt:     pgconv.TimeToPgtype(g.CreatedAt),
	}
}
