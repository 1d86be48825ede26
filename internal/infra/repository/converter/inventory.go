package converter

import (
	"frontdesk/internal/domain/client"
	"frontdesk/internal/domain/room"
	"frontdesk/internal/infra/query"
	"frontdesk/internal/pkg/pgconv"
)

func RoomToRow(r *room.Room) query.Room {
	a := r.Attributes()
	return query.Room{
		ID:          r.ID(),
		HotelID:     r.HotelID(),
		Number:      a.Number,
		Type:        string(a.Type),
		Status:      string(a.Status),
		PriceCents:  a.PriceCents,
		Description: a.Description,
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RoomFromRow(row query.Room) *room.Room {
	return room.ReconstructRoom(row.ID, row.HotelID, room.Attributes{
		Number:      row.Number,
		Type:        room.Type(row.Type),
		Status:      room.Status(row.Status),
		PriceCents:  row.PriceCents,
		Description: row.Description,
	}, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}

func ClientToRow(c *client.Client) query.Client {
	p := c.Profile()
	return query.Client{
		ID:           c.ID(),
		HotelID:      c.HotelID(),
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		Phone:        p.Phone,
		DocumentType: string(p.DocumentType),
		DocumentID:   p.DocumentID,
		Address:      p.Address,
		Notes:        p.Notes,
		CreatedAt:    pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func ClientFromRow(row query.Client) *client.Client {
	return client.ReconstructClient(row.ID, row.HotelID, ClientProfileFromRow(row),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}

func ClientProfileFromRow(row query.Client) client.Profile {
	return client.Profile{
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Email:        row.Email,
		Phone:        row.Phone,
		DocumentType: client.DocumentType(row.DocumentType),
		DocumentID:   row.DocumentID,
		Address:      row.Address,
		Notes:        row.Notes,
	}
}
