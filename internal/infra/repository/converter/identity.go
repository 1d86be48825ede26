package converter

import (
	"frontdesk/internal/domain/hotel"
	"frontdesk/internal/domain/user"
	"frontdesk/internal/infra/query"
	"frontdesk/internal/pkg/pgconv"
)

func HotelToRow(h *hotel.Hotel) query.CreateHotelParams {
	return query.CreateHotelParams{
		ID:        h.ID(),
		Name:      h.Name(),
		Plan:      h.Plan(),
		CreatedAt: pgconv.TimeToPgtype(h.CreatedAt()),
	}
}

func HotelFromRow(row query.Hotel) *hotel.Hotel {
	return hotel.ReconstructHotel(row.ID, row.Name, row.Plan, pgconv.TimeFromPgtype(row.CreatedAt))
}

func UserToCreateParams(u *user.User) query.CreateUserParams {
	return query.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

// UserFromRow trusts the stored email; it was validated on the way in.
func UserFromRow(row query.User) *user.User {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		email = user.Email{}
	}
	return user.ReconstructUser(
		row.ID,
		email,
		row.PasswordHash,
		pgconv.TimePtrFromPgtype(row.LastLogin),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func MembershipToRow(m hotel.Membership) query.HotelMember {
	return query.HotelMember{
		HotelID:   m.HotelID,
		UserID:    m.UserID,
		Role:      m.Role.String(),
		CreatedAt: pgconv.TimeToPgtype(m.CreatedAt),
	}
}

func MembershipFromRow(row query.HotelMember) hotel.Membership {
	return hotel.Membership{
		HotelID:   row.HotelID,
		UserID:    row.UserID,
		Role:      user.Role(row.Role),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
