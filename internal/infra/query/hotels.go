package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createHotel = `
INSERT INTO hotels (id, name, plan, created_at)
VALUES ($1, $2, $3, $4)
`

type CreateHotelParams struct {
	ID        string
	Name      string
	Plan      string
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateHotel(ctx context.Context, db DBTX, arg CreateHotelParams) error {
	_, err := db.Exec(ctx, createHotel, arg.ID, arg.Name, arg.Plan, arg.CreatedAt)
	return err
}

const getHotel = `
SELECT id, name, plan, created_at FROM hotels WHERE id = $1
`

func (q *Queries) GetHotel(ctx context.Context, db DBTX, id string) (Hotel, error) {
	rows, err := db.Query(ctx, getHotel, id)
	if err != nil {
		return Hotel{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Hotel])
}

const createUser = `
INSERT INTO users (id, email, password_hash, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateUserParams struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) error {
	_, err := db.Exec(ctx, createUser, arg.ID, arg.Email, arg.PasswordHash, arg.IsActive, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const userColumns = `id, email, password_hash, last_login, is_active, created_at, updated_at`

const getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (User, error) {
	rows, err := db.Query(ctx, getUserByID, id)
	if err != nil {
		return User{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[User])
}

const getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

func (q *Queries) GetUserByEmail(ctx context.Context, db DBTX, email string) (User, error) {
	rows, err := db.Query(ctx, getUserByEmail, email)
	if err != nil {
		return User{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[User])
}

const updateUserLastLogin = `
UPDATE users SET last_login = $2, updated_at = $2 WHERE id = $1
`

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, id uuid.UUID, at pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, updateUserLastLogin, id, at)
	return err
}

const createHotelMember = `
INSERT INTO hotel_members (hotel_id, user_id, role, created_at)
VALUES ($1, $2, $3, $4)
`

func (q *Queries) CreateHotelMember(ctx context.Context, db DBTX, arg HotelMember) error {
	_, err := db.Exec(ctx, createHotelMember, arg.HotelID, arg.UserID, arg.Role, arg.CreatedAt)
	return err
}

const getHotelMember = `
SELECT hotel_id, user_id, role, created_at FROM hotel_members WHERE hotel_id = $1 AND user_id = $2
`

func (q *Queries) GetHotelMember(ctx context.Context, db DBTX, hotelID string, userID uuid.UUID) (HotelMember, error) {
	rows, err := db.Query(ctx, getHotelMember, hotelID, userID)
	if err != nil {
		return HotelMember{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[HotelMember])
}

const listMembershipsByUser = `
SELECT hotel_id, user_id, role, created_at FROM hotel_members
WHERE user_id = $1
ORDER BY created_at, hotel_id
`

func (q *Queries) ListMembershipsByUser(ctx context.Context, db DBTX, userID uuid.UUID) ([]HotelMember, error) {
	rows, err := db.Query(ctx, listMembershipsByUser, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[HotelMember])
}

const listHotelMembers = `
SELECT m.user_id, u.email, m.role, m.created_at
FROM hotel_members m
JOIN users u ON u.id = m.user_id
WHERE m.hotel_id = $1
ORDER BY m.created_at, u.email
`

type ListHotelMembersRow struct {
	UserID    uuid.UUID          `db:"user_id"`
	Email     string             `db:"email"`
	Role      string             `db:"role"`
	CreatedAt pgtype.Timestamptz `db:"created_at"`
}

func (q *Queries) ListHotelMembers(ctx context.Context, db DBTX, hotelID string) ([]ListHotelMembersRow, error) {
	rows, err := db.Query(ctx, listHotelMembers, hotelID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[ListHotelMembersRow])
}
