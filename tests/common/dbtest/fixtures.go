//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	DefaultHotelID = "hotel-default"
	OtherHotelID   = "hotel-other"
	// DefaultPassword matches the bcrypt hash stored for every fixture user.
	DefaultPassword = "password123"

	passwordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

// CreateTestUser inserts a user, or reuses the one with that email, and makes
// it a member of hotelID with role.
func CreateTestUser(t *testing.T, db DBLike, hotelID, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, is_active) VALUES ($1, $2, $3, true) ON CONFLICT (email) DO NOTHING",
		userID, email, passwordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	_, err = db.Exec(ctx, "INSERT INTO hotel_members (hotel_id, user_id, role) VALUES ($1, $2, $3) ON CONFLICT (hotel_id, user_id) DO UPDATE SET role = EXCLUDED.role",
		hotelID, userID, role)
	require.NoError(t, err)

	return userID
}

func CreateTestHotel(t *testing.T, db DBLike, id, name string) string {
	t.Helper()

	_, err := db.Exec(context.Background(), "INSERT INTO hotels (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING", id, name)
	require.NoError(t, err)
	return id
}

func CreateTestRoom(t *testing.T, db DBLike, hotelID, number string, priceCents int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, hotel_id, number, price_cents) VALUES ($1, $2, $3, $4)",
		id, hotelID, number, priceCents)
	require.NoError(t, err)
	return id
}

func CreateTestClient(t *testing.T, db DBLike, hotelID, firstName, lastName string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO clients (id, hotel_id, first_name, last_name) VALUES ($1, $2, $3, $4)",
		id, hotelID, firstName, lastName)
	require.NoError(t, err)
	return id
}

// CreateTestReservation inserts a booking directly, bypassing the availability check.
func CreateTestReservation(t *testing.T, db DBLike, hotelID string, clientID uuid.UUID, rooms []uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO reservations (id, hotel_id, client_id, rooms, start_date, end_date, status) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		id, hotelID, clientID, rooms, start, end, status)
	require.NoError(t, err)
	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO hotels (id, name) VALUES
		    ($1, 'Default Hotel'),
		    ($2, 'Other Hotel')
		ON CONFLICT (id) DO NOTHING;
	`, DefaultHotelID, OtherHotelID)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
