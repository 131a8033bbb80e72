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

func CreateTestUser(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, "INSERT INTO users (id, name, email) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		userID, name, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}
	return userID
}

func CreateTestEvent(t *testing.T, db DBLike, organizerID uuid.UUID, name string, eventDate time.Time) uuid.UUID {
	t.Helper()

	eventID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO events (id, organizer_id, name, event_date) VALUES ($1, $2, $3, $4)",
		eventID, organizerID, name, eventDate)
	require.NoError(t, err)
	return eventID
}

func CreateTestVendor(t *testing.T, db DBLike, userID uuid.UUID, businessName string) uuid.UUID {
	t.Helper()

	vendorID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO vendor_profiles (id, user_id, business_name) VALUES ($1, $2, $3)",
		vendorID, userID, businessName)
	require.NoError(t, err)
	return vendorID
}

// CreateTestListing inserts a listing; availability is raw JSON or nil.
func CreateTestListing(t *testing.T, db DBLike, vendorID uuid.UUID, title, category, status string, availability *string) uuid.UUID {
	t.Helper()

	listingID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO service_listings (id, vendor_id, title, category, status, availability) VALUES ($1, $2, $3, $4, $5, $6::jsonb)",
		listingID, vendorID, title, category, status, availability)
	require.NoError(t, err)
	return listingID
}

func AssertBookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID, want string) {
	t.Helper()

	var got string
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT status FROM booking_requests WHERE id = $1", bookingID).Scan(&got))
	require.Equal(t, want, got)
}

func ListingCounters(t *testing.T, db DBLike, listingID uuid.UUID) (inquiries, bookings int) {
	t.Helper()

	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT inquiry_count, booking_count FROM service_listings WHERE id = $1", listingID).Scan(&inquiries, &bookings))
	return inquiries, bookings
}

func VendorCompletionRate(t *testing.T, db DBLike, vendorID uuid.UUID) float64 {
	t.Helper()

	var rate float64
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT completion_rate::float8 FROM vendor_profiles WHERE id = $1", vendorID).Scan(&rate))
	return rate
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
