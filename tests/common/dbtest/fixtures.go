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

func CreateTestBusiness(t *testing.T, db DBLike, name, loyaltyType string) uuid.UUID {
	t.Helper()

	businessID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO businesses (id, name, loyalty_type) VALUES ($1, $2, $3)",
		businessID, name, loyaltyType)
	require.NoError(t, err)

	return businessID
}

func CreateTestCoupon(t *testing.T, db DBLike, businessID uuid.UUID, name string, pointsRequired int32) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO coupons (id, business_id, name, description, points_required) VALUES ($1, $2, $3, '', $4)",
		couponID, businessID, name, pointsRequired)
	require.NoError(t, err)

	return couponID
}

func SeedPointBalance(t *testing.T, db DBLike, userID, businessID uuid.UUID, points int32) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO point_balances (user_id, business_id, total_points) VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, business_id) DO UPDATE SET total_points = EXCLUDED.total_points`,
		userID, businessID, points)
	require.NoError(t, err)
}

func SeedStampBalance(t *testing.T, db DBLike, userID, businessID, couponID uuid.UUID, points int32) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO stamp_balances (user_id, business_id, coupon_id, points) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, business_id, coupon_id) DO UPDATE SET points = EXCLUDED.points`,
		userID, businessID, couponID, points)
	require.NoError(t, err)
}

// inserts the reference rows every flow test assumes exist
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO businesses (name, loyalty_type) VALUES
		    ('Default Cafe', 'points'),
		    ('Stamp Cafe', 'stamps')
		ON CONFLICT DO NOTHING;
	`)
	return err
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
