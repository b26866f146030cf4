//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TRUNCATE bypasses the append-only row triggers.
const truncateLedgerSQL = "TRUNCATE redemptions, ledger_entries, rewards, businesses RESTART IDENTITY CASCADE"

// ResetDB empties every ledger table.
func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Exec(ctx, truncateLedgerSQL)
	return err
}

// CreateTestBusiness registers a business with the given check-in award.
func CreateTestBusiness(t *testing.T, db DBLike, pointsPerCheckIn int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO businesses (id, points_per_check_in) VALUES ($1, $2)", id, pointsPerCheckIn)
	require.NoError(t, err)
	return id
}

func CreateTestReward(t *testing.T, db DBLike, businessID uuid.UUID, name string, cost int64, active bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rewards (id, business_id, name, points_cost, active) VALUES ($1, $2, $3, $4, $5)",
		id, businessID, name, cost, active)
	require.NoError(t, err)
	return id
}

// PartitionBalance sums deltas directly, independent of any read store.
func PartitionBalance(t *testing.T, db DBLike, customerID, businessID uuid.UUID) int64 {
	t.Helper()

	var balance int64
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE(SUM(delta), 0) FROM ledger_entries WHERE customer_id = $1 AND business_id = $2",
		customerID, businessID).Scan(&balance)
	require.NoError(t, err)
	return balance
}

func CountRedemptions(t *testing.T, db DBLike, customerID, businessID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM redemptions WHERE customer_id = $1 AND business_id = $2",
		customerID, businessID).Scan(&n)
	require.NoError(t, err)
	return n
}
