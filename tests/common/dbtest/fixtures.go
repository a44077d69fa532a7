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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedLedgerAccount creates or overwrites the balance of owner.
func SeedLedgerAccount(t *testing.T, db DBLike, owner string, balance int64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO ledger_accounts (owner, balance) VALUES ($1, $2)
		 ON CONFLICT (owner) DO UPDATE SET balance = EXCLUDED.balance`,
		strings.ToLower(owner), balance)
	require.NoError(t, err)
}

func LedgerBalance(t *testing.T, db DBLike, owner string) int64 {
	t.Helper()

	var balance int64
	err := db.QueryRow(context.Background(),
		"SELECT balance FROM ledger_accounts WHERE owner = $1", strings.ToLower(owner)).Scan(&balance)
	require.NoError(t, err)
	return balance
}

func LedgerProductCount(t *testing.T, db DBLike) int64 {
	t.Helper()

	var n int64
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM ledger_products").Scan(&n)
	require.NoError(t, err)
	return n
}

// TotalScans returns 0 when the key was never scanned.
func TotalScans(t *testing.T, db DBLike, key string) int64 {
	t.Helper()

	var n int64
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE((SELECT total_scans FROM scan_records WHERE identity_key = $1), 0)", key).Scan(&n)
	require.NoError(t, err)
	return n
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
