// Package pgtest gives integration tests an isolated, migrated Postgres schema.
// Tests using it are skipped unless BACKOFFICE_TEST_DATABASE_URL is set.
package pgtest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const EnvDatabaseURL = "BACKOFFICE_TEST_DATABASE_URL"

// NewPool creates a schema named after the test run, applies every
// migration to it and returns a pool whose search_path points there. The
// schema is dropped when the test finishes.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	databaseURL := os.Getenv(EnvDatabaseURL)
	if databaseURL == "" {
		t.Skipf("%s not set", EnvDatabaseURL)
	}

	ctx := context.Background()
	admin, err := pgx.Connect(ctx, databaseURL)
	require.NoError(t, err)

	schema := fmt.Sprintf("backoffice_test_%d", time.Now().UnixNano())
	_, err = admin.Exec(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)

	cfg, err := pgxpool.ParseConfig(databaseURL)
	require.NoError(t, err)
	cfg.ConnConfig.RuntimeParams["search_path"] = schema
	cfg.MaxConns = 16

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
		_, _ = admin.Exec(ctx, "DROP SCHEMA "+schema+" CASCADE")
		_ = admin.Close(ctx)
	})

	applyMigrations(t, pool)
	return pool
}

func applyMigrations(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	files, err := filepath.Glob(filepath.Join(filepath.Dir(file), "..", "..", "db", "migrations", "*.up.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files)
	sort.Strings(files)

	for _, f := range files {
		sql, err := os.ReadFile(f)
		require.NoError(t, err)
		_, err = pool.Exec(context.Background(), string(sql))
		require.NoError(t, err, "apply %s", filepath.Base(f))
	}
}

// Bill describes one seeded bill.
type Bill struct {
	ConnectionID string
	Month, Year  int
	IssueDate    string
	DueDate      string
	BeforeDue    string
	AfterDue     string
}

// SeedReference inserts the customer C-1 with connection K-1 (type RES) and
// the payment methods 1 "Cash" and 2 "Card".
func SeedReference(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(), `
INSERT INTO customers (customer_id, first_name, last_name, address, phone_number, email)
VALUES ('C-1', 'Ada', 'Lovelace', '12 Analytical St', '+44 20 0000', 'ada@example.com');
INSERT INTO connection_types (connection_type_code, description) VALUES ('RES', 'Residential');
INSERT INTO div_info (division_id, subdiv_id, division_name, subdiv_name) VALUES (1, 1, 'North', 'North-1');
INSERT INTO connections (connection_id, customer_id, connection_type_code, division_id, subdiv_id, installation_date, meter_type)
VALUES ('K-1', 'C-1', 'RES', 1, 1, '2020-06-01', 'Smart');
INSERT INTO payment_methods (payment_method_id, payment_method_description) VALUES (1, 'Cash'), (2, 'Card');
`)
	require.NoError(t, err)
}

// SeedBill inserts b and returns its bill_id.
func SeedBill(t *testing.T, pool *pgxpool.Pool, b Bill) int32 {
	t.Helper()

	var id int32
	err := pool.QueryRow(context.Background(), `
INSERT INTO bills (connection_id, billing_month, billing_year, bill_issue_date, due_date,
                   import_peak_units, import_off_peak_units,
                   total_amount_before_due_date, total_amount_after_due_date)
VALUES ($1, $2, $3, $4::date, $5::date, 100, 50, $6::numeric, $7::numeric)
RETURNING bill_id`,
		b.ConnectionID, b.Month, b.Year, b.IssueDate, b.DueDate, b.BeforeDue, b.AfterDue,
	).Scan(&id)
	require.NoError(t, err)
	return id
}
