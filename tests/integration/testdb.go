// Package integration runs the reconciliation flows against a real PostgreSQL
// started with testcontainers. Every test is skipped under -short.
package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/culturehub/backend/internal/infrastructure/migration"
	"github.com/culturehub/backend/internal/infrastructure/persistence"
	"github.com/culturehub/backend/migrations"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TestDB is a migrated database in its own container
type TestDB struct {
	DB  *gorm.DB
	DSN string
	t   *testing.T
}

// NewTestDB starts a PostgreSQL container and applies the embedded migrations.
// The container is terminated when the test ends.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test requires docker")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("culturehub_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	runMigrations(t, dsn)

	db, err := persistence.Open(gormpostgres.Open(dsn), zaptest.NewLogger(t), gormlogger.Silent)
	require.NoError(t, err)
	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(10)
	t.Cleanup(func() { _ = db.Close() })

	return &TestDB{DB: db.DB, DSN: dsn, t: t}
}

// runMigrations applies the embedded migrations on a throwaway connection
func runMigrations(t *testing.T, dsn string) {
	t.Helper()
	conn, err := sql.Open("postgres", dsn)
	require.NoError(t, err)

	m, err := migration.NewFromFS(conn, migrations.FS, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer func() { _ = m.Close() }()

	require.NoError(t, m.Up(), "Failed to run migrations")
}

// CreateClient inserts an ACTIVE client
func (tdb *TestDB) CreateClient(status string) uuid.UUID {
	tdb.t.Helper()
	id := uuid.New()
	require.NoError(tdb.t, tdb.DB.Exec(
		`INSERT INTO clients (id, first_name, last_name, status) VALUES (?, ?, ?, ?)`,
		id, "Test", id.String()[:8], status,
	).Error)
	return id
}

// CreateGroup inserts a group
func (tdb *TestDB) CreateGroup() uuid.UUID {
	tdb.t.Helper()
	id := uuid.New()
	require.NoError(tdb.t, tdb.DB.Exec(
		`INSERT INTO groups (id, name, capacity) VALUES (?, ?, 20)`, id, "Group "+id.String()[:8],
	).Error)
	return id
}

// CreateSchedule inserts a class of groupID on date
func (tdb *TestDB) CreateSchedule(groupID uuid.UUID, date time.Time) uuid.UUID {
	tdb.t.Helper()
	id := uuid.New()
	require.NoError(tdb.t, tdb.DB.Exec(
		`INSERT INTO schedules (id, group_id, date, start_time, end_time) VALUES (?, ?, ?, '18:00', '19:30')`,
		id, groupID, date.Format("2006-01-02"),
	).Error)
	return id
}

// CreateSubscription inserts an ACTIVE subscription valid from start to end.
// A nil visits creates an UNLIMITED subscription.
func (tdb *TestDB) CreateSubscription(clientID, groupID uuid.UUID, visits *int, start, end time.Time) uuid.UUID {
	tdb.t.Helper()
	kind := "UNLIMITED"
	if visits != nil {
		kind = "SINGLE_VISIT"
	}
	typeID := uuid.New()
	require.NoError(tdb.t, tdb.DB.Exec(
		`INSERT INTO subscription_types (id, name, type, visits_included, duration_days, price) VALUES (?, ?, ?, ?, 30, 1000)`,
		typeID, kind+" pass", kind, visits,
	).Error)

	id := uuid.New()
	require.NoError(tdb.t, tdb.DB.Exec(
		`INSERT INTO subscriptions (id, client_id, group_id, subscription_type_id, remaining_visits, start_date, end_date, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, 'ACTIVE')`,
		id, clientID, groupID, typeID, visits, start.Format("2006-01-02"), end.Format("2006-01-02"),
	).Error)
	return id
}

// CreateInvoice inserts a PENDING invoice with one item. A subscriptionID
// makes the item an ON_USE write-off of that subscription.
func (tdb *TestDB) CreateInvoice(clientID uuid.UUID, total string, subscriptionID *uuid.UUID) uuid.UUID {
	tdb.t.Helper()
	id := uuid.New()
	amount := decimal.RequireFromString(total)
	require.NoError(tdb.t, tdb.DB.Exec(
		`INSERT INTO invoices (id, number, client_id, subscription_id, total_amount, status) VALUES (?, ?, ?, ?, ?, 'PENDING')`,
		id, "INV-"+id.String()[:8], clientID, subscriptionID, amount,
	).Error)

	timing := "ON_SALE"
	if subscriptionID != nil {
		timing = "ON_USE"
	}
	require.NoError(tdb.t, tdb.DB.Exec(
		`INSERT INTO invoice_items (id, invoice_id, description, quantity, unit_price, total_price, write_off_timing)
		 VALUES (?, ?, 'Subscription', 1, ?, ?, ?)`,
		uuid.New(), id, amount, amount, timing,
	).Error)
	return id
}

// RemainingVisits reads the counter of a subscription
func (tdb *TestDB) RemainingVisits(subscriptionID uuid.UUID) *int {
	tdb.t.Helper()
	var remaining *int
	require.NoError(tdb.t, tdb.DB.Raw(
		`SELECT remaining_visits FROM subscriptions WHERE id = ?`, subscriptionID,
	).Row().Scan(&remaining))
	return remaining
}

// ItemWriteOffStatus reads the write-off status of the single item of invoiceID
func (tdb *TestDB) ItemWriteOffStatus(invoiceID uuid.UUID) string {
	tdb.t.Helper()
	var status string
	require.NoError(tdb.t, tdb.DB.Raw(
		`SELECT write_off_status FROM invoice_items WHERE invoice_id = ?`, invoiceID,
	).Row().Scan(&status))
	return status
}
