// Package dbtest starts a disposable Postgres for integration tests.
package dbtest

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/benx421/bank-transfers/internal/db"
)

// Start runs a Postgres container, applies the embedded migrations and returns
// a pool bound to it. The container is terminated on test cleanup.
func Start(t *testing.T) *db.DB {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("bank_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(context.Background()))
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	sqlDB, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	sqlDB.SetMaxOpenConns(20)
	require.NoError(t, sqlDB.PingContext(ctx))

	database := db.NewTestDB(sqlDB)
	require.NoError(t, database.Migrate())

	return database
}

// Truncate empties every table between tests.
func Truncate(t *testing.T, database *db.DB) {
	t.Helper()

	_, err := database.ExecContext(context.Background(),
		"TRUNCATE TABLE transfers, beneficiaries, accounts, users CASCADE")
	require.NoError(t, err)
}
