// Package testutil provides shared helpers for integration tests.
// Helpers in this package skip automatically when no database is available,
// so unit tests can run without Postgres.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	// DSNEnv names the variable holding the integration database URL.
	DSNEnv = "TEST_DATABASE_URL"
	// ContainerEnv, when "1", starts a throwaway Postgres container if DSNEnv is unset.
	ContainerEnv = "TEST_POSTGRES_CONTAINER"

	postgresImage = "postgres:17-alpine"
)

// EnsureDatabase makes TEST_DATABASE_URL point at a usable database.
// If it is already set nothing happens. Otherwise, when TEST_POSTGRES_CONTAINER=1,
// a Postgres container is started and its DSN exported.
// The returned stop function terminates that container and is always safe to call.
// Use it from TestMain before applying migrations.
func EnsureDatabase(ctx context.Context) (stop func(), err error) {
	stop = func() {}
	if os.Getenv(DSNEnv) != "" || os.Getenv(ContainerEnv) != "1" {
		return stop, nil
	}

	container, err := tcpostgres.Run(ctx, postgresImage,
		tcpostgres.WithDatabase("planner"),
		tcpostgres.WithUsername("planner"),
		tcpostgres.WithPassword("planner"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		return stop, fmt.Errorf("testutil.EnsureDatabase: start container: %w", err)
	}
	stop = func() { _ = testcontainers.TerminateContainer(container) }

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		stop()
		return func() {}, fmt.Errorf("testutil.EnsureDatabase: connection string: %w", err)
	}
	if err := os.Setenv(DSNEnv, dsn); err != nil {
		stop()
		return func() {}, fmt.Errorf("testutil.EnsureDatabase: export dsn: %w", err)
	}
	return stop, nil
}

// NewPool opens a *pgxpool.Pool connected to the database specified by the
// TEST_DATABASE_URL environment variable.
//
// The test is skipped automatically if TEST_DATABASE_URL is not set.
// The pool is closed automatically when the test (and all its subtests) finish.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := requireDSN(t)

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB opens a *sql.DB connected to TEST_DATABASE_URL using the pgx
// database/sql driver, for callers such as goose that need database/sql.
// The connection is closed automatically when the test finishes.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := OpenSQLDB(requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// OpenSQLDB opens and pings a *sql.DB for dsn.
// Callers are responsible for closing the returned *sql.DB.
func OpenSQLDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}

// requireDSN returns the TEST_DATABASE_URL environment variable value,
// skipping the test if it is not set.
func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skip(DSNEnv + " not set; skipping integration test")
	}
	return dsn
}
