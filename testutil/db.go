// Package testutil provides shared helpers for integration tests.
// Helpers in this package skip automatically when required environment
// variables are not set, so unit tests can run without a database or Redis.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql

	"github.com/pkordes/studiobook/backend/migrations"
)

// NewPool opens a *pgxpool.Pool connected to TEST_DATABASE_URL.
// The test is skipped if the variable is not set. The pool is closed when the
// test (and all its subtests) finish.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := requireEnv(t, "TEST_DATABASE_URL")

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

// NewSQLDB opens a *sql.DB on TEST_DATABASE_URL through the pgx database/sql
// driver, for code that needs database/sql (goose).
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := openSQLDB(requireEnv(t, "TEST_DATABASE_URL"))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// MustOpenSQLDB opens a *sql.DB for the given DSN and panics on any error.
// Use this in TestMain functions where no *testing.T is available.
// Callers are responsible for closing the returned *sql.DB.
func MustOpenSQLDB(dsn string) *sql.DB {
	db, err := openSQLDB(dsn)
	if err != nil {
		panic("testutil.MustOpenSQLDB: " + err.Error())
	}
	return db
}

// MigrateUp applies every pending migration embedded in migrations.FS.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	_, err := migrations.Up(ctx, db)
	return err
}

// NewRedis returns a client for TEST_REDIS_URL (a redis:// URL), skipping the
// test when unset. The selected database is flushed before and after the test.
func NewRedis(t *testing.T) *redis.Client {
	t.Helper()

	opts, err := redis.ParseURL(requireEnv(t, "TEST_REDIS_URL"))
	if err != nil {
		t.Fatalf("testutil.NewRedis: parse url: %v", err)
	}
	client := redis.NewClient(opts)

	ctx := context.Background()
	if err := client.FlushDB(ctx).Err(); err != nil {
		client.Close()
		t.Fatalf("testutil.NewRedis: flush: %v", err)
	}

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		client.Close()
	})
	return client
}

func openSQLDB(dsn string) (*sql.DB, error) {
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

// requireEnv returns the named environment variable, skipping the test if it
// is not set.
func requireEnv(t *testing.T, key string) string {
	t.Helper()
	v := os.Getenv(key)
	if v == "" {
		t.Skipf("%s not set; skipping integration test", key)
	}
	return v
}
