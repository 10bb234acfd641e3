package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pkordes/studiobook/backend/testutil"
)

// TestMain applies all pending migrations to the test database once, before
// any test in the package runs, so individual tests never think about schema
// state. Without TEST_DATABASE_URL every test skips itself via testutil.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		os.Exit(m.Run())
	}

	db := testutil.MustOpenSQLDB(dsn)
	if err := testutil.MigrateUp(context.Background(), db); err != nil {
		db.Close()
		log.Fatalf("TestMain: %v", err)
	}
	db.Close()

	os.Exit(m.Run())
}
