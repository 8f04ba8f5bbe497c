package postgres

import (
	"database/sql"
	"os"
	"testing"

	"Inkwell/internal/db/migrations"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to the database named by TEST_DATABASE_URL, runs the
// migrations, and truncates all tables. Tests are skipped when the variable
// is unset so the suite passes without a local postgres.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database tests")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err, "Failed to connect to test database")
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	require.NoError(t, db.Ping(), "Failed to ping test database")

	goose.SetBaseFS(migrations.FS)
	require.NoError(t, goose.SetDialect("postgres"), "Failed to set goose dialect")
	require.NoError(t, goose.Up(db, "."), "Failed to run migrations")

	_, err = db.Exec(`TRUNCATE comments, posts, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "Failed to truncate tables")

	return db
}
