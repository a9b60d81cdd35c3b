package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/semainier/internal/db"
)

// NewTestDB opens a migrated in-memory SQLite database that closes itself
// when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW wraps the given test database in a real transactional UnitOfWork.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
