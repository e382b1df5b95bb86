package db

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// testSchema mirrors the production schema in SQLite dialect so store
// functions can be exercised against an in-memory database.
const testSchema = `
CREATE TABLE IF NOT EXISTS items (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    item_type    TEXT NOT NULL,
    item_name    TEXT NOT NULL,
    description  TEXT,
    location     TEXT NOT NULL,
    contact_info TEXT NOT NULL,
    image_path   TEXT,
    tag          TEXT,
    created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// NewTestDB creates a fresh in-memory SQLite database with the schema applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if _, err := db.Exec(testSchema); err != nil {
		db.Close()
		t.Fatalf("creating test database schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return db
}
