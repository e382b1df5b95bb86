package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id           SERIAL PRIMARY KEY,
    item_type    VARCHAR(20) NOT NULL,
    item_name    VARCHAR(100) NOT NULL,
    description  TEXT,
    location     VARCHAR(255) NOT NULL,
    contact_info VARCHAR(100) NOT NULL,
    image_path   TEXT,
    tag          VARCHAR(50),
    created_at   TIMESTAMP DEFAULT now()
);
`

// EnsureSchema creates the items table if it doesn't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
