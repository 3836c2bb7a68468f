package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. The console persists its state as a
// handful of independent records in one key-value table: the item and
// announcement collections (each a whole JSON array), the staff PIN, the
// UI preference flags, and the session-token secret.
const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates the schema if it doesn't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
