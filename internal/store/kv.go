package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Persisted record keys. The collection and PIN keys are kept from the
// original console so existing exports stay recognizable.
const (
	keyItems         = "lf_items_v1"
	keyAnnouncements = "lf_anns_v1"
	keyPIN           = "lf_staff_pin_v1"
	keyFormTab       = "lf_form_tab"
	keyFormCollapsed = "lf_form_collapsed"
	keyJWTSecret     = "jwt_secret"
)

// getRecord reads a single record by key. The second return value reports
// whether the record exists.
func getRecord(ctx context.Context, db *sql.DB, key string) (string, bool, error) {
	var value string
	err := db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading record %q: %w", key, err)
	}
	return value, true, nil
}

// setRecord writes a single record, replacing any prior value.
func setRecord(ctx context.Context, db *sql.DB, key, value string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("writing record %q: %w", key, err)
	}
	return nil
}
