package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
)

// GetPIN returns the stored staff PIN. The second return value reports
// whether a PIN has been set yet. The PIN is a plain string compared
// byte-for-byte by the caller; it gates the console but is not a security
// mechanism.
func GetPIN(ctx context.Context, db *sql.DB) (string, bool, error) {
	return getRecord(ctx, db, keyPIN)
}

// SetPIN stores the staff PIN.
func SetPIN(ctx context.Context, db *sql.DB, pin string) error {
	return setRecord(ctx, db, keyPIN, pin)
}

// GetJWTSecret retrieves the session-token secret from the database.
// If no secret exists, it generates one, stores it, and returns it.
// Uses INSERT OR IGNORE + re-SELECT to avoid TOCTOU race on concurrent startup.
func GetJWTSecret(ctx context.Context, db *sql.DB) (string, error) {
	// Try to generate and insert first (safe against races).
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating jwt secret: %w", err)
	}
	candidate := hex.EncodeToString(buf)

	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO kv (key, value) VALUES (?, ?)`,
		keyJWTSecret, candidate,
	)
	if err != nil {
		return "", fmt.Errorf("storing jwt_secret: %w", err)
	}

	// Always read back (either our insert or the existing value).
	var secret string
	err = db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, keyJWTSecret,
	).Scan(&secret)
	if err != nil {
		return "", fmt.Errorf("querying jwt_secret: %w", err)
	}

	return secret, nil
}
