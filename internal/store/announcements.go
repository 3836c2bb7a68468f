package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/siriwat/lostfound/internal/model"
)

// LoadAnnouncements reads the announcement collection, with the same
// missing/corrupt handling as LoadItems.
func LoadAnnouncements(ctx context.Context, db *sql.DB) ([]model.Announcement, error) {
	raw, ok, err := getRecord(ctx, db, keyAnnouncements)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Announcement{}, nil
	}

	var anns []model.Announcement
	if err := json.Unmarshal([]byte(raw), &anns); err != nil {
		slog.Warn("announcement record unparseable, starting empty", "error", err)
		return []model.Announcement{}, nil
	}
	if anns == nil {
		anns = []model.Announcement{}
	}
	return anns, nil
}

// SaveAnnouncements replaces the persisted announcement collection.
func SaveAnnouncements(ctx context.Context, db *sql.DB, anns []model.Announcement) error {
	if anns == nil {
		anns = []model.Announcement{}
	}
	raw, err := json.Marshal(anns)
	if err != nil {
		return fmt.Errorf("encoding announcements: %w", err)
	}
	return setRecord(ctx, db, keyAnnouncements, string(raw))
}
