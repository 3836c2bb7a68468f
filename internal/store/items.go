package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/siriwat/lostfound/internal/model"
)

// LoadItems reads the item collection. A missing record means a fresh
// install and an unparseable one is treated as empty: the domain tolerates
// starting over, so corruption is recovered silently (logged at WARN).
func LoadItems(ctx context.Context, db *sql.DB) ([]model.Item, error) {
	raw, ok, err := getRecord(ctx, db, keyItems)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Item{}, nil
	}

	var items []model.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		slog.Warn("item record unparseable, starting empty", "error", err)
		return []model.Item{}, nil
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// SaveItems replaces the persisted item collection with items, preserving
// slice order (newest first).
func SaveItems(ctx context.Context, db *sql.DB, items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding items: %w", err)
	}
	return setRecord(ctx, db, keyItems, string(raw))
}
