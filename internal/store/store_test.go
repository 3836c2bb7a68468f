package store

import (
	"context"
	"testing"
	"time"

	"github.com/siriwat/lostfound/internal/db"
	"github.com/siriwat/lostfound/internal/model"
)

func TestSaveAndLoadItems(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	items := []model.Item{
		{ID: "b", Title: "Umbrella", Category: "ทั่วไป", LocationFound: "Lobby", StorageLocation: "Front Desk", DateFound: "2026-08-30", Reporter: "staff", Status: model.StatusFound},
		{ID: "a", Title: "Wallet", Category: "เอกสาร/กระเป๋า", LocationFound: "Hall", StorageLocation: "Front Desk", DateFound: "2026-08-29", Reporter: "staff", Status: model.StatusStored, ShelfCode: "A-1", DateStored: "2026-08-29", StoredBy: "staff"},
	}
	if err := SaveItems(ctx, database, items); err != nil {
		t.Fatalf("SaveItems: %v", err)
	}

	loaded, err := LoadItems(ctx, database)
	if err != nil {
		t.Fatalf("LoadItems: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 items, got %d", len(loaded))
	}
	// Order is part of the record (newest first).
	if loaded[0].ID != "b" || loaded[1].ID != "a" {
		t.Errorf("expected order [b a], got [%s %s]", loaded[0].ID, loaded[1].ID)
	}
	if loaded[1].ShelfCode != "A-1" {
		t.Errorf("expected shelf code A-1, got %q", loaded[1].ShelfCode)
	}
}

func TestLoadItemsMissingRecord(t *testing.T) {
	database := db.NewTestDB(t)

	items, err := LoadItems(context.Background(), database)
	if err != nil {
		t.Fatalf("LoadItems: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("expected empty collection on fresh database, got %v", items)
	}
}

func TestLoadItemsCorruptRecord(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := setRecord(ctx, database, keyItems, "{not json"); err != nil {
		t.Fatal(err)
	}

	items, err := LoadItems(ctx, database)
	if err != nil {
		t.Fatalf("expected silent recovery, got error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty collection after corrupt record, got %d items", len(items))
	}
}

func TestSaveAndLoadAnnouncements(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	anns := []model.Announcement{
		{ID: "x", Title: "Found: Wallet", Body: "Contact the front desk.", CreatedAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC), CreatedBy: "staff", ItemID: "a"},
	}
	if err := SaveAnnouncements(ctx, database, anns); err != nil {
		t.Fatalf("SaveAnnouncements: %v", err)
	}

	loaded, err := LoadAnnouncements(ctx, database)
	if err != nil {
		t.Fatalf("LoadAnnouncements: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 announcement, got %d", len(loaded))
	}
	if loaded[0].ItemID != "a" {
		t.Errorf("expected linked item 'a', got %q", loaded[0].ItemID)
	}
	if !loaded[0].CreatedAt.Equal(anns[0].CreatedAt) {
		t.Errorf("expected createdAt %v, got %v", anns[0].CreatedAt, loaded[0].CreatedAt)
	}
}

func TestLoadAnnouncementsCorruptRecord(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := setRecord(ctx, database, keyAnnouncements, "42"); err != nil {
		t.Fatal(err)
	}

	anns, err := LoadAnnouncements(ctx, database)
	if err != nil {
		t.Fatalf("expected silent recovery, got error: %v", err)
	}
	if len(anns) != 0 {
		t.Errorf("expected empty collection after corrupt record, got %d", len(anns))
	}
}

func TestPIN(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, ok, err := GetPIN(ctx, database)
	if err != nil {
		t.Fatalf("GetPIN: %v", err)
	}
	if ok {
		t.Fatal("expected no PIN on fresh database")
	}

	if err := SetPIN(ctx, database, "1234"); err != nil {
		t.Fatalf("SetPIN: %v", err)
	}

	pin, ok, err := GetPIN(ctx, database)
	if err != nil {
		t.Fatalf("GetPIN: %v", err)
	}
	if !ok || pin != "1234" {
		t.Errorf("expected PIN '1234', got %q (set=%v)", pin, ok)
	}
}

func TestPrefsRoundTrip(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// Defaults on fresh database.
	p, err := GetPrefs(ctx, database)
	if err != nil {
		t.Fatalf("GetPrefs: %v", err)
	}
	if p.FormTab != TabNew || p.FormCollapsed {
		t.Errorf("unexpected defaults: %+v", p)
	}

	if err := SetPrefs(ctx, database, Prefs{FormTab: TabAnnounce, FormCollapsed: true}); err != nil {
		t.Fatalf("SetPrefs: %v", err)
	}

	p, err = GetPrefs(ctx, database)
	if err != nil {
		t.Fatalf("GetPrefs: %v", err)
	}
	if p.FormTab != TabAnnounce || !p.FormCollapsed {
		t.Errorf("expected {announce true}, got %+v", p)
	}

	// Unknown tab values fall back to the default.
	if err := SetPrefs(ctx, database, Prefs{FormTab: "bogus"}); err != nil {
		t.Fatalf("SetPrefs: %v", err)
	}
	p, _ = GetPrefs(ctx, database)
	if p.FormTab != TabNew {
		t.Errorf("expected fallback tab %q, got %q", TabNew, p.FormTab)
	}
}

func TestGetJWTSecret_GeneratesAndPersists(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// First call should generate a secret.
	secret1, err := GetJWTSecret(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	if len(secret1) != 64 { // 32 bytes = 64 hex chars
		t.Fatalf("expected 64 hex chars, got %d", len(secret1))
	}

	// Second call should return the same secret.
	secret2, err := GetJWTSecret(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	if secret1 != secret2 {
		t.Fatalf("expected same secret, got %q and %q", secret1, secret2)
	}
}
