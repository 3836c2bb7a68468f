package view

import (
	"testing"
	"time"

	"github.com/siriwat/lostfound/internal/model"
)

func testItems() []model.Item {
	return []model.Item{
		{ID: "1", Title: "iPhone 13", Category: "Electronics", Description: "black case", LocationFound: "Library", StorageLocation: "Front Desk", DateFound: "2026-08-30", Status: model.StatusFound},
		{ID: "2", Title: "Wallet", Category: "Documents", Description: "brown leather", LocationFound: "Hall A", StorageLocation: "Admin Office", DateFound: "2026-08-28", Status: model.StatusStored},
		{ID: "3", Title: "Headphones", Category: "Electronics", Description: "wireless phone accessory", LocationFound: "Gym", StorageLocation: "Front Desk", DateFound: "2026-08-29", Status: model.StatusClaimed},
	}
}

func ids(items []model.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestApplyQueryAndCategory(t *testing.T) {
	// Query "phone" with category Electronics: both predicates must hold.
	got := Apply(testItems(), Filter{Query: "phone", Category: "Electronics"})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d: %v", len(got), ids(got))
	}
	for _, it := range got {
		if it.Category != "Electronics" {
			t.Errorf("category filter leaked %q", it.Category)
		}
	}
}

func TestApplyQueryCaseInsensitive(t *testing.T) {
	got := Apply(testItems(), Filter{Query: "WALLET"})
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("expected case-insensitive match on item 2, got %v", ids(got))
	}

	// Query also searches location and storage fields.
	got = Apply(testItems(), Filter{Query: "admin office"})
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("expected storage-location match, got %v", ids(got))
	}
}

func TestApplyStatusFilter(t *testing.T) {
	got := Apply(testItems(), Filter{Status: model.StatusClaimed})
	if len(got) != 1 || got[0].ID != "3" {
		t.Errorf("expected only the claimed item, got %v", ids(got))
	}

	got = Apply(testItems(), Filter{Status: All})
	if len(got) != 3 {
		t.Errorf("ALL must not filter, got %v", ids(got))
	}
}

func TestApplySort(t *testing.T) {
	got := Apply(testItems(), Filter{})
	want := []string{"1", "3", "2"} // newest first by default
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("newest-first order: expected %v, got %v", want, ids(got))
		}
	}

	got = Apply(testItems(), Filter{Sort: SortOldest})
	want = []string{"2", "3", "1"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("oldest-first order: expected %v, got %v", want, ids(got))
		}
	}
}

func TestCategories(t *testing.T) {
	items := append(testItems(), model.Item{ID: "4", Title: "x", Category: ""})
	got := Categories(items)
	if len(got) != 2 || got[0] != "Electronics" || got[1] != "Documents" {
		t.Errorf("expected [Electronics Documents], got %v", got)
	}
}

func annAt(id, itemID string, at time.Time) model.Announcement {
	return model.Announcement{ID: id, Title: "t", Body: "b", ItemID: itemID, CreatedAt: at}
}

func TestAnnCounts(t *testing.T) {
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	anns := []model.Announcement{
		annAt("a3", "item1", base.Add(2*time.Hour)),
		annAt("a2", "item1", base.Add(time.Hour)),
		annAt("a1", "item2", base),
		{ID: "a0", Title: "t", Body: "b", CreatedAt: base}, // unlinked
	}

	counts := AnnCounts(anns)
	if counts["item1"] != 2 || counts["item2"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
	if _, ok := counts[""]; ok {
		t.Error("unlinked announcements must not be counted")
	}
}

func TestLatestByItem(t *testing.T) {
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	anns := []model.Announcement{
		annAt("a3", "item1", base.Add(time.Hour)),
		annAt("a2", "item1", base.Add(2*time.Hour)),
		annAt("a1", "item2", base),
	}

	latest := LatestByItem(anns)
	if latest["item1"].ID != "a2" {
		t.Errorf("expected a2 (max createdAt), got %q", latest["item1"].ID)
	}
	if latest["item2"].ID != "a1" {
		t.Errorf("expected a1, got %q", latest["item2"].ID)
	}
}

func TestLatestByItemTieBreak(t *testing.T) {
	at := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	// Newest-first collection order; equal timestamps resolve to the first
	// encountered, i.e. the most recently inserted.
	anns := []model.Announcement{
		annAt("newer", "item1", at),
		annAt("older", "item1", at),
	}

	latest := LatestByItem(anns)
	if latest["item1"].ID != "newer" {
		t.Errorf("tie must resolve to the most recently inserted, got %q", latest["item1"].ID)
	}
}

func TestResolveItemDangling(t *testing.T) {
	items := testItems()
	at := time.Now()

	if _, ok := ResolveItem(items, annAt("a", "1", at)); !ok {
		t.Error("expected link to resolve")
	}
	if _, ok := ResolveItem(items, annAt("a", "deleted", at)); ok {
		t.Error("dangling link must resolve to nothing")
	}
	if _, ok := ResolveItem(items, model.Announcement{ID: "a"}); ok {
		t.Error("absent link must resolve to nothing")
	}
}
