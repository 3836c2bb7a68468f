// Package view computes derived views over the item and announcement
// collections: filtered/sorted listings, per-item announcement counts and
// latest announcements, and the category list. Everything here is a pure
// function of its inputs and is recomputed on demand; the collections are
// small enough that caching would only add state.
package view

import (
	"sort"
	"strings"

	"github.com/siriwat/lostfound/internal/model"
)

// Filter wildcard and sort orders.
const (
	All = "ALL"

	SortNewest = "NEWEST"
	SortOldest = "OLDEST"
)

// Filter selects and orders items. Zero values mean "no restriction" for
// Query and All-equivalent for Status/Category; Sort defaults to newest
// first.
type Filter struct {
	Query    string
	Status   string
	Category string
	Sort     string
}

// Apply returns the items matching f, sorted by dateFound. A free-text query
// matches when it appears case-insensitively in the concatenation of title,
// description, location found, storage location and category. Status and
// category must match exactly unless set to ALL. All predicates AND together.
func Apply(items []model.Item, f Filter) []model.Item {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	var out []model.Item
	for _, it := range items {
		if query != "" {
			haystack := strings.ToLower(strings.Join([]string{
				it.Title, it.Description, it.LocationFound, it.StorageLocation, it.Category,
			}, " "))
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		if f.Status != "" && f.Status != All && it.Status != f.Status {
			continue
		}
		if f.Category != "" && f.Category != All && it.Category != f.Category {
			continue
		}
		out = append(out, it)
	}

	oldest := f.Sort == SortOldest
	sort.SliceStable(out, func(i, j int) bool {
		if oldest {
			return out[i].DateFound < out[j].DateFound
		}
		return out[i].DateFound > out[j].DateFound
	})
	return out
}

// Categories returns the distinct non-empty categories in first-appearance
// order.
func Categories(items []model.Item) []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range items {
		if it.Category == "" || seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		out = append(out, it.Category)
	}
	return out
}

// AnnCounts returns the number of announcements linked to each item id.
// Unlinked announcements are not counted.
func AnnCounts(anns []model.Announcement) map[string]int {
	counts := make(map[string]int)
	for _, a := range anns {
		if a.ItemID != "" {
			counts[a.ItemID]++
		}
	}
	return counts
}

// LatestByItem returns, per linked item id, the announcement with the
// greatest creation timestamp. On equal timestamps the first one encountered
// wins; the collection is ordered newest-first, so ties resolve
// deterministically to the most recently inserted announcement.
func LatestByItem(anns []model.Announcement) map[string]model.Announcement {
	latest := make(map[string]model.Announcement)
	for _, a := range anns {
		if a.ItemID == "" {
			continue
		}
		prev, ok := latest[a.ItemID]
		if !ok || a.CreatedAt.After(prev.CreatedAt) {
			latest[a.ItemID] = a
		}
	}
	return latest
}

// ResolveItem looks up the item an announcement links to. A dangling or
// absent link resolves to nothing.
func ResolveItem(items []model.Item, a model.Announcement) (model.Item, bool) {
	if a.ItemID == "" {
		return model.Item{}, false
	}
	for _, it := range items {
		if it.ID == a.ItemID {
			return it, true
		}
	}
	return model.Item{}, false
}
