// Package registry owns the in-memory item and announcement collections and
// implements their transition rules. Persistence is an injected side-effect
// hook invoked after every committed mutation; the registry itself never
// touches the database.
package registry

import (
	"strings"
	"sync"
	"time"

	"github.com/siriwat/lostfound/internal/model"
)

// SaveItemsFunc persists the full item collection after a mutation.
type SaveItemsFunc func([]model.Item) error

// SaveAnnouncementsFunc persists the full announcement collection.
type SaveAnnouncementsFunc func([]model.Announcement) error

// Options configure a Registry. Zero-value hooks are no-ops; Now and NewID
// default to the wall clock and random IDs and exist for tests.
type Options struct {
	SaveItems         SaveItemsFunc
	SaveAnnouncements SaveAnnouncementsFunc
	Now               func() time.Time
	NewID             func() string
}

// Registry is the application state: both collections plus the persistence
// hooks. All mutations go through its methods. A mutex guards the
// collections because the HTTP surfaces call in concurrently, even though
// the domain itself has a single writer.
type Registry struct {
	mu    sync.Mutex
	items []model.Item
	anns  []model.Announcement

	saveItems SaveItemsFunc
	saveAnns  SaveAnnouncementsFunc
	now       func() time.Time
	newID     func() string
}

// New creates a Registry seeded with the loaded collections.
func New(items []model.Item, anns []model.Announcement, opts Options) *Registry {
	r := &Registry{
		items:     items,
		anns:      anns,
		saveItems: opts.SaveItems,
		saveAnns:  opts.SaveAnnouncements,
		now:       opts.Now,
		newID:     opts.NewID,
	}
	if r.saveItems == nil {
		r.saveItems = func([]model.Item) error { return nil }
	}
	if r.saveAnns == nil {
		r.saveAnns = func([]model.Announcement) error { return nil }
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.newID == nil {
		r.newID = model.NewID
	}
	return r
}

// Items returns a snapshot of the item collection, newest first.
func (r *Registry) Items() []model.Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Item, len(r.items))
	copy(out, r.items)
	return out
}

// Announcements returns a snapshot of the announcement collection, newest first.
func (r *Registry) Announcements() []model.Announcement {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Announcement, len(r.anns))
	copy(out, r.anns)
	return out
}

// GetItem returns the item with the given id.
func (r *Registry) GetItem(id string) (model.Item, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

// GetAnnouncement returns the announcement with the given id.
func (r *Registry) GetAnnouncement(id string) (model.Announcement, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.anns {
		if a.ID == id {
			return a, true
		}
	}
	return model.Announcement{}, false
}

// PendingCount returns the number of items not yet claimed.
func (r *Registry) PendingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, it := range r.items {
		if it.Status != model.StatusClaimed {
			n++
		}
	}
	return n
}

// NewItemParams are the caller-supplied fields for the "new item" action.
type NewItemParams struct {
	Title           string
	Category        string
	Description     string
	LocationFound   string
	DateFound       string // defaults to the current date
	StorageLocation string
	Reporter        string // defaults to "staff"
	ImageURL        string
}

// AddItem records a newly found item with status FOUND.
func (r *Registry) AddItem(p NewItemParams) (model.Item, error) {
	item := model.Item{
		ID:              r.newID(),
		Title:           strings.TrimSpace(p.Title),
		Category:        strings.TrimSpace(p.Category),
		Description:     strings.TrimSpace(p.Description),
		LocationFound:   strings.TrimSpace(p.LocationFound),
		DateFound:       strings.TrimSpace(p.DateFound),
		StorageLocation: strings.TrimSpace(p.StorageLocation),
		Reporter:        strings.TrimSpace(p.Reporter),
		ImageURL:        strings.TrimSpace(p.ImageURL),
		Status:          model.StatusFound,
	}
	if item.DateFound == "" {
		item.DateFound = model.Today(r.now())
	}
	if item.Reporter == "" {
		item.Reporter = "staff"
	}
	if err := item.Validate(); err != nil {
		return model.Item{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.Item{item}, r.items...)
	return item, r.saveItems(r.items)
}

// HandoverParams are the fields for the finder-handover action.
type HandoverParams struct {
	NewItemParams
	FinderName    string
	FinderContact string
	FinderNote    string
	StoreNow      bool
	ShelfCode     string // optional, used only with StoreNow
}

// Handover records an item handed in by its finder. The handover date is
// always the current date; with StoreNow the item is stored in the same
// operation (shelf code optional on this path, unlike the guided Store).
func (r *Registry) Handover(p HandoverParams) (model.Item, error) {
	if strings.TrimSpace(p.FinderName) == "" {
		return model.Item{}, model.ErrInvalid
	}

	today := model.Today(r.now())
	item := model.Item{
		ID:              r.newID(),
		Title:           strings.TrimSpace(p.Title),
		Category:        strings.TrimSpace(p.Category),
		Description:     strings.TrimSpace(p.Description),
		LocationFound:   strings.TrimSpace(p.LocationFound),
		DateFound:       strings.TrimSpace(p.DateFound),
		StorageLocation: strings.TrimSpace(p.StorageLocation),
		Reporter:        strings.TrimSpace(p.Reporter),
		ImageURL:        strings.TrimSpace(p.ImageURL),
		Status:          model.StatusFound,
		FinderName:      strings.TrimSpace(p.FinderName),
		FinderContact:   strings.TrimSpace(p.FinderContact),
		FinderNote:      strings.TrimSpace(p.FinderNote),
		DateHandover:    today,
	}
	if item.DateFound == "" {
		item.DateFound = today
	}
	if item.Reporter == "" {
		item.Reporter = "staff"
	}
	if err := item.Validate(); err != nil {
		return model.Item{}, err
	}

	if p.StoreNow {
		item.Status = model.StatusStored
		item.ShelfCode = strings.TrimSpace(p.ShelfCode)
		item.DateStored = today
		item.StoredBy = item.Reporter
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.Item{item}, r.items...)
	return item, r.saveItems(r.items)
}

// StoreItem moves an item into custody at a shelf location. Unknown ids are
// a no-op (found=false). Shelf code and the storing staff name are required.
func (r *Registry) StoreItem(id, shelfCode, storedBy string) (model.Item, bool, error) {
	shelfCode = strings.TrimSpace(shelfCode)
	storedBy = strings.TrimSpace(storedBy)
	if shelfCode == "" || storedBy == "" {
		return model.Item{}, false, model.ErrInvalid
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for idx := range r.items {
		if r.items[idx].ID != id {
			continue
		}
		r.items[idx].Status = model.StatusStored
		r.items[idx].ShelfCode = shelfCode
		r.items[idx].DateStored = model.Today(r.now())
		r.items[idx].StoredBy = storedBy
		return r.items[idx], true, r.saveItems(r.items)
	}
	return model.Item{}, false, nil
}

// ClaimItem marks an item as returned to its owner. Unknown ids are a no-op.
func (r *Registry) ClaimItem(id, claimer string) (model.Item, bool, error) {
	claimer = strings.TrimSpace(claimer)
	if claimer == "" {
		return model.Item{}, false, model.ErrInvalid
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for idx := range r.items {
		if r.items[idx].ID != id {
			continue
		}
		r.items[idx].Status = model.StatusClaimed
		r.items[idx].Claimer = claimer
		r.items[idx].DateClaimed = model.Today(r.now())
		return r.items[idx], true, r.saveItems(r.items)
	}
	return model.Item{}, false, nil
}

// EditItem replaces the full record with the same id. Edit bypasses the
// guided state machine: any status/field combination passes as long as the
// create precondition holds, so data can be corrected freely.
func (r *Registry) EditItem(updated model.Item) (model.Item, bool, error) {
	if err := updated.Validate(); err != nil {
		return model.Item{}, false, err
	}
	if updated.Status == "" {
		updated.Status = model.StatusFound
	}
	if !model.ValidStatus(updated.Status) {
		return model.Item{}, false, model.ErrInvalid
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for idx := range r.items {
		if r.items[idx].ID != updated.ID {
			continue
		}
		r.items[idx] = updated
		return updated, true, r.saveItems(r.items)
	}
	return model.Item{}, false, nil
}

// DeleteItem removes an item. Announcements referencing it are left alone;
// their links dangle and resolve as unlinked.
func (r *Registry) DeleteItem(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for idx := range r.items {
		if r.items[idx].ID != id {
			continue
		}
		r.items = append(r.items[:idx], r.items[idx+1:]...)
		return true, r.saveItems(r.items)
	}
	return false, nil
}

// AnnouncementParams are the caller-supplied fields for a new announcement.
type AnnouncementParams struct {
	Title     string
	Body      string
	ItemID    string // optional; existence is not checked
	CreatedBy string // defaults to "staff"
}

// AddAnnouncement posts a new announcement. The optional item link is not
// checked for existence: items can be deleted later anyway, so dangling
// links are expected.
func (r *Registry) AddAnnouncement(p AnnouncementParams) (model.Announcement, error) {
	ann := model.Announcement{
		ID:        r.newID(),
		Title:     strings.TrimSpace(p.Title),
		Body:      strings.TrimSpace(p.Body),
		CreatedAt: r.now(),
		CreatedBy: strings.TrimSpace(p.CreatedBy),
		ItemID:    p.ItemID,
	}
	if ann.CreatedBy == "" {
		ann.CreatedBy = "staff"
	}
	if err := ann.Validate(); err != nil {
		return model.Announcement{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.anns = append([]model.Announcement{ann}, r.anns...)
	return ann, r.saveAnns(r.anns)
}

// AnnouncementPatch is a partial update; nil fields retain prior values.
type AnnouncementPatch struct {
	Title  *string `json:"title"`
	Body   *string `json:"body"`
	ItemID *string `json:"itemId"` // empty string unlinks
}

// PatchAnnouncement merges a partial record into the announcement with the
// given id. Unknown ids are a no-op.
func (r *Registry) PatchAnnouncement(id string, patch AnnouncementPatch) (model.Announcement, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for idx := range r.anns {
		if r.anns[idx].ID != id {
			continue
		}
		if patch.Title != nil {
			r.anns[idx].Title = strings.TrimSpace(*patch.Title)
		}
		if patch.Body != nil {
			r.anns[idx].Body = strings.TrimSpace(*patch.Body)
		}
		if patch.ItemID != nil {
			r.anns[idx].ItemID = *patch.ItemID
		}
		return r.anns[idx], true, r.saveAnns(r.anns)
	}
	return model.Announcement{}, false, nil
}

// DeleteAnnouncement removes an announcement.
func (r *Registry) DeleteAnnouncement(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for idx := range r.anns {
		if r.anns[idx].ID != id {
			continue
		}
		r.anns = append(r.anns[:idx], r.anns[idx+1:]...)
		return true, r.saveAnns(r.anns)
	}
	return false, nil
}
