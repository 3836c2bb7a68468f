package web

import (
	"log/slog"
	"net/http"

	"github.com/siriwat/lostfound/internal/model"
	"github.com/siriwat/lostfound/internal/registry"
	"github.com/siriwat/lostfound/internal/store"
	"github.com/siriwat/lostfound/internal/view"
)

type consolePageData struct {
	PageData
	Items      []model.Item
	Total      int
	Categories []string
	AnnCounts  map[string]int
	Filter     view.Filter
	Prefs      store.Prefs
}

// ConsolePage handles GET /: the tabbed forms plus the filtered listing.
func (s *Server) ConsolePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := view.Filter{
		Query:    q.Get("q"),
		Status:   q.Get("status"),
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
	}

	prefs, err := store.GetPrefs(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to read preferences", "error", err)
	}

	allItems := s.Registry.Items()
	filtered := view.Apply(allItems, filter)

	s.Templates.Render(w, "console.html", &consolePageData{
		PageData:   s.pageData(r, "Lost & Found"),
		Items:      filtered,
		Total:      len(filtered),
		Categories: view.Categories(allItems),
		AnnCounts:  view.AnnCounts(s.Registry.Announcements()),
		Filter:     filter,
		Prefs:      prefs,
	})
}

// PrefsSubmit handles POST /prefs: the tab switch and collapse toggle.
func (s *Server) PrefsSubmit(w http.ResponseWriter, r *http.Request) {
	prefs := store.Prefs{
		FormTab:       r.FormValue("form_tab"),
		FormCollapsed: r.FormValue("form_collapsed") == "1",
	}
	if err := store.SetPrefs(r.Context(), s.DB, prefs); err != nil {
		slog.Error("failed to store preferences", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ItemCreateSubmit handles POST /items (the "new item" form).
func (s *Server) ItemCreateSubmit(w http.ResponseWriter, r *http.Request) {
	item, err := s.Registry.AddItem(registry.NewItemParams{
		Title:           r.FormValue("title"),
		Category:        r.FormValue("category"),
		Description:     r.FormValue("description"),
		LocationFound:   r.FormValue("location_found"),
		DateFound:       r.FormValue("date_found"),
		StorageLocation: r.FormValue("storage_location"),
		Reporter:        s.staffName(r),
		ImageURL:        r.FormValue("image_url"),
	})
	if err != nil {
		slog.Warn("failed to record item", "error", err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	slog.Info("item recorded", "id", item.ID, "title", item.Title, "reporter", item.Reporter)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandoverSubmit handles POST /items/handover (the finder-handover form).
func (s *Server) HandoverSubmit(w http.ResponseWriter, r *http.Request) {
	item, err := s.Registry.Handover(registry.HandoverParams{
		NewItemParams: registry.NewItemParams{
			Title:           r.FormValue("title"),
			Category:        r.FormValue("category"),
			Description:     r.FormValue("description"),
			LocationFound:   r.FormValue("location_found"),
			DateFound:       r.FormValue("date_found"),
			StorageLocation: r.FormValue("storage_location"),
			Reporter:        s.staffName(r),
			ImageURL:        r.FormValue("image_url"),
		},
		FinderName:    r.FormValue("finder_name"),
		FinderContact: r.FormValue("finder_contact"),
		FinderNote:    r.FormValue("finder_note"),
		StoreNow:      r.FormValue("store_now") == "1",
		ShelfCode:     r.FormValue("shelf_code"),
	})
	if err != nil {
		slog.Warn("failed to record handover", "error", err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	slog.Info("handover recorded", "id", item.ID, "title", item.Title, "finder", item.FinderName)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ItemStoreSubmit handles POST /items/{id}/store.
func (s *Server) ItemStoreSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	item, found, err := s.Registry.StoreItem(id, r.FormValue("shelf_code"), s.staffName(r))
	if err != nil || !found {
		slog.Warn("failed to store item", "id", id, "error", err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	slog.Info("item stored", "id", item.ID, "shelf", item.ShelfCode, "by", item.StoredBy)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ItemClaimSubmit handles POST /items/{id}/claim.
func (s *Server) ItemClaimSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	item, found, err := s.Registry.ClaimItem(id, r.FormValue("claimer"))
	if err != nil || !found {
		slog.Warn("failed to claim item", "id", id, "error", err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	slog.Info("item claimed", "id", item.ID, "claimer", item.Claimer)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ItemDeleteSubmit handles POST /items/{id}/delete.
func (s *Server) ItemDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	deleted, err := s.Registry.DeleteItem(id)
	if err != nil {
		slog.Error("failed to delete item", "id", id, "error", err)
	} else if deleted {
		slog.Info("item deleted", "id", id)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
