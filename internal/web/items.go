package web

import (
	"log/slog"
	"net/http"

	"github.com/siriwat/lostfound/internal/model"
	"github.com/siriwat/lostfound/internal/view"
)

type itemDetailPageData struct {
	PageData
	Item               model.Item
	AnnCount           int
	LatestAnnouncement *model.Announcement
}

// ItemDetailPage handles GET /items/{id}.
func (s *Server) ItemDetailPage(w http.ResponseWriter, r *http.Request) {
	item, ok := s.Registry.GetItem(r.PathValue("id"))
	if !ok {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}

	anns := s.Registry.Announcements()
	data := &itemDetailPageData{
		PageData: s.pageData(r, item.Title),
		Item:     item,
		AnnCount: view.AnnCounts(anns)[item.ID],
	}
	if latest, ok := view.LatestByItem(anns)[item.ID]; ok {
		data.LatestAnnouncement = &latest
	}
	s.Templates.Render(w, "item_detail.html", data)
}

// ItemEditSubmit handles POST /items/{id}: the full-record edit form. It
// rewrites any field and bypasses the guided transitions.
func (s *Server) ItemEditSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	current, ok := s.Registry.GetItem(id)
	if !ok {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}

	current.Title = r.FormValue("title")
	current.Category = r.FormValue("category")
	current.Description = r.FormValue("description")
	current.LocationFound = r.FormValue("location_found")
	current.DateFound = r.FormValue("date_found")
	current.StorageLocation = r.FormValue("storage_location")
	current.ImageURL = r.FormValue("image_url")
	current.Status = r.FormValue("status")
	current.ShelfCode = r.FormValue("shelf_code")
	current.Claimer = r.FormValue("claimer")

	item, found, err := s.Registry.EditItem(current)
	if err != nil || !found {
		slog.Warn("failed to edit item", "id", id, "error", err)
		http.Redirect(w, r, "/items/"+id, http.StatusSeeOther)
		return
	}

	slog.Info("item edited", "id", item.ID, "status", item.Status)
	http.Redirect(w, r, "/items/"+id, http.StatusSeeOther)
}
