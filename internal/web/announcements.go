package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/siriwat/lostfound/internal/model"
	"github.com/siriwat/lostfound/internal/registry"
	"github.com/siriwat/lostfound/internal/view"
)

type announcementEntry struct {
	model.Announcement
	LinkedItem *model.Item
}

type announcementsPageData struct {
	PageData
	Announcements []announcementEntry
	Items         []model.Item
	Query         string
	PrefillItemID string
	PrefillTitle  string
	PrefillBody   string
}

// AnnouncementsPage handles GET /announcements. With ?item= the editor is
// prefilled from that item, matching the poster template.
func (s *Server) AnnouncementsPage(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	items := s.Registry.Items()

	entries := []announcementEntry{}
	for _, ann := range s.Registry.Announcements() {
		if query != "" && !strings.Contains(strings.ToLower(ann.Title+" "+ann.Body), query) {
			continue
		}
		entry := announcementEntry{Announcement: ann}
		if item, ok := view.ResolveItem(items, ann); ok {
			entry.LinkedItem = &item
		}
		entries = append(entries, entry)
	}

	data := &announcementsPageData{
		PageData:      s.pageData(r, "ประกาศ"),
		Announcements: entries,
		Items:         items,
		Query:         r.URL.Query().Get("q"),
	}

	if id := r.URL.Query().Get("item"); id != "" {
		if item, ok := s.Registry.GetItem(id); ok {
			data.PrefillItemID = item.ID
			data.PrefillTitle = "ประกาศตามหาเจ้าของ: " + item.Title
			data.PrefillBody = fmt.Sprintf("พบ %q เมื่อ %s บริเวณ %s.\nผู้ใดเป็นเจ้าของ โปรดติดต่อรับคืนที่ %s.",
				item.Title, item.DateFound, item.LocationFound, item.StorageLocation)
		}
	}

	s.Templates.Render(w, "announcements.html", data)
}

// AnnouncementCreateSubmit handles POST /announcements.
func (s *Server) AnnouncementCreateSubmit(w http.ResponseWriter, r *http.Request) {
	ann, err := s.Registry.AddAnnouncement(registry.AnnouncementParams{
		Title:     r.FormValue("title"),
		Body:      r.FormValue("body"),
		ItemID:    r.FormValue("item_id"),
		CreatedBy: s.staffName(r),
	})
	if err != nil {
		slog.Warn("failed to post announcement", "error", err)
		http.Redirect(w, r, "/announcements", http.StatusSeeOther)
		return
	}

	slog.Info("announcement posted", "id", ann.ID, "title", ann.Title, "item", ann.ItemID)
	http.Redirect(w, r, "/announcements", http.StatusSeeOther)
}

// AnnouncementUpdateSubmit handles POST /announcements/{id}: the board's
// edit form. Submitted fields replace prior values; an empty item unlinks.
func (s *Server) AnnouncementUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	title := r.FormValue("title")
	body := r.FormValue("body")
	itemID := r.FormValue("item_id")

	ann, found, err := s.Registry.PatchAnnouncement(id, registry.AnnouncementPatch{
		Title:  &title,
		Body:   &body,
		ItemID: &itemID,
	})
	if err != nil || !found {
		slog.Warn("failed to edit announcement", "id", id, "error", err)
		http.Redirect(w, r, "/announcements", http.StatusSeeOther)
		return
	}

	slog.Info("announcement edited", "id", ann.ID)
	http.Redirect(w, r, "/announcements", http.StatusSeeOther)
}

// AnnouncementDeleteSubmit handles POST /announcements/{id}/delete.
func (s *Server) AnnouncementDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	deleted, err := s.Registry.DeleteAnnouncement(id)
	if err != nil {
		slog.Error("failed to delete announcement", "id", id, "error", err)
	} else if deleted {
		slog.Info("announcement deleted", "id", id)
	}
	http.Redirect(w, r, "/announcements", http.StatusSeeOther)
}
