package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/siriwat/lostfound/internal/model"
	"github.com/siriwat/lostfound/internal/registry"
	"github.com/siriwat/lostfound/internal/view"
)

// AnnouncementsHandler handles announcement endpoints.
type AnnouncementsHandler struct {
	Registry *registry.Registry
}

type createAnnouncementRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	ItemID string `json:"itemId"`
}

type announcementEntry struct {
	model.Announcement
	LinkedItem *linkedItem `json:"linkedItem,omitempty"`
}

// linkedItem is the slim resolved view of an announcement's item link.
type linkedItem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

type listAnnouncementsResponse struct {
	Announcements []announcementEntry `json:"announcements"`
	Total         int                 `json:"total"`
}

// List handles GET /api/announcements with optional q and itemId parameters.
// Item links are resolved per entry; dangling links come back unresolved.
func (h *AnnouncementsHandler) List(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	itemID := r.URL.Query().Get("itemId")

	items := h.Registry.Items()
	entries := []announcementEntry{}
	for _, ann := range h.Registry.Announcements() {
		if itemID != "" && ann.ItemID != itemID {
			continue
		}
		if query != "" {
			haystack := strings.ToLower(ann.Title + " " + ann.Body)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		entry := announcementEntry{Announcement: ann}
		if item, ok := view.ResolveItem(items, ann); ok {
			entry.LinkedItem = &linkedItem{ID: item.ID, Title: item.Title, Status: item.Status}
		}
		entries = append(entries, entry)
	}

	jsonResponse(w, http.StatusOK, listAnnouncementsResponse{
		Announcements: entries,
		Total:         len(entries),
	})
}

// Create handles POST /api/announcements.
func (h *AnnouncementsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAnnouncementRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ann, err := h.Registry.AddAnnouncement(registry.AnnouncementParams{
		Title:     req.Title,
		Body:      req.Body,
		ItemID:    req.ItemID,
		CreatedBy: staffName(r.Context()),
	})
	if err != nil {
		registryError(w, err)
		return
	}

	slog.Info("announcement posted", "id", ann.ID, "title", ann.Title, "item", ann.ItemID)
	jsonResponse(w, http.StatusCreated, ann)
}

// Patch handles PATCH /api/announcements/{id}. Absent fields keep their
// prior values; an empty itemId unlinks.
func (h *AnnouncementsHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var patch registry.AnnouncementPatch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ann, found, err := h.Registry.PatchAnnouncement(r.PathValue("id"), patch)
	if err != nil {
		registryError(w, err)
		return
	}
	if !found {
		jsonError(w, http.StatusNotFound, "announcement not found")
		return
	}

	slog.Info("announcement edited", "id", ann.ID)
	jsonResponse(w, http.StatusOK, ann)
}

// Delete handles DELETE /api/announcements/{id}.
func (h *AnnouncementsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	deleted, err := h.Registry.DeleteAnnouncement(id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete announcement")
		return
	}
	if !deleted {
		jsonError(w, http.StatusNotFound, "announcement not found")
		return
	}

	slog.Info("announcement deleted", "id", id)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "announcement deleted"})
}
