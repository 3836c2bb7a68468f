package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/siriwat/lostfound/internal/model"
	"github.com/siriwat/lostfound/internal/registry"
	"github.com/siriwat/lostfound/internal/view"
)

// ItemsHandler handles item endpoints.
type ItemsHandler struct {
	Registry *registry.Registry
}

type createItemRequest struct {
	Title           string `json:"title"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	LocationFound   string `json:"locationFound"`
	DateFound       string `json:"dateFound"`
	StorageLocation string `json:"storageLocation"`
	ImageURL        string `json:"imageUrl"`
}

type handoverRequest struct {
	createItemRequest
	FinderName    string `json:"finderName"`
	FinderContact string `json:"finderContact"`
	FinderNote    string `json:"finderNote"`
	StoreNow      bool   `json:"storeNow"`
	ShelfCode     string `json:"shelfCode"`
}

type storeItemRequest struct {
	ShelfCode string `json:"shelfCode"`
	StoredBy  string `json:"storedBy"`
}

type claimItemRequest struct {
	Claimer string `json:"claimer"`
}

type listItemsResponse struct {
	Items     []model.Item   `json:"items"`
	Total     int            `json:"total"`
	Pending   int            `json:"pending"`
	AnnCounts map[string]int `json:"annCounts"`
}

// List handles GET /api/items with q, status, category and sort parameters.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items := view.Apply(h.Registry.Items(), view.Filter{
		Query:    q.Get("q"),
		Status:   q.Get("status"),
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
	})
	if items == nil {
		items = []model.Item{}
	}

	jsonResponse(w, http.StatusOK, listItemsResponse{
		Items:     items,
		Total:     len(items),
		Pending:   h.Registry.PendingCount(),
		AnnCounts: view.AnnCounts(h.Registry.Announcements()),
	})
}

// Create handles POST /api/items (the "new item" action).
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Registry.AddItem(registry.NewItemParams{
		Title:           req.Title,
		Category:        req.Category,
		Description:     req.Description,
		LocationFound:   req.LocationFound,
		DateFound:       req.DateFound,
		StorageLocation: req.StorageLocation,
		Reporter:        staffName(r.Context()),
		ImageURL:        req.ImageURL,
	})
	if err != nil {
		registryError(w, err)
		return
	}

	slog.Info("item recorded", "id", item.ID, "title", item.Title, "reporter", item.Reporter)
	jsonResponse(w, http.StatusCreated, item)
}

// Handover handles POST /api/items/handover (the finder-handover action).
func (h *ItemsHandler) Handover(w http.ResponseWriter, r *http.Request) {
	var req handoverRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Registry.Handover(registry.HandoverParams{
		NewItemParams: registry.NewItemParams{
			Title:           req.Title,
			Category:        req.Category,
			Description:     req.Description,
			LocationFound:   req.LocationFound,
			DateFound:       req.DateFound,
			StorageLocation: req.StorageLocation,
			Reporter:        staffName(r.Context()),
			ImageURL:        req.ImageURL,
		},
		FinderName:    req.FinderName,
		FinderContact: req.FinderContact,
		FinderNote:    req.FinderNote,
		StoreNow:      req.StoreNow,
		ShelfCode:     req.ShelfCode,
	})
	if err != nil {
		registryError(w, err)
		return
	}

	slog.Info("handover recorded", "id", item.ID, "title", item.Title, "finder", item.FinderName, "stored", item.Status == model.StatusStored)
	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}, including the resolved announcement view.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	item, ok := h.Registry.GetItem(id)
	if !ok {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	anns := h.Registry.Announcements()
	resp := map[string]any{
		"item":     item,
		"annCount": view.AnnCounts(anns)[id],
	}
	if latest, ok := view.LatestByItem(anns)[id]; ok {
		resp["latestAnnouncement"] = latest
	}
	jsonResponse(w, http.StatusOK, resp)
}

// Store handles POST /api/items/{id}/store.
func (h *ItemsHandler) Store(w http.ResponseWriter, r *http.Request) {
	var req storeItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.StoredBy == "" {
		req.StoredBy = staffName(r.Context())
	}

	item, found, err := h.Registry.StoreItem(r.PathValue("id"), req.ShelfCode, req.StoredBy)
	if err != nil {
		if errors.Is(err, model.ErrInvalid) {
			jsonError(w, http.StatusBadRequest, "shelf code and storing staff required")
			return
		}
		registryError(w, err)
		return
	}
	if !found {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	slog.Info("item stored", "id", item.ID, "shelf", item.ShelfCode, "by", item.StoredBy)
	jsonResponse(w, http.StatusOK, item)
}

// Claim handles POST /api/items/{id}/claim.
func (h *ItemsHandler) Claim(w http.ResponseWriter, r *http.Request) {
	var req claimItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, found, err := h.Registry.ClaimItem(r.PathValue("id"), req.Claimer)
	if err != nil {
		if errors.Is(err, model.ErrInvalid) {
			jsonError(w, http.StatusBadRequest, "claimer name required")
			return
		}
		registryError(w, err)
		return
	}
	if !found {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	slog.Info("item claimed", "id", item.ID, "claimer", item.Claimer)
	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /api/items/{id}: a full-record replace that bypasses
// the guided state machine.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var updated model.Item
	if err := decodeJSON(r, &updated); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated.ID = r.PathValue("id")

	item, found, err := h.Registry.EditItem(updated)
	if err != nil {
		registryError(w, err)
		return
	}
	if !found {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	slog.Info("item edited", "id", item.ID, "status", item.Status)
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}. Linked announcements are left in
// place with a dangling reference.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	deleted, err := h.Registry.DeleteItem(id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}
	if !deleted {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	slog.Info("item deleted", "id", id)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}
