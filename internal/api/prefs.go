package api

import (
	"database/sql"
	"net/http"

	"github.com/siriwat/lostfound/internal/store"
)

// PrefsHandler serves the small UI-preference record.
type PrefsHandler struct {
	DB *sql.DB
}

// Get handles GET /api/prefs.
func (h *PrefsHandler) Get(w http.ResponseWriter, r *http.Request) {
	prefs, err := store.GetPrefs(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	jsonResponse(w, http.StatusOK, prefs)
}

// Put handles PUT /api/prefs.
func (h *PrefsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var prefs store.Prefs
	if err := decodeJSON(r, &prefs); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := store.SetPrefs(r.Context(), h.DB, prefs); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to store preferences")
		return
	}
	// Read back so the response reflects normalization.
	saved, err := store.GetPrefs(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	jsonResponse(w, http.StatusOK, saved)
}
