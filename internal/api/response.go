package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/siriwat/lostfound/internal/model"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("error encoding response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// registryError maps a registry failure: validation errors are the caller's
// fault, anything else is a persistence failure.
func registryError(w http.ResponseWriter, err error) {
	if errors.Is(err, model.ErrInvalid) {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	slog.Error("registry operation failed", "error", err)
	jsonError(w, http.StatusInternalServerError, "internal error")
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
