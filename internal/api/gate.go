package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/siriwat/lostfound/internal/auth"
	"github.com/siriwat/lostfound/internal/store"
)

// MinPINLength is the minimum number of characters accepted when setting
// the PIN.
const MinPINLength = 4

// GateHandler handles the staff gate. The PIN is a locally stored plain
// string compared byte-for-byte; it keeps passers-by out of the console and
// is explicitly not a security boundary.
type GateHandler struct {
	DB        *sql.DB
	JWTSecret string
}

type gateStatusResponse struct {
	PINSet bool `json:"pinSet"`
}

type unlockRequest struct {
	PIN       string `json:"pin"`
	StaffName string `json:"staffName"`
}

type unlockResponse struct {
	Token string `json:"token"`
}

// Status handles GET /api/gate.
func (h *GateHandler) Status(w http.ResponseWriter, r *http.Request) {
	_, set, err := store.GetPIN(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	jsonResponse(w, http.StatusOK, gateStatusResponse{PINSet: set})
}

// Unlock handles POST /api/gate. With no PIN stored yet, the first
// submission sets it (as the gate's create step); afterwards the submitted
// PIN must match the stored one exactly.
func (h *GateHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	var req unlockRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pin := strings.TrimSpace(req.PIN)
	stored, set, err := store.GetPIN(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if !set {
		if utf8.RuneCountInString(pin) < MinPINLength {
			jsonError(w, http.StatusBadRequest, "PIN must be at least 4 characters")
			return
		}
		if err := store.SetPIN(r.Context(), h.DB, pin); err != nil {
			jsonError(w, http.StatusInternalServerError, "failed to store PIN")
			return
		}
		slog.Info("staff PIN created")
	} else if pin != stored {
		slog.Warn("gate unlock failed", "remote", r.RemoteAddr)
		jsonError(w, http.StatusUnauthorized, "incorrect PIN")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, strings.TrimSpace(req.StaffName))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	slog.Info("console unlocked", "staff", req.StaffName)
	jsonResponse(w, http.StatusOK, unlockResponse{Token: token})
}
