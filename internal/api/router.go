package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/siriwat/lostfound/internal/registry"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, reg *registry.Registry, jwtSecret string, now func() time.Time) http.Handler {
	mux := http.NewServeMux()

	gateHandler := &GateHandler{DB: db, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{Registry: reg}
	annsHandler := &AnnouncementsHandler{Registry: reg}
	reportsHandler := &ReportsHandler{Registry: reg, Now: now}
	prefsHandler := &PrefsHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret)

	// Public: the staff gate.
	mux.HandleFunc("GET /api/gate", gateHandler.Status)
	mux.HandleFunc("POST /api/gate", gateHandler.Unlock)

	// Items.
	mux.Handle("GET /api/items", authMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("POST /api/items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("POST /api/items/handover", authMW(http.HandlerFunc(itemsHandler.Handover)))
	mux.Handle("GET /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("POST /api/items/{id}/store", authMW(http.HandlerFunc(itemsHandler.Store)))
	mux.Handle("POST /api/items/{id}/claim", authMW(http.HandlerFunc(itemsHandler.Claim)))
	mux.Handle("PUT /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Update)))
	mux.Handle("DELETE /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Delete)))

	// Announcements.
	mux.Handle("GET /api/announcements", authMW(http.HandlerFunc(annsHandler.List)))
	mux.Handle("POST /api/announcements", authMW(http.HandlerFunc(annsHandler.Create)))
	mux.Handle("PATCH /api/announcements/{id}", authMW(http.HandlerFunc(annsHandler.Patch)))
	mux.Handle("DELETE /api/announcements/{id}", authMW(http.HandlerFunc(annsHandler.Delete)))

	// Reports and exports.
	mux.Handle("GET /api/reports", authMW(http.HandlerFunc(reportsHandler.Overview)))
	mux.Handle("GET /api/reports/items.csv", authMW(http.HandlerFunc(reportsHandler.ItemsCSV)))
	mux.Handle("GET /api/reports/categories.csv", authMW(http.HandlerFunc(reportsHandler.CategoriesCSV)))
	mux.Handle("GET /api/reports/chart.png", authMW(http.HandlerFunc(reportsHandler.ChartPNG)))

	// UI preferences.
	mux.Handle("GET /api/prefs", authMW(http.HandlerFunc(prefsHandler.Get)))
	mux.Handle("PUT /api/prefs", authMW(http.HandlerFunc(prefsHandler.Put)))

	return mux
}
