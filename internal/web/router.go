package web

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/siriwat/lostfound/internal/registry"
	webembed "github.com/siriwat/lostfound/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sql.DB, reg *registry.Registry, jwtSecret string, now func() time.Time) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:        db,
		Registry:  reg,
		Templates: templates,
		JWTSecret: jwtSecret,
		Now:       now,
	}

	mux := http.NewServeMux()
	cookieAuth := CookieAuthMiddleware(jwtSecret)

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Public routes.
	mux.HandleFunc("GET /gate", s.GatePage)
	mux.HandleFunc("POST /gate", s.GateSubmit)
	mux.HandleFunc("POST /logout", s.Logout)

	// Authenticated routes.
	mux.Handle("GET /{$}", cookieAuth(http.HandlerFunc(s.ConsolePage)))
	mux.Handle("POST /prefs", cookieAuth(http.HandlerFunc(s.PrefsSubmit)))

	mux.Handle("POST /items", cookieAuth(http.HandlerFunc(s.ItemCreateSubmit)))
	mux.Handle("POST /items/handover", cookieAuth(http.HandlerFunc(s.HandoverSubmit)))
	mux.Handle("GET /items/{id}", cookieAuth(http.HandlerFunc(s.ItemDetailPage)))
	mux.Handle("POST /items/{id}", cookieAuth(http.HandlerFunc(s.ItemEditSubmit)))
	mux.Handle("POST /items/{id}/store", cookieAuth(http.HandlerFunc(s.ItemStoreSubmit)))
	mux.Handle("POST /items/{id}/claim", cookieAuth(http.HandlerFunc(s.ItemClaimSubmit)))
	mux.Handle("POST /items/{id}/delete", cookieAuth(http.HandlerFunc(s.ItemDeleteSubmit)))

	mux.Handle("GET /announcements", cookieAuth(http.HandlerFunc(s.AnnouncementsPage)))
	mux.Handle("POST /announcements", cookieAuth(http.HandlerFunc(s.AnnouncementCreateSubmit)))
	mux.Handle("POST /announcements/{id}", cookieAuth(http.HandlerFunc(s.AnnouncementUpdateSubmit)))
	mux.Handle("POST /announcements/{id}/delete", cookieAuth(http.HandlerFunc(s.AnnouncementDeleteSubmit)))

	mux.Handle("GET /reports", cookieAuth(http.HandlerFunc(s.ReportsPage)))
	mux.Handle("GET /reports/items.csv", cookieAuth(http.HandlerFunc(s.ReportsItemsCSV)))
	mux.Handle("GET /reports/categories.csv", cookieAuth(http.HandlerFunc(s.ReportsCategoriesCSV)))
	mux.Handle("GET /reports/chart.png", cookieAuth(http.HandlerFunc(s.ReportsChartPNG)))

	return mux, nil
}
