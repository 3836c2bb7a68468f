package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/siriwat/lostfound/internal/export"
	"github.com/siriwat/lostfound/internal/model"
	"github.com/siriwat/lostfound/internal/registry"
	"github.com/siriwat/lostfound/internal/report"
)

// ReportsHandler serves aggregates and exports. Now is injectable so tests
// can pin the reporting window.
type ReportsHandler struct {
	Registry *registry.Registry
	Now      func() time.Time
}

func (h *ReportsHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

type reportsResponse struct {
	Summary             report.Summary         `json:"summary"`
	Categories          []report.CategoryCount `json:"categories"`
	Daily               []report.DailyRow      `json:"daily"`
	RecentAnnouncements []model.Announcement   `json:"recentAnnouncements"`
}

// Overview handles GET /api/reports.
func (h *ReportsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	items := h.Registry.Items()
	jsonResponse(w, http.StatusOK, reportsResponse{
		Summary:             report.Summarize(items),
		Categories:          report.ByCategory(items),
		Daily:               report.DailySeries(items, h.now()),
		RecentAnnouncements: report.Recent(h.Registry.Announcements(), 5),
	})
}

// ItemsCSV handles GET /api/reports/items.csv.
func (h *ReportsHandler) ItemsCSV(w http.ResponseWriter, r *http.Request) {
	data, err := export.ItemsCSV(h.Registry.Items())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to build export")
		return
	}
	serveDownload(w, "items.csv", "text/csv; charset=utf-8", data)
}

// CategoriesCSV handles GET /api/reports/categories.csv.
func (h *ReportsHandler) CategoriesCSV(w http.ResponseWriter, r *http.Request) {
	data, err := export.CategoriesCSV(report.ByCategory(h.Registry.Items()))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to build export")
		return
	}
	serveDownload(w, "categories.csv", "text/csv; charset=utf-8", data)
}

// ChartPNG handles GET /api/reports/chart.png with the rendered dashboard
// snapshot.
func (h *ReportsHandler) ChartPNG(w http.ResponseWriter, r *http.Request) {
	items := h.Registry.Items()
	data, err := report.RenderPNG(
		report.Summarize(items),
		report.ByCategory(items),
		report.DailySeries(items, h.now()),
		h.now(),
	)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to render chart")
		return
	}
	serveDownload(w, "report.png", "image/png", data)
}

func serveDownload(w http.ResponseWriter, filename, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write download", "file", filename, "error", err)
	}
}
