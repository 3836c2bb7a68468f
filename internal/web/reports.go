package web

import (
	"log/slog"
	"net/http"

	"github.com/siriwat/lostfound/internal/export"
	"github.com/siriwat/lostfound/internal/model"
	"github.com/siriwat/lostfound/internal/report"
)

type reportsPageData struct {
	PageData
	Summary             report.Summary
	Categories          []report.CategoryCount
	Daily               []report.DailyRow
	RecentAnnouncements []model.Announcement
}

// ReportsPage handles GET /reports.
func (s *Server) ReportsPage(w http.ResponseWriter, r *http.Request) {
	items := s.Registry.Items()
	s.Templates.Render(w, "reports.html", &reportsPageData{
		PageData:            s.pageData(r, "รายงาน"),
		Summary:             report.Summarize(items),
		Categories:          report.ByCategory(items),
		Daily:               report.DailySeries(items, s.now()),
		RecentAnnouncements: report.Recent(s.Registry.Announcements(), 5),
	})
}

// ReportsItemsCSV handles GET /reports/items.csv.
func (s *Server) ReportsItemsCSV(w http.ResponseWriter, r *http.Request) {
	data, err := export.ItemsCSV(s.Registry.Items())
	if err != nil {
		slog.Error("failed to build item export", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	name := "lost-found-items-" + model.Today(s.now()) + ".csv"
	serveAttachment(w, name, "text/csv; charset=utf-8", data)
}

// ReportsCategoriesCSV handles GET /reports/categories.csv.
func (s *Server) ReportsCategoriesCSV(w http.ResponseWriter, r *http.Request) {
	data, err := export.CategoriesCSV(report.ByCategory(s.Registry.Items()))
	if err != nil {
		slog.Error("failed to build category export", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	name := "lost-found-category-summary-" + model.Today(s.now()) + ".csv"
	serveAttachment(w, name, "text/csv; charset=utf-8", data)
}

// ReportsChartPNG handles GET /reports/chart.png.
func (s *Server) ReportsChartPNG(w http.ResponseWriter, r *http.Request) {
	items := s.Registry.Items()
	data, err := report.RenderPNG(
		report.Summarize(items),
		report.ByCategory(items),
		report.DailySeries(items, s.now()),
		s.now(),
	)
	if err != nil {
		slog.Error("failed to render chart", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	name := "lost-found-report-" + model.Today(s.now()) + ".png"
	serveAttachment(w, name, "image/png", data)
}

func serveAttachment(w http.ResponseWriter, filename, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write download", "file", filename, "error", err)
	}
}
