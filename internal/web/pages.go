package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/janvolk/lostfound/internal/model"
)

// HomePage handles GET /.
func (s *Server) HomePage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "home.html", &struct {
		PageData
	}{
		PageData: PageData{Title: "Lost & Found"},
	})
}

// ReportLostPage handles GET /report-lost.
func (s *Server) ReportLostPage(w http.ResponseWriter, r *http.Request) {
	s.renderReportForm(w, model.ItemTypeLost, "Report Lost Item")
}

// ReportFoundPage handles GET /report-found.
func (s *Server) ReportFoundPage(w http.ResponseWriter, r *http.Request) {
	s.renderReportForm(w, model.ItemTypeFound, "Report Found Item")
}

// renderReportForm renders the shared report form, parameterized by item type.
func (s *Server) renderReportForm(w http.ResponseWriter, itemType, title string) {
	s.Templates.Render(w, "report_form.html", &struct {
		PageData
		ItemType string
	}{
		PageData: PageData{Title: title},
		ItemType: itemType,
	})
}

// Healthz handles GET /healthz by pinging the database.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.DB.PingContext(ctx); err != nil {
		slog.Error("health check failed", "error", err)
		http.Error(w, "database unreachable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
