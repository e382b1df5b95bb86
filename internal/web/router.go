package web

import (
	"database/sql"
	"net/http"

	"github.com/janvolk/lostfound/internal/intake"
	webembed "github.com/janvolk/lostfound/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sql.DB, pipeline *intake.Pipeline, maxUploadSize int64) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:            db,
		Templates:     templates,
		Intake:        pipeline,
		MaxUploadSize: maxUploadSize,
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Pages.
	mux.HandleFunc("GET /{$}", s.HomePage)
	mux.HandleFunc("GET /report-lost", s.ReportLostPage)
	mux.HandleFunc("GET /report-found", s.ReportFoundPage)
	mux.HandleFunc("GET /view-items", s.ItemsPage)
	mux.HandleFunc("GET /item/{id}", s.ItemDetailPage)

	// Submission.
	mux.HandleFunc("POST /submit-item", s.SubmitItem)

	// Health.
	mux.HandleFunc("GET /healthz", s.Healthz)

	return mux, nil
}
