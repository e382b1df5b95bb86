package web

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/janvolk/lostfound/internal/intake"
	"github.com/janvolk/lostfound/internal/model"
	"github.com/janvolk/lostfound/internal/store"
)

// ItemsPage handles GET /view-items.
func (s *Server) ItemsPage(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	items, err := store.ListItems(r.Context(), s.DB, search)
	if err != nil {
		slog.Error("failed to list items", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "items.html", &struct {
		PageData
		Items  []model.Item
		Search string
	}{
		PageData: PageData{Title: "Reported Items"},
		Items:    items,
		Search:   search,
	})
}

// ItemDetailPage handles GET /item/{id}.
func (s *Server) ItemDetailPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := store.GetItem(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}

	s.Templates.Render(w, "item_detail.html", &struct {
		PageData
		Item *model.Item
	}{
		PageData: PageData{Title: item.ItemName},
		Item:     item,
	})
}

// SubmitItem handles POST /submit-item.
func (s *Server) SubmitItem(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.MaxUploadSize)
	if err := r.ParseMultipartForm(s.MaxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, "invalid form or file too large", http.StatusBadRequest)
		return
	}

	sub := &intake.Submission{
		ItemType:    r.FormValue("item_type"),
		ItemName:    r.FormValue("item_name"),
		Description: r.FormValue("description"),
		Location:    r.FormValue("location"),
		ContactInfo: r.FormValue("contact_info"),
	}

	// The photo is optional; a missing or empty file part means no upload.
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		if header.Filename != "" {
			data, err := io.ReadAll(file)
			if err != nil {
				http.Error(w, "reading uploaded file", http.StatusBadRequest)
				return
			}
			sub.Photo = data
			sub.PhotoFilename = header.Filename
		}
	}

	item, err := s.Intake.Submit(r.Context(), sub)
	if err != nil {
		if errors.Is(err, intake.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("failed to submit item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("item reported", "id", item.ID, "type", item.ItemType, "name", item.ItemName, "tag", item.Tag)
	http.Redirect(w, r, "/view-items", http.StatusSeeOther)
}
