package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/jdelcourt/marque/internal/domain"
	"github.com/jdelcourt/marque/internal/httpserver/deps"
	"github.com/jdelcourt/marque/internal/importexport"
	"github.com/jdelcourt/marque/internal/logger"
)

const maxImportBytes = 8 << 20

type importResponse struct {
	Imported int `json:"imported"`
}

// Import accepts either a previously exported JSON array (replaces the
// bookmark set) or anchor-tag HTML (each link appended as a new
// bookmark with a freshly resolved preview image), selected by
// Content-Type.
func Import(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-Type")

		switch {
		case strings.Contains(contentType, "text/html"):
			importHTML(w, r, d)
		default:
			importJSON(w, r, d)
		}
	}
}

func importJSON(w http.ResponseWriter, r *http.Request, d deps.Deps) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	bookmarks, err := importexport.ImportJSON(data)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	d.Store.SetBookmarks(bookmarks)
	d.Logger.Info("bookmarks imported from json",
		logger.Int("count", len(bookmarks)))
	writeJSON(w, http.StatusOK, importResponse{Imported: len(bookmarks)})
}

func importHTML(w http.ResponseWriter, r *http.Request, d deps.Deps) {
	bookmarks, err := importexport.ImportHTML(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	for i := range bookmarks {
		bookmarks[i].Favicon = domain.FaviconURL(bookmarks[i].URL)
		result := d.Resolver.Resolve(r.Context(), bookmarks[i].URL)
		bookmarks[i].Wallpaper = result.ImageURL
		d.Store.AddBookmark(bookmarks[i])
	}

	d.Logger.Info("bookmarks imported from html",
		logger.Int("count", len(bookmarks)))
	writeJSON(w, http.StatusOK, importResponse{Imported: len(bookmarks)})
}

// Export serializes the bookmark set as JSON (default) or as an HTML
// document, selected by the format query parameter.
func Export(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookmarks := d.Store.Bookmarks()

		switch r.URL.Query().Get("format") {
		case "html":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Set("Content-Disposition", `attachment; filename="bookmarks.html"`)
			_, _ = io.WriteString(w, importexport.ExportHTML(bookmarks))

		case "", "json":
			data, err := importexport.ExportJSON(bookmarks)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "failed to serialize bookmarks")
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Content-Disposition", `attachment; filename="bookmarks.json"`)
			_, _ = w.Write(data)

		default:
			writeError(w, http.StatusBadRequest, "unknown export format")
		}
	}
}
