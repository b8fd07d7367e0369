package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jdelcourt/marque/internal/domain"
	"github.com/jdelcourt/marque/internal/httpserver/deps"
	"github.com/jdelcourt/marque/internal/logger"
	"github.com/jdelcourt/marque/internal/store"
)

type listBookmarksResponse struct {
	View      domain.View       `json:"view"`
	Bookmarks []domain.Bookmark `json:"bookmarks"`
	Counts    *store.Counts     `json:"counts,omitempty"`
}

// ListBookmarks returns the bookmarks matching the requested view
// selector. The dashboard view additionally carries aggregate counts.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := domain.View(r.URL.Query().Get("view"))
		if view == "" {
			view = domain.ViewAll
		}

		resp := listBookmarksResponse{
			View:      view,
			Bookmarks: d.Store.FilterByView(view),
		}
		if view == domain.ViewDashboard {
			counts := d.Store.Counts()
			resp.Counts = &counts
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type createBookmarkRequest struct {
	Title      string   `json:"title"`
	URL        string   `json:"url"`
	Favicon    string   `json:"favicon"`
	Wallpaper  string   `json:"wallpaper"`
	Collection string   `json:"collection"`
	Tags       []string `json:"tags"`
	IsPinned   bool     `json:"isPinned"`
}

// CreateBookmark validates the submitted fields and adds the bookmark.
// URL validation is the only user-visible failure path; missing
// enrichment metadata never blocks creation.
func CreateBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBookmarkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Title == "" {
			writeError(w, http.StatusBadRequest, "title is required")
			return
		}

		// Defensive re-validation at submit time; the live form ran
		// the same normalization to drive enrichment.
		normalized, err := domain.Normalize(req.URL)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		b := domain.NewBookmark(req.Title, normalized)
		b.Favicon = req.Favicon
		if b.Favicon == "" {
			b.Favicon = domain.FaviconURL(normalized)
		}
		b.Wallpaper = req.Wallpaper
		b.Collection = req.Collection
		b.Tags = domain.SanitizeTags(req.Tags)
		b.IsPinned = req.IsPinned

		d.Store.AddBookmark(b)

		d.Logger.Info("bookmark created",
			logger.String("id", b.ID),
			logger.String("url", b.URL))
		writeJSON(w, http.StatusCreated, b)
	}
}

type editBookmarkRequest struct {
	Title      *string   `json:"title"`
	URL        *string   `json:"url"`
	Favicon    *string   `json:"favicon"`
	Wallpaper  *string   `json:"wallpaper"`
	Collection *string   `json:"collection"`
	Tags       *[]string `json:"tags"`
	IsPinned   *bool     `json:"isPinned"`
}

// EditBookmark merges the submitted partial field set into the
// bookmark. Editing an already-deleted bookmark is a harmless no-op.
func EditBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req editBookmarkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Title != nil && *req.Title == "" {
			writeError(w, http.StatusBadRequest, "title must not be empty")
			return
		}
		if req.URL != nil {
			normalized, err := domain.Normalize(*req.URL)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			req.URL = &normalized
		}

		d.Store.EditBookmark(id, domain.Patch{
			Title:      req.Title,
			URL:        req.URL,
			Favicon:    req.Favicon,
			Wallpaper:  req.Wallpaper,
			Collection: req.Collection,
			Tags:       req.Tags,
			IsPinned:   req.IsPinned,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteBookmark removes the bookmark. Unknown ids are a no-op.
func DeleteBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.DeleteBookmark(chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	}
}

// TogglePin flips the pinned flag. Unknown ids are a no-op.
func TogglePin(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.TogglePin(chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	}
}
