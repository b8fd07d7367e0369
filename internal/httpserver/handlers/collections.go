package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jdelcourt/marque/internal/httpserver/deps"
	"github.com/jdelcourt/marque/internal/logger"
)

// ListCollections returns all collections in insertion order.
func ListCollections(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Store.Collections())
	}
}

type createCollectionRequest struct {
	Name string `json:"name"`
}

// CreateCollection adds a new collection. Blank names are rejected.
func CreateCollection(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCollectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		c, ok := d.Store.AddCollection(req.Name)
		if !ok {
			writeError(w, http.StatusBadRequest, "collection name must not be blank")
			return
		}

		d.Logger.Info("collection created",
			logger.String("id", c.ID),
			logger.String("name", c.Name))
		writeJSON(w, http.StatusCreated, c)
	}
}

// DeleteCollection removes the collection and every bookmark filed
// under its name, then resets the active view. Unknown ids are a
// no-op.
func DeleteCollection(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.DeleteCollection(chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	}
}
