package handlers

import (
	"net/http"

	"github.com/jdelcourt/marque/internal/httpserver/deps"
)

type tagsResponse struct {
	Tags []string `json:"tags"`
}

// ListTags returns every distinct tag across the bookmark set, each
// once, in first-seen order.
func ListTags(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, tagsResponse{Tags: d.Store.AllTags()})
	}
}
