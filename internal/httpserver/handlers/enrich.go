package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jdelcourt/marque/internal/domain"
	"github.com/jdelcourt/marque/internal/httpserver/deps"
	"github.com/jdelcourt/marque/internal/logger"
)

type enrichRequest struct {
	URL string `json:"url"`
}

type enrichResponse struct {
	URL     string `json:"url"`
	Favicon string `json:"favicon"`
	Image   string `json:"image"`
	Source  string `json:"source"`
	Token   uint64 `json:"token"`
	Stale   bool   `json:"stale"`
}

// Enrich normalizes the submitted URL and resolves a preview image for
// it. Each call claims a fresh generation token; a client typing in the
// URL field fires these repeatedly, and applies only the completion
// whose token is still current (last applied wins; in-flight
// resolutions are not cancelled).
func Enrich(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req enrichRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		normalized, err := domain.Normalize(req.URL)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		token := d.Tokens.Next()
		result := d.Resolver.Resolve(r.Context(), normalized)

		d.Logger.Debug("enrichment resolved",
			logger.String("url", normalized),
			logger.String("source", result.Source.String()))

		writeJSON(w, http.StatusOK, enrichResponse{
			URL:     normalized,
			Favicon: domain.FaviconURL(normalized),
			Image:   result.ImageURL,
			Source:  result.Source.String(),
			Token:   token,
			Stale:   !d.Tokens.IsCurrent(token),
		})
	}
}
