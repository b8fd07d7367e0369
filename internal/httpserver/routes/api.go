package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/jdelcourt/marque/internal/httpserver/deps"
	"github.com/jdelcourt/marque/internal/httpserver/handlers"
)

func init() { Register(registerAPI) }

func registerAPI(r chi.Router, d deps.Deps) {
	r.Route("/api", func(api chi.Router) {
		api.Route("/bookmarks", func(b chi.Router) {
			b.Get("/", handlers.ListBookmarks(d))
			b.Post("/", handlers.CreateBookmark(d))
			b.Patch("/{id}", handlers.EditBookmark(d))
			b.Delete("/{id}", handlers.DeleteBookmark(d))
			b.Post("/{id}/pin", handlers.TogglePin(d))
		})

		api.Route("/collections", func(c chi.Router) {
			c.Get("/", handlers.ListCollections(d))
			c.Post("/", handlers.CreateCollection(d))
			c.Delete("/{id}", handlers.DeleteCollection(d))
		})

		api.Get("/tags", handlers.ListTags(d))
		api.Post("/enrich", handlers.Enrich(d))
		api.Post("/import", handlers.Import(d))
		api.Get("/export", handlers.Export(d))
		api.Post("/backfill", handlers.TriggerBackfill(d))
	})
}
