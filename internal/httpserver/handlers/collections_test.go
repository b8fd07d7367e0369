package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jdelcourt/marque/internal/domain"
)

func TestCreateAndListCollections(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, name := range []string{"Development", "Personal"} {
		body := `{"name":"` + name + `"}`
		req := httptest.NewRequest(http.MethodPost, "/api/collections", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201 for %q, got %d", name, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/collections", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var collections []domain.Collection
	if err := json.Unmarshal(rec.Body.Bytes(), &collections); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(collections) != 2 {
		t.Fatalf("expected 2 collections, got %d", len(collections))
	}
	if collections[0].Name != "Development" || collections[1].Name != "Personal" {
		t.Errorf("insertion order not preserved: %v", collections)
	}
}

func TestCreateCollectionBlankName(t *testing.T) {
	router, d := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/collections", strings.NewReader(`{"name":"   "}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(d.Store.Collections()) != 0 {
		t.Error("blank collection must not be created")
	}
}

func TestDeleteCollectionCascades(t *testing.T) {
	router, d := newTestRouter(t)

	c, _ := d.Store.AddCollection("Development")
	seedBookmark(t, d.Store, "GitHub", "https://github.com", "Development", false)
	keep := seedBookmark(t, d.Store, "Recipes", "https://recipes.example.com", "Personal", false)

	req := httptest.NewRequest(http.MethodDelete, "/api/collections/"+c.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	remaining := d.Store.Bookmarks()
	if len(remaining) != 1 || remaining[0].ID != keep.ID {
		t.Errorf("cascade delete wrong, remaining: %v", remaining)
	}
	if len(d.Store.Collections()) != 0 {
		t.Error("collection still present after delete")
	}
}
