package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jdelcourt/marque/internal/domain"
	"github.com/jdelcourt/marque/internal/store"
)

func TestCreateBookmark(t *testing.T) {
	router, d := newTestRouter(t)

	body := `{"title":"GitHub","url":"github.com","tags":[" dev ","","code"],"collection":"Development"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookmarks", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var b domain.Bookmark
	if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if b.ID == "" {
		t.Error("expected a generated id")
	}
	if b.URL != "https://github.com" {
		t.Errorf("expected normalized url, got %q", b.URL)
	}
	if b.Favicon != "https://github.com/favicon.ico" {
		t.Errorf("expected guessed favicon, got %q", b.Favicon)
	}
	if len(b.Tags) != 2 || b.Tags[0] != "dev" || b.Tags[1] != "code" {
		t.Errorf("expected sanitized tags [dev code], got %v", b.Tags)
	}

	stored := d.Store.Bookmarks()
	if len(stored) != 1 || stored[0].ID != b.ID {
		t.Errorf("bookmark not stored: %v", stored)
	}
}

func TestCreateBookmarkValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"url":"github.com"}`},
		{"invalid url", `{"title":"x","url":"not a url###"}`},
		{"empty url", `{"title":"x","url":"   "}`},
		{"malformed json", `{"title":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, d := newTestRouter(t)

			req := httptest.NewRequest(http.MethodPost, "/api/bookmarks", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if len(d.Store.Bookmarks()) != 0 {
				t.Error("invalid request must not create a bookmark")
			}
		})
	}
}

func TestCreateBookmarkKeepsSubmittedFavicon(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `{"title":"x","url":"example.com","favicon":"https://cdn.example.com/icon.png"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookmarks", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var b domain.Bookmark
	if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if b.Favicon != "https://cdn.example.com/icon.png" {
		t.Errorf("submitted favicon overwritten: %q", b.Favicon)
	}
}

func TestListBookmarksViews(t *testing.T) {
	router, d := newTestRouter(t)
	seedBookmark(t, d.Store, "GitHub", "https://github.com", "Development", true, "dev")
	seedBookmark(t, d.Store, "Recipes", "https://recipes.example.com", "Personal", false, "food")

	tests := []struct {
		name       string
		query      string
		wantTitles []string
		wantCounts bool
	}{
		{"default is all", "", []string{"GitHub", "Recipes"}, false},
		{"all", "?view=all", []string{"GitHub", "Recipes"}, false},
		{"dashboard carries counts", "?view=dashboard", []string{"GitHub", "Recipes"}, true},
		{"pinned", "?view=pinned", []string{"GitHub"}, false},
		{"collection", "?view=Personal", []string{"Recipes"}, false},
		{"tag", "?view=tag:dev", []string{"GitHub"}, false},
		{"unknown collection empty", "?view=Nope", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/bookmarks"+tt.query, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}

			var resp struct {
				Bookmarks []domain.Bookmark `json:"bookmarks"`
				Counts    *store.Counts     `json:"counts"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if len(resp.Bookmarks) != len(tt.wantTitles) {
				t.Fatalf("expected %d bookmarks, got %d", len(tt.wantTitles), len(resp.Bookmarks))
			}
			for i, want := range tt.wantTitles {
				if resp.Bookmarks[i].Title != want {
					t.Errorf("bookmark %d: expected %q, got %q", i, want, resp.Bookmarks[i].Title)
				}
			}
			if tt.wantCounts && resp.Counts == nil {
				t.Error("expected counts on dashboard view")
			}
			if !tt.wantCounts && resp.Counts != nil {
				t.Error("unexpected counts outside dashboard view")
			}
		})
	}
}

func TestEditBookmark(t *testing.T) {
	router, d := newTestRouter(t)
	b := seedBookmark(t, d.Store, "Old", "https://old.example.com", "", false)

	body := `{"title":"New","url":"new.example.com","isPinned":true}`
	req := httptest.NewRequest(http.MethodPatch, "/api/bookmarks/"+b.ID, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	got, ok := d.Store.Bookmark(b.ID)
	if !ok {
		t.Fatal("bookmark vanished")
	}
	if got.Title != "New" {
		t.Errorf("title not patched: %q", got.Title)
	}
	if got.URL != "https://new.example.com" {
		t.Errorf("url not normalized on edit: %q", got.URL)
	}
	if !got.IsPinned {
		t.Error("isPinned not patched")
	}
}

func TestEditBookmarkValidation(t *testing.T) {
	router, d := newTestRouter(t)
	b := seedBookmark(t, d.Store, "Keep", "https://keep.example.com", "", false)

	tests := []struct {
		name string
		body string
	}{
		{"empty title", `{"title":""}`},
		{"invalid url", `{"url":"   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/api/bookmarks/"+b.ID, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			got, _ := d.Store.Bookmark(b.ID)
			if got.Title != "Keep" {
				t.Errorf("bookmark mutated by rejected edit: %q", got.Title)
			}
		})
	}
}

func TestEditBookmarkUnknownID(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPatch, "/api/bookmarks/nope", strings.NewReader(`{"title":"x"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("editing an unknown id should be a no-op 204, got %d", rec.Code)
	}
}

func TestDeleteBookmark(t *testing.T) {
	router, d := newTestRouter(t)
	b := seedBookmark(t, d.Store, "Doomed", "https://doomed.example.com", "", false)

	req := httptest.NewRequest(http.MethodDelete, "/api/bookmarks/"+b.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if _, ok := d.Store.Bookmark(b.ID); ok {
		t.Error("bookmark still present after delete")
	}
}

func TestTogglePin(t *testing.T) {
	router, d := newTestRouter(t)
	b := seedBookmark(t, d.Store, "GitHub", "https://github.com", "", false)

	for i, want := range []bool{true, false} {
		req := httptest.NewRequest(http.MethodPost, "/api/bookmarks/"+b.ID+"/pin", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("toggle %d: expected 204, got %d", i, rec.Code)
		}
		got, _ := d.Store.Bookmark(b.ID)
		if got.IsPinned != want {
			t.Errorf("toggle %d: expected pinned=%v, got %v", i, want, got.IsPinned)
		}
	}
}
