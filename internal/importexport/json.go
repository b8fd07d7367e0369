package importexport

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jdelcourt/marque/internal/domain"
	"github.com/jdelcourt/marque/internal/persist"
)

// ImportJSON parses a previously exported JSON array in the persisted
// layout and validates each bookmark shape: title and a normalizable
// URL are required, ids must be distinct, missing ids get a fresh one.
// A single bad entry fails the import so a partial replacement never
// reaches the store.
func ImportJSON(data []byte) ([]domain.Bookmark, error) {
	bookmarks, err := persist.Decode(data)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(bookmarks))
	for i := range bookmarks {
		if bookmarks[i].Title == "" {
			return nil, fmt.Errorf("bookmark %d: missing title", i)
		}
		normalized, err := domain.Normalize(bookmarks[i].URL)
		if err != nil {
			return nil, fmt.Errorf("bookmark %d (%q): %w", i, bookmarks[i].Title, err)
		}
		bookmarks[i].URL = normalized
		if bookmarks[i].ID == "" {
			bookmarks[i].ID = uuid.NewString()
		}
		if _, dup := seen[bookmarks[i].ID]; dup {
			return nil, fmt.Errorf("bookmark %d (%q): duplicate id %q", i, bookmarks[i].Title, bookmarks[i].ID)
		}
		seen[bookmarks[i].ID] = struct{}{}
	}
	return bookmarks, nil
}

// ExportJSON serializes the bookmark set in the persisted layout.
func ExportJSON(bookmarks []domain.Bookmark) ([]byte, error) {
	return persist.Encode(bookmarks)
}
