// Package persist defines the stable external representation of the
// bookmark set: a JSON array with createdAt as an ISO-8601 string and
// tags as an ordered list. The same layout backs the durable slot,
// JSON import and JSON export.
package persist

import (
	"encoding/json"
	"fmt"

	"github.com/jdelcourt/marque/internal/domain"
)

// Encode serializes bookmarks into the stable layout.
func Encode(bookmarks []domain.Bookmark) ([]byte, error) {
	if bookmarks == nil {
		bookmarks = []domain.Bookmark{}
	}
	data, err := json.Marshal(bookmarks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode bookmarks: %w", err)
	}
	return data, nil
}

// Decode parses the stable layout back into bookmarks. There is no
// schema version field; a reader tolerates missing optional fields
// (favicon, wallpaper) as empty strings and normalizes tags so blank
// entries never reach the store. Corrupt payloads return an error for
// the caller to recover from.
func Decode(data []byte) ([]domain.Bookmark, error) {
	var bookmarks []domain.Bookmark
	if err := json.Unmarshal(data, &bookmarks); err != nil {
		return nil, fmt.Errorf("failed to decode bookmarks: %w", err)
	}

	for i := range bookmarks {
		if bookmarks[i].Tags == nil {
			bookmarks[i].Tags = []string{}
		} else {
			bookmarks[i].Tags = domain.SanitizeTags(bookmarks[i].Tags)
		}
	}
	return bookmarks, nil
}
