package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Bookmark is a saved link together with its display and
// organizational metadata.
type Bookmark struct {
	// ID is the canonical unique identifier, assigned at creation.
	ID string `json:"id"`

	// Title is the display name shown for the link.
	Title string `json:"title"`

	// URL is the absolute, normalized address (see Normalize).
	URL string `json:"url"`

	// Favicon is a best-effort icon URL. Empty means no icon available.
	Favicon string `json:"favicon,omitempty"`

	// Wallpaper is a best-effort preview image URL. Empty means no preview.
	Wallpaper string `json:"wallpaper,omitempty"`

	// Collection is the name of the collection this bookmark belongs to.
	// It joins by value, not by collection ID. Empty means uncategorized.
	Collection string `json:"collection"`

	// Tags is the ordered list of labels. Membership is what matters,
	// but insertion order is kept for display.
	Tags []string `json:"tags"`

	// CreatedAt is set once at creation and never mutated.
	CreatedAt time.Time `json:"createdAt"`

	// IsPinned marks the bookmark for the pinned view.
	IsPinned bool `json:"isPinned"`
}

// Collection is a named grouping of bookmarks. Bookmarks reference it
// by Name, so deletes must account for the value join.
type Collection struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Patch is a partial update applied to an existing bookmark.
// Nil fields are left untouched.
type Patch struct {
	Title      *string
	URL        *string
	Favicon    *string
	Wallpaper  *string
	Collection *string
	Tags       *[]string
	IsPinned   *bool
}

// NewBookmark builds a bookmark with a fresh identity and timestamp.
// Optional metadata starts empty; enrichment fills it in later.
func NewBookmark(title, url string) Bookmark {
	return Bookmark{
		ID:        uuid.NewString(),
		Title:     title,
		URL:       url,
		Tags:      []string{},
		CreatedAt: time.Now(),
	}
}

// NewCollection builds a collection with a fresh identity and timestamp.
func NewCollection(name string) Collection {
	return Collection{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// SanitizeTags trims whitespace and drops blank entries while keeping
// the original order. A bookmark never carries empty tag strings.
func SanitizeTags(tags []string) []string {
	clean := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			clean = append(clean, tag)
		}
	}
	return clean
}
