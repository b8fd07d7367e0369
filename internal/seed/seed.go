// Package seed provides the starting state for a fresh install:
// the default collection set (reseeded on every boot, collections are
// not persisted) and the starter bookmarks used when the durable slot
// is absent or corrupt.
package seed

import "github.com/jdelcourt/marque/internal/domain"

// Collections returns the default collection set.
func Collections() []domain.Collection {
	return []domain.Collection{
		domain.NewCollection("Development"),
		domain.NewCollection("Personal"),
		domain.NewCollection("Work"),
	}
}

// Bookmarks returns the starter bookmark set.
func Bookmarks() []domain.Bookmark {
	github := domain.NewBookmark("GitHub", "https://github.com")
	github.Favicon = "https://github.com/favicon.ico"
	github.Wallpaper = "https://images.unsplash.com/photo-1618401471353-b98afee0b2eb"
	github.Collection = "Development"
	github.Tags = []string{"dev", "code"}
	github.IsPinned = true

	stackoverflow := domain.NewBookmark("Stack Overflow", "https://stackoverflow.com")
	stackoverflow.Favicon = "https://stackoverflow.com/favicon.ico"
	stackoverflow.Wallpaper = "https://images.unsplash.com/photo-1542831371-29b0f74f9713"
	stackoverflow.Collection = "Development"
	stackoverflow.Tags = []string{"dev", "help"}

	return []domain.Bookmark{github, stackoverflow}
}
