package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jdelcourt/marque/internal/domain"
)

// File is the YAML shape of an operator-provided seed file:
//
//	collections:
//	  - Development
//	  - Personal
//	bookmarks:
//	  - title: GitHub
//	    url: github.com
//	    collection: Development
//	    tags: [dev, code]
//	    pinned: true
type File struct {
	Collections []string `yaml:"collections"`
	Bookmarks   []Entry  `yaml:"bookmarks"`
}

type Entry struct {
	Title      string   `yaml:"title"`
	URL        string   `yaml:"url"`
	Collection string   `yaml:"collection"`
	Tags       []string `yaml:"tags"`
	Pinned     bool     `yaml:"pinned"`
}

// Load reads a seed file and builds the initial collections and
// bookmarks from it. URLs are normalized; entries that fail validation
// abort the load, since a broken seed file is an operator error worth
// surfacing at startup.
func Load(path string) ([]domain.Collection, []domain.Bookmark, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	collections := make([]domain.Collection, 0, len(file.Collections))
	for _, name := range file.Collections {
		collections = append(collections, domain.NewCollection(name))
	}

	bookmarks := make([]domain.Bookmark, 0, len(file.Bookmarks))
	for i, entry := range file.Bookmarks {
		if entry.Title == "" {
			return nil, nil, fmt.Errorf("seed bookmark %d: missing title", i)
		}
		normalized, err := domain.Normalize(entry.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("seed bookmark %q: %w", entry.Title, err)
		}

		b := domain.NewBookmark(entry.Title, normalized)
		b.Favicon = domain.FaviconURL(normalized)
		b.Collection = entry.Collection
		b.Tags = domain.SanitizeTags(entry.Tags)
		b.IsPinned = entry.Pinned
		bookmarks = append(bookmarks, b)
	}

	return collections, bookmarks, nil
}
