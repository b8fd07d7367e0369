// Package store owns the in-memory bookmark and collection state.
// All mutation goes through the operation set below; consumers read
// snapshots and subscribe to changes, never touch raw fields.
package store

import (
	"strings"
	"sync"

	"github.com/jdelcourt/marque/internal/domain"
)

// Subscriber observes the full bookmark set after every mutation.
// The persistence layer is wired in as a subscriber so the state
// transitions stay testable without a storage dependency.
type Subscriber func(bookmarks []domain.Bookmark)

// Counts aggregates the numbers the dashboard view renders.
type Counts struct {
	Bookmarks   int `json:"bookmarks"`
	Pinned      int `json:"pinned"`
	Collections int `json:"collections"`
	Tags        int `json:"tags"`
}

// Store is the single owner of bookmark and collection state.
// Mutators fully update in-memory state, then notify subscribers
// synchronously before returning.
type Store struct {
	mu          sync.RWMutex
	bookmarks   []domain.Bookmark
	collections []domain.Collection
	activeView  domain.View
	subscribers []Subscriber
}

func New() *Store {
	return &Store{
		bookmarks:   []domain.Bookmark{},
		collections: []domain.Collection{},
		activeView:  domain.ViewDashboard,
	}
}

// Subscribe registers fn to run after every bookmark mutation.
// Subscribers run synchronously in registration order; a subscriber
// must not call back into the store's mutators.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// ─────────────────────────────────────────────────────────────────
// Bookmark mutators
// ─────────────────────────────────────────────────────────────────

// AddBookmark appends b to the bookmark set. The caller guarantees
// required fields; tags are sanitized here as a last line of defense.
func (s *Store) AddBookmark(b domain.Bookmark) {
	s.mu.Lock()
	b.Tags = domain.SanitizeTags(b.Tags)
	s.bookmarks = append(s.bookmarks, b)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

// EditBookmark merges non-nil patch fields into the bookmark with the
// given id. Unknown ids are a no-op, never an error.
func (s *Store) EditBookmark(id string, patch domain.Patch) {
	s.mu.Lock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	b := &s.bookmarks[idx]
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.URL != nil {
		b.URL = *patch.URL
	}
	if patch.Favicon != nil {
		b.Favicon = *patch.Favicon
	}
	if patch.Wallpaper != nil {
		b.Wallpaper = *patch.Wallpaper
	}
	if patch.Collection != nil {
		b.Collection = *patch.Collection
	}
	if patch.Tags != nil {
		b.Tags = domain.SanitizeTags(*patch.Tags)
	}
	if patch.IsPinned != nil {
		b.IsPinned = *patch.IsPinned
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

// DeleteBookmark removes the bookmark with the given id. Unknown ids
// are a no-op.
func (s *Store) DeleteBookmark(id string) {
	s.mu.Lock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.bookmarks = append(s.bookmarks[:idx], s.bookmarks[idx+1:]...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

// TogglePin flips the pinned flag on the bookmark with the given id.
// Unknown ids are a no-op.
func (s *Store) TogglePin(id string) {
	s.mu.Lock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.bookmarks[idx].IsPinned = !s.bookmarks[idx].IsPinned
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

// SetBookmarks bulk-replaces the bookmark set. Used by import and by
// the boot loader; the caller must have validated each bookmark shape.
func (s *Store) SetBookmarks(bookmarks []domain.Bookmark) {
	s.mu.Lock()
	replacement := make([]domain.Bookmark, len(bookmarks))
	copy(replacement, bookmarks)
	for i := range replacement {
		replacement[i].Tags = domain.SanitizeTags(replacement[i].Tags)
	}
	s.bookmarks = replacement
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

// ─────────────────────────────────────────────────────────────────
// Collection mutators
// ─────────────────────────────────────────────────────────────────

// AddCollection appends a new collection with a fresh identity.
// Blank names are rejected: ok is false and nothing changes.
func (s *Store) AddCollection(name string) (domain.Collection, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return domain.Collection{}, false
	}

	c := domain.NewCollection(trimmed)

	s.mu.Lock()
	s.collections = append(s.collections, c)
	s.mu.Unlock()

	return c, true
}

// DeleteCollection removes the collection with the given id and every
// bookmark whose Collection field equals that collection's name, then
// resets the active view to the dashboard. Unknown ids are a no-op.
func (s *Store) DeleteCollection(id string) {
	s.mu.Lock()
	idx := -1
	for i := range s.collections {
		if s.collections[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	name := s.collections[idx].Name
	s.collections = append(s.collections[:idx], s.collections[idx+1:]...)

	kept := s.bookmarks[:0]
	for _, b := range s.bookmarks {
		if b.Collection != name {
			kept = append(kept, b)
		}
	}
	s.bookmarks = kept
	s.activeView = domain.ViewDashboard
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

// ─────────────────────────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────────────────────────

// Bookmarks returns a snapshot of the full bookmark set in insertion
// order.
func (s *Store) Bookmarks() []domain.Bookmark {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Bookmark returns the bookmark with the given id, if present.
func (s *Store) Bookmark(id string) (domain.Bookmark, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.indexOfLocked(id); idx >= 0 {
		return s.bookmarks[idx], true
	}
	return domain.Bookmark{}, false
}

// Collections returns a snapshot of all collections in insertion order.
func (s *Store) Collections() []domain.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Collection, len(s.collections))
	copy(out, s.collections)
	return out
}

// AllTags returns every distinct tag across all bookmarks, each once,
// in first-seen order.
func (s *Store) AllTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	tags := []string{}
	for _, b := range s.bookmarks {
		for _, tag := range b.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// FilterByView returns the ordered subsequence of bookmarks matching
// the selector. Unknown collection names yield an empty result.
func (s *Store) FilterByView(view domain.View) []domain.Bookmark {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []domain.Bookmark{}
	for _, b := range s.bookmarks {
		if view.Matches(b) {
			matched = append(matched, b)
		}
	}
	return matched
}

// Counts returns the aggregates rendered on the dashboard.
func (s *Store) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pinned := 0
	seen := make(map[string]bool)
	for _, b := range s.bookmarks {
		if b.IsPinned {
			pinned++
		}
		for _, tag := range b.Tags {
			seen[tag] = true
		}
	}
	return Counts{
		Bookmarks:   len(s.bookmarks),
		Pinned:      pinned,
		Collections: len(s.collections),
		Tags:        len(seen),
	}
}

// ActiveView returns the currently selected view.
func (s *Store) ActiveView() domain.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeView
}

// SetActiveView selects the view consumers should render.
func (s *Store) SetActiveView(view domain.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeView = view
}

// ─────────────────────────────────────────────────────────────────
// Internals
// ─────────────────────────────────────────────────────────────────

func (s *Store) indexOfLocked(id string) int {
	for i := range s.bookmarks {
		if s.bookmarks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotLocked() []domain.Bookmark {
	out := make([]domain.Bookmark, len(s.bookmarks))
	copy(out, s.bookmarks)
	return out
}

// notify runs outside the state lock so a slow subscriber (a storage
// write) cannot block readers. Subscriber failures must not reach the
// mutator's caller; subscribers handle their own errors.
func (s *Store) notify(snapshot []domain.Bookmark) {
	s.mu.RLock()
	subs := make([]Subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}
