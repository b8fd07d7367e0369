package domain

import "strings"

// View selects a subset of bookmarks for display.
//
// Recognized selectors:
//   - "dashboard" and "all": the full set (the dashboard additionally
//     renders aggregate counts on top of it)
//   - "pinned": pinned bookmarks only
//   - "tag:<name>": bookmarks whose tag set contains <name> exactly
//   - anything else: treated as a collection name, matched by exact
//     equality against Bookmark.Collection
type View string

const (
	ViewDashboard View = "dashboard"
	ViewPinned    View = "pinned"
	ViewAll       View = "all"

	// TagPrefix marks a tag selector, e.g. "tag:dev".
	TagPrefix = "tag:"
)

// TagView builds the selector for a single tag.
func TagView(name string) View {
	return View(TagPrefix + name)
}

// Matches reports whether b belongs to the view. An unknown collection
// name simply matches nothing; it is never an error.
func (v View) Matches(b Bookmark) bool {
	switch {
	case v == ViewDashboard || v == ViewAll || v == "":
		return true
	case v == ViewPinned:
		return b.IsPinned
	case strings.HasPrefix(string(v), TagPrefix):
		name := strings.TrimPrefix(string(v), TagPrefix)
		for _, tag := range b.Tags {
			if tag == name {
				return true
			}
		}
		return false
	default:
		return b.Collection == string(v)
	}
}
