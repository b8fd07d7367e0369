package redis

const (
	// KeySlotBookmarks is the single slot holding the serialized
	// bookmark set.
	KeySlotBookmarks = "marque:bookmarks"
)

// BookmarksSlotKey returns the Redis key for the bookmark slot.
func BookmarksSlotKey() string {
	return KeySlotBookmarks
}
