package enrich

import "sync/atomic"

// Tokens issues generation counters for in-flight resolutions. There is
// no cancellation primitive for a resolution once started; instead a
// caller takes a token with Next before starting, and discards the
// completion if the token is no longer current when the result arrives
// (last-applied-wins).
type Tokens struct {
	n atomic.Uint64
}

// Next claims a new generation, invalidating all earlier ones.
func (t *Tokens) Next() uint64 {
	return t.n.Add(1)
}

// Current returns the latest issued generation.
func (t *Tokens) Current() uint64 {
	return t.n.Load()
}

// IsCurrent reports whether token is still the latest generation.
func (t *Tokens) IsCurrent(token uint64) bool {
	return t.n.Load() == token
}
