// Package typeid hands out a stable, dense, strictly increasing identity to
// every Symbol declared in a run. The original engine obtained this identity
// at compile time via a friend-injection counter trick specific to its host
// compiler; this module renders the alternative the spec names explicitly —
// "each Symbol carries a user-provided ordinal" — backed by a process-wide
// monotonic counter, so identities stay total-ordered and stable for the
// lifetime of one process.
package typeid

import "sync/atomic"

// ID is a dense, strictly increasing identity. Lower IDs were issued earlier.
type ID uint64

var counter atomic.Uint64

// New returns a fresh ID, strictly greater than every ID issued before it
// within this process. Safe for concurrent use.
func New() ID {
	return ID(counter.Add(1))
}

// Less reports whether a was issued before b.
func (a ID) Less(b ID) bool {
	return a < b
}
