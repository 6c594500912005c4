package memo

import "github.com/corvidlang/peg/state"

// Entry is a single memoized outcome.
type Entry struct {
	StartPos int                // position at entry
	EndPos   int                // advanced position on success; -1 denotes a recorded failure
	Delta    []state.SideEffect // side effects to re-apply on a cache hit
	Ctx      interface{}        // user-context value snapshotted at entry
}

// Failed reports whether this entry records a failure. This is
// deliberately EndPos == -1, rather than an "EndPos > 0" convention,
// which would misclassify a valid zero-length success at position 0 as
// a failure.
func (e Entry) Failed() bool { return e.EndPos == -1 }

// Memoizer caches parse outcomes keyed by (key, pos, ctx). key is
// typically the identity of the producing parser (or, when a Memoizer
// is scoped to match by key, some other identity participating in the
// cache key — see RingMemoizer's matchKey option).
type Memoizer interface {
	// Get looks up a cached outcome for (key, pos, ctx).
	Get(key interface{}, pos int, ctx interface{}) (Entry, bool)
	// Put records an outcome for (key, pos, ctx), possibly evicting an
	// older entry.
	Put(key interface{}, pos int, ctx interface{}, entry Entry)
}
