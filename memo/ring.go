package memo

import (
	"fmt"
	"io"

	"github.com/cnf/structhash"
)

// RingMemoizer is a fixed-size LRU ring of n slots: a memoize call
// overwrites the oldest slot; a get call scans from newest to oldest,
// stopping at the first empty slot. The hash folds (pos, ctx,
// key-if-MatchKey) so distinct keys rarely collide; a zero-valued
// (empty-string) hash is the empty-slot sentinel, so the hash function
// must make a legitimate zero hash vanishingly unlikely.
type RingMemoizer struct {
	// MatchKey, when true, folds the supplied key into the hash (and
	// the stored slot), so that the same position/context with two
	// different producing parsers are cached independently. When false,
	// only (pos, ctx) participate — appropriate for a Memoizer scoped to
	// a single known parser.
	MatchKey bool

	slots []ringSlot
	next  int // index of the next slot to overwrite (the oldest)
	n     int // number of slots ever filled, capped at len(slots)
}

type ringSlot struct {
	hash  string
	key   interface{}
	pos   int
	ctx   interface{}
	entry Entry
}

// NewRing creates a RingMemoizer with size slots.
func NewRing(size int, matchKey bool) *RingMemoizer {
	if size <= 0 {
		size = 1
	}
	return &RingMemoizer{MatchKey: matchKey, slots: make([]ringSlot, size)}
}

func (r *RingMemoizer) hash(key interface{}, pos int, ctx interface{}) string {
	type keyshape struct {
		Pos int
		Ctx interface{}
		Key string
	}
	k := keyshape{Pos: pos, Ctx: ctx}
	if r.MatchKey {
		k.Key = fmt.Sprintf("%v", key)
	}
	h, err := structhash.Hash(k, 1)
	if err != nil { // no reason for this to happen, but API demands it
		panic(err)
	}
	return h
}

// Get implements Memoizer. It scans from newest to oldest, stopping at
// the first empty (zero-hash) slot — which, since the ring fills
// front-to-back before it ever wraps, means "no more entries were ever
// recorded before this point".
func (r *RingMemoizer) Get(key interface{}, pos int, ctx interface{}) (Entry, bool) {
	want := r.hash(key, pos, ctx)
	size := len(r.slots)
	for i := 0; i < size; i++ {
		idx := (r.next - 1 - i + size) % size
		slot := r.slots[idx]
		if slot.hash == "" {
			break
		}
		if slot.hash == want {
			tracer().Debugf("memo hit at pos=%d", pos)
			return slot.entry, true
		}
	}
	return Entry{}, false
}

// Put implements Memoizer, overwriting the oldest slot.
func (r *RingMemoizer) Put(key interface{}, pos int, ctx interface{}, entry Entry) {
	r.slots[r.next] = ringSlot{
		hash:  r.hash(key, pos, ctx),
		key:   key,
		pos:   pos,
		ctx:   ctx,
		entry: entry,
	}
	r.next = (r.next + 1) % len(r.slots)
	if r.n < len(r.slots) {
		r.n++
	}
}

// Dump writes a line-oriented listing of the ring's currently reachable
// entries, newest first.
func (r *RingMemoizer) Dump(w io.Writer) {
	size := len(r.slots)
	for i := 0; i < size; i++ {
		idx := (r.next - 1 - i + size) % size
		slot := r.slots[idx]
		if slot.hash == "" {
			break
		}
		status := "fail"
		if !slot.entry.Failed() {
			status = fmt.Sprintf("end=%d", slot.entry.EndPos)
		}
		fmt.Fprintf(w, "[%d] pos=%d key=%v %s\n", i, slot.pos, slot.key, status)
	}
}
