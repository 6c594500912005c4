package memo

import "testing"

// TestLRUEvictionOldestEntryUnreachable checks that after n+1 distinct
// memoize calls into an n-slot ring, the oldest entry is no longer
// reachable, but the last n are.
func TestLRUEvictionOldestEntryUnreachable(t *testing.T) {
	const n = 4
	r := NewRing(n, true)

	type key struct{ i int }
	keys := make([]key, n+1)
	for i := range keys {
		keys[i] = key{i}
		r.Put(keys[i], i, nil, Entry{StartPos: i, EndPos: i + 1})
	}

	if _, hit := r.Get(keys[0], 0, nil); hit {
		t.Error("expected the oldest entry (evicted) to be unreachable")
	}
	for i := 1; i <= n; i++ {
		if _, hit := r.Get(keys[i], i, nil); !hit {
			t.Errorf("expected entry %d to still be reachable after eviction", i)
		}
	}
}

// TestGetStopsAtFirstEmptySlot exercises the "zero-hash sentinel ends
// the scan" convention: a partially-filled ring correctly reports
// misses for keys never stored, without scanning stale zeroed slots as
// hits.
func TestGetStopsAtFirstEmptySlot(t *testing.T) {
	r := NewRing(8, true)
	r.Put("a", 0, nil, Entry{StartPos: 0, EndPos: 1})
	r.Put("b", 1, nil, Entry{StartPos: 1, EndPos: 2})

	if _, hit := r.Get("never-stored", 5, nil); hit {
		t.Error("expected a miss for a key never stored")
	}
	if e, hit := r.Get("a", 0, nil); !hit || e.EndPos != 1 {
		t.Fatalf("expected a hit for \"a\" with EndPos=1, got hit=%v entry=%+v", hit, e)
	}
}

// TestMatchKeyDistinguishesProducers checks that with MatchKey set, the
// same (pos, ctx) produced by two distinct keys is cached independently.
func TestMatchKeyDistinguishesProducers(t *testing.T) {
	r := NewRing(8, true)
	r.Put("producer-A", 3, nil, Entry{StartPos: 3, EndPos: 5})
	if _, hit := r.Get("producer-B", 3, nil); hit {
		t.Error("expected a distinct producer key at the same position to miss")
	}
	if e, hit := r.Get("producer-A", 3, nil); !hit || e.EndPos != 5 {
		t.Fatalf("expected producer-A's own entry to hit, got hit=%v entry=%+v", hit, e)
	}
}

// TestEntryFailedUsesMinusOneSentinel documents that Failed() is
// EndPos == -1, not an "EndPos > 0" convention, so a valid zero-length
// success at position 0 is never misclassified as a failure.
func TestEntryFailedUsesMinusOneSentinel(t *testing.T) {
	zeroLengthSuccess := Entry{StartPos: 0, EndPos: 0}
	if zeroLengthSuccess.Failed() {
		t.Error("a zero-length success at position 0 must not be classified as failed")
	}
	recordedFailure := Entry{StartPos: 0, EndPos: -1}
	if !recordedFailure.Failed() {
		t.Error("EndPos == -1 must be classified as failed")
	}
}

// TestCtxParticipatesInKey checks the context-sensitivity requirement:
// the same position with two different ctx values must be cached
// independently.
func TestCtxParticipatesInKey(t *testing.T) {
	r := NewRing(8, false)
	r.Put(nil, 2, "ctx-A", Entry{StartPos: 2, EndPos: 4})
	if _, hit := r.Get(nil, 2, "ctx-B"); hit {
		t.Error("expected a different ctx at the same position to miss")
	}
	if e, hit := r.Get(nil, 2, "ctx-A"); !hit || e.EndPos != 4 {
		t.Fatalf("expected the original ctx to hit, got hit=%v entry=%+v", hit, e)
	}
}
