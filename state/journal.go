package state

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// SideEffect is an opaque, reversible mutation of user-visible parse
// state. Apply has already run by the time a SideEffect
// is logged; Unapply must return the affected state to what it was
// immediately before Apply. Apply immediately followed by Unapply must
// restore identity.
type SideEffect interface {
	Apply()
	Unapply()
}

// journal is an append-only log of applied side effects, truncated from
// the tail on rollback. Order of application equals order of
// enqueueing; undo is strictly LIFO.
type journal struct {
	entries *arraylist.List
}

func newJournal() *journal {
	return &journal{entries: arraylist.New()}
}

// log appends an already-applied effect.
func (j *journal) log(effect SideEffect) {
	j.entries.Add(effect)
}

// length returns the number of logged entries.
func (j *journal) length() int {
	return j.entries.Size()
}

// rollbackTo unapplies entries [to..length) in reverse order and
// truncates the journal to length to.
func (j *journal) rollbackTo(to int) {
	for i := j.entries.Size() - 1; i >= to; i-- {
		v, ok := j.entries.Get(i)
		if !ok {
			continue
		}
		v.(SideEffect).Unapply()
		j.entries.Remove(i)
	}
}

// tailFrom returns the side effects logged at or after index from, in
// application order. Used by the memoizer to harvest a delta.
func (j *journal) tailFrom(from int) []SideEffect {
	n := j.entries.Size()
	if from >= n {
		return nil
	}
	out := make([]SideEffect, 0, n-from)
	for i := from; i < n; i++ {
		v, ok := j.entries.Get(i)
		if !ok {
			continue
		}
		out = append(out, v.(SideEffect))
	}
	return out
}

// replay re-applies a previously harvested delta by calling Apply and
// logging each effect again, so a subsequent rollback can undo it.
func (j *journal) replay(delta []SideEffect) {
	for _, e := range delta {
		e.Apply()
		j.log(e)
	}
}
