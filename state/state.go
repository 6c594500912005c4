package state

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/corvidlang/peg"
)

// Snapshot captures the position required to undo everything a parser
// has done since it was taken: input position, journal length and user
// context value.
type Snapshot struct {
	pos        int
	journalLen int
	ctx        interface{}
}

// State is the Parse State threaded through a single invocation of the
// driver. It is never shared across goroutines.
type State struct {
	input   peg.Input
	pos     int
	ctx     interface{}
	journal *journal
	stack   *astStack

	furthestPos    int
	furthestCauses *treeset.Set // of string, the causes' display names
}

// New creates a Parse State over in, with the given initial user
// context (may be nil).
func New(in peg.Input, initialCtx interface{}) *State {
	return &State{
		input:          in,
		pos:            0,
		ctx:            initialCtx,
		journal:        newJournal(),
		stack:          newASTStack(),
		furthestPos:    int(peg.NoPosition),
		furthestCauses: treeset.NewWith(utils.StringComparator),
	}
}

// Input returns the input being parsed.
func (s *State) Input() peg.Input { return s.input }

// Pos returns the current position.
func (s *State) Pos() int { return s.pos }

// Advance moves the current position forward by n. Combinators that
// consume input call this directly; it is not journaled, since position
// is restored wholesale from a Snapshot on rollback.
func (s *State) Advance(n int) { s.pos += n }

// SetPos forces the current position. Used by the memo parser to jump
// to a cached end position on a hit; Rollback restores pos itself.
func (s *State) SetPos(p int) { s.pos = p }

// Ctx returns the current user-context value.
func (s *State) Ctx() interface{} { return s.ctx }

// SetCtx transactionally swaps the user-context value; like Pos, it is
// restored from the Snapshot on rollback rather than journaled.
func (s *State) SetCtx(ctx interface{}) { s.ctx = ctx }

// Stack gives read-only access to the AST stack's current values, for
// handing slices to user callbacks.
func (s *State) Stack() []interface{} { return s.stack.Values() }

// StackSize is the number of values currently on the AST stack; used by
// combinators to capture "the frame since the sub-parse began".
func (s *State) StackSize() int { return s.stack.size() }

// StackFrom returns the AST stack values pushed at or after index from.
func (s *State) StackFrom(from int) []interface{} { return s.stack.slice(from) }

// Push logs a reversible push of v onto the AST stack.
func (s *State) Push(v interface{}) {
	e := &pushEffect{stack: s.stack, value: v}
	e.Apply()
	s.journal.log(e)
}

// Splice replaces the AST stack frame [from:StackSize()) — optionally
// extended downward by lookback values — with a single value computed
// by a user callback, as a single reversible journal entry. With
// hasValue=false the frame is consumed and no replacement is pushed.
func (s *State) Splice(from, lookback int, value interface{}, hasValue bool) {
	e := &spliceEffect{stack: s.stack, from: from, lookback: lookback, value: value, hasValue: hasValue}
	e.Apply()
	s.journal.log(e)
}

// JournalLen returns the current journal length, for callers (e.g. the
// memo parser) that need to harvest a delta of effects applied during a
// sub-parse.
func (s *State) JournalLen() int { return s.journal.length() }

// JournalTailFrom returns the side effects logged at or after index
// from, in application order.
func (s *State) JournalTailFrom(from int) []SideEffect { return s.journal.tailFrom(from) }

// Replay re-applies a previously harvested delta and logs each effect
// again, so a later rollback undoes it correctly. AST-stack effects are
// rebound to this State's stack, so a delta harvested in another State
// replays onto this one.
func (s *State) Replay(delta []SideEffect) {
	rebound := make([]SideEffect, len(delta))
	for i, e := range delta {
		switch eff := e.(type) {
		case *pushEffect:
			e = &pushEffect{stack: s.stack, value: eff.value}
		case *spliceEffect:
			e = &spliceEffect{stack: s.stack, from: eff.from, lookback: eff.lookback, value: eff.value, hasValue: eff.hasValue}
		}
		rebound[i] = e
	}
	s.journal.replay(rebound)
}

// Snapshot captures (pos, journal length, ctx) for a later Rollback or
// Commit.
func (s *State) Snapshot() Snapshot {
	return Snapshot{pos: s.pos, journalLen: s.journal.length(), ctx: s.ctx}
}

// Commit is a no-op: it keeps every effect applied since the matching
// Snapshot.
func (s *State) Commit(Snapshot) {}

// Rollback undoes, in reverse order, every side effect logged since
// snap was taken, then restores pos and ctx from snap. Furthest-error
// fields are intentionally left untouched. It panics with a
// *peg.InternalInvariantError if snap's journal length exceeds the
// current journal length.
func (s *State) Rollback(snap Snapshot) {
	if snap.journalLen > s.journal.length() {
		panic(&peg.InternalInvariantError{
			Parser: "rollback",
			Detail: "snapshot journal length exceeds the current journal length",
		})
	}
	s.journal.rollbackTo(snap.journalLen)
	s.pos = snap.pos
	s.ctx = snap.ctx
}

// RecordError updates the furthest-error tracker: if pos is beyond the
// current furthest position, it becomes the new furthest position and
// the cause set resets to {p}; if pos equals the furthest position, p
// is added to the cause set; otherwise the call is ignored. This
// persists across Rollback by design.
func (s *State) RecordError(p peg.Named, pos int) {
	switch {
	case pos > s.furthestPos:
		s.furthestPos = pos
		s.furthestCauses.Clear()
		s.furthestCauses.Add(p.RuleName())
		tracer().Debugf("furthest error advanced to %d, cause %s", pos, p.RuleName())
	case pos == s.furthestPos:
		s.furthestCauses.Add(p.RuleName())
	}
}

// FurthestError returns the furthest position at which a leaf parser
// failed during this parse (peg.NoPosition if none yet), and the sorted
// display names of the parsers responsible.
func (s *State) FurthestError() (int, []string) {
	values := s.furthestCauses.Values()
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, v.(string))
	}
	return s.furthestPos, names
}
