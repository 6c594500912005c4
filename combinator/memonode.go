package combinator

import (
	"github.com/corvidlang/peg"
	"github.com/corvidlang/peg/memo"
	"github.com/corvidlang/peg/state"
)

// MemoNode wraps a delegate parser with a memo.Memoizer. A cache hit
// re-applies the recorded delta and advances position without
// re-running the delegate; a recorded failure fails immediately;
// otherwise it runs the delegate once, harvests the journal tail it
// produced as a delta, and records the outcome either way.
type MemoNode struct {
	delegate Parser
	memoizer memo.Memoizer
	debug    bool
}

var _ Parser = (*MemoNode)(nil)

// Memoize wraps delegate with m. When debug is true, a cache hit is
// cross-checked against a fresh run of the delegate, raising
// peg.MemoizerInconsistencyError on any mismatch — an expensive
// assertion meant for test suites, not production parses.
func Memoize(delegate Parser, m memo.Memoizer, debug bool) *MemoNode {
	return &MemoNode{delegate: delegate, memoizer: m, debug: debug}
}

func (n *MemoNode) doparse(st *state.State) bool {
	pos := st.Pos()
	ctx := st.Ctx()
	if entry, hit := n.memoizer.Get(n.delegate, pos, ctx); hit {
		if n.debug {
			n.crossCheck(st, pos, entry)
		}
		if entry.Failed() {
			return false
		}
		st.Replay(entry.Delta)
		st.SetPos(entry.EndPos)
		return true
	}
	start := st.JournalLen()
	ok := Run(n.delegate, st)
	entry := memo.Entry{StartPos: pos, EndPos: -1, Ctx: ctx}
	if ok {
		entry.EndPos = st.Pos()
		entry.Delta = st.JournalTailFrom(start)
	}
	n.memoizer.Put(n.delegate, pos, ctx, entry)
	return ok
}

// crossCheck verifies a cache hit would have been indistinguishable
// from a fresh run. Since state cannot cheaply be duplicated wholesale,
// it instead checks that a fresh run from the same snapshot yields the
// same end position and delta length as the cached entry, then rolls
// the probe back.
func (n *MemoNode) crossCheck(st *state.State, pos int, entry memo.Entry) {
	snap := st.Snapshot()
	start := st.JournalLen()
	ok := Run(n.delegate, st)
	freshEnd := -1
	freshDeltaLen := 0
	if ok {
		freshEnd = st.Pos()
		freshDeltaLen = len(st.JournalTailFrom(start))
	}
	st.Rollback(snap)
	if ok == !entry.Failed() && freshEnd == entry.EndPos && freshDeltaLen == len(entry.Delta) {
		return
	}
	panic(&peg.MemoizerInconsistencyError{
		Parser: n.RuleName(),
		Detail: "cached entry diverges from a fresh run at the same position",
	})
}

func (n *MemoNode) Children() []Parser { return []Parser{n.delegate} }
func (n *MemoNode) RuleName() string   { return "memo(" + n.delegate.RuleName() + ")" }

func (n *MemoNode) NullableGiven(nullable func(Parser) bool) bool { return nullable(n.delegate) }
func (n *MemoNode) LeftEdges(func(Parser) bool) []Parser          { return []Parser{n.delegate} }
