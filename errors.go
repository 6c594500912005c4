package peg

import "fmt"

// Named is implemented by anything that can report a display name for
// diagnostics — every combinator.Parser satisfies it, but state only
// needs the interface, not the concrete Parser type, to avoid an
// import cycle back into combinator.
type Named interface {
	RuleName() string
}

// GrammarIllFormedError is raised by the well-formedness visitor:
// unprotected left-recursion or an unbounded nullable repetition was
// found in the parser graph. Parsing is refused.
type GrammarIllFormedError struct {
	Reason    string
	Offenders []string
}

func (e *GrammarIllFormedError) Error() string {
	return fmt.Sprintf("grammar ill-formed: %s (%v)", e.Reason, e.Offenders)
}

// WrongInputModeError is raised when a grammar uses a character
// primitive against a token-mode Input, or vice versa.
type WrongInputModeError struct {
	Parser string
	Wanted Mode
	Got    Mode
}

func (e *WrongInputModeError) Error() string {
	return fmt.Sprintf("%s: wrong input mode, wanted %v got %v", e.Parser, e.Wanted, e.Got)
}

// MemoizerInconsistencyError is raised by a memo parser in debug mode
// when re-applying a cached delta produces state inconsistent with a
// fresh run of the delegate.
type MemoizerInconsistencyError struct {
	Parser string
	Detail string
}

func (e *MemoizerInconsistencyError) Error() string {
	return fmt.Sprintf("%s: memoizer inconsistency: %s", e.Parser, e.Detail)
}

// InternalInvariantError is raised by the journal/executor when a
// doparse returned true with the position moved backwards, or rollback
// found a mismatched journal length — programming errors in a Parser
// implementation, never a normal parse outcome.
type InternalInvariantError struct {
	Parser string
	Detail string
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("%s: internal invariant violated: %s", e.Parser, e.Detail)
}
