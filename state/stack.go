package state

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// astStack is the parse-time AST stack: an ordered sequence of opaque
// pushed values, mutated only through side effects logged on the
// journal.
type astStack struct {
	values *arraylist.List
}

func newASTStack() *astStack {
	return &astStack{values: arraylist.New()}
}

func (s *astStack) size() int {
	return s.values.Size()
}

// slice returns a snapshot slice of values [from:size).
func (s *astStack) slice(from int) []interface{} {
	n := s.values.Size()
	if from >= n {
		return nil
	}
	out := make([]interface{}, 0, n-from)
	for i := from; i < n; i++ {
		v, _ := s.values.Get(i)
		out = append(out, v)
	}
	return out
}

// Values returns every value currently on the stack.
func (s *astStack) Values() []interface{} {
	return s.slice(0)
}

func (s *astStack) push(v interface{}) {
	s.values.Add(v)
}

// popFrom removes every value at index >= from and returns them, in the
// order they were pushed.
func (s *astStack) popFrom(from int) []interface{} {
	removed := s.slice(from)
	n := s.values.Size()
	for i := n - 1; i >= from; i-- {
		s.values.Remove(i)
	}
	return removed
}

// pushEffect is a reversible push of a single value.
type pushEffect struct {
	stack *astStack
	value interface{}
}

func (e *pushEffect) Apply() {
	e.stack.push(e.value)
}

func (e *pushEffect) Unapply() {
	e.stack.popFrom(e.stack.size() - 1)
}

// spliceEffect replaces the frame [from:size) with a single computed
// value produced by a build callback, optionally also consuming k
// values immediately below the frame (the "lookback" variant).
type spliceEffect struct {
	stack    *astStack
	from     int // start of the replaced frame, before lookback is applied
	lookback int // additional values below 'from' also consumed
	removed  []interface{}
	value    interface{}
	hasValue bool
}

func (e *spliceEffect) Apply() {
	start := e.from - e.lookback
	e.removed = e.stack.popFrom(start)
	if e.hasValue {
		e.stack.push(e.value)
	}
}

func (e *spliceEffect) Unapply() {
	if e.hasValue {
		e.stack.popFrom(e.stack.size() - 1)
	}
	for _, v := range e.removed {
		e.stack.push(v)
	}
}
