package combinator

import (
	"fmt"

	"github.com/corvidlang/peg/state"
)

// Unbounded is the max value denoting an unlimited repeat count.
const Unbounded = -1

// Repeat greedily invokes its body through Run until it fails or max
// iterations have been reached, committing each successful iteration.
// It succeeds iff the count of successful iterations is >= min. The
// iteration that fails is rolled back by Run itself before Repeat stops.
// Because it is greedy, seq(repeat(p, 0, inf), p) can never succeed:
// the repeat always consumes every match of p it can find first.
type Repeat struct {
	body     Parser
	min, max int
}

var _ Parser = (*Repeat)(nil)

// Rep builds a Repeat of body, requiring at least min and at most max
// (or Unbounded) successful iterations.
func Rep(body Parser, min, max int) *Repeat {
	return &Repeat{body: body, min: min, max: max}
}

// Star is Rep(body, 0, Unbounded).
func Star(body Parser) *Repeat { return Rep(body, 0, Unbounded) }

// Plus is Rep(body, 1, Unbounded).
func Plus(body Parser) *Repeat { return Rep(body, 1, Unbounded) }

func (r *Repeat) doparse(st *state.State) bool {
	count := 0
	for r.max == Unbounded || count < r.max {
		if !Run(r.body, st) {
			break
		}
		count++
	}
	return count >= r.min
}

func (r *Repeat) Children() []Parser { return []Parser{r.body} }

// NullableGiven is true when zero iterations already satisfy min, or
// when the body itself is nullable.
func (r *Repeat) NullableGiven(nullable func(Parser) bool) bool {
	return r.min == 0 || nullable(r.body)
}

// LeftEdges returns the body — the first (and every subsequent) attempt
// starts at the position the repeat itself started at.
func (r *Repeat) LeftEdges(func(Parser) bool) []Parser { return []Parser{r.body} }

// Body returns the repeated sub-parser, for diagnostics.
func (r *Repeat) Body() Parser { return r.body }

// Max returns the configured maximum iteration count, or Unbounded.
func (r *Repeat) Max() int { return r.max }

func (r *Repeat) RuleName() string {
	if r.max == Unbounded {
		return fmt.Sprintf("repeat(%s, %d, inf)", r.body.RuleName(), r.min)
	}
	return fmt.Sprintf("repeat(%s, %d, %d)", r.body.RuleName(), r.min, r.max)
}
