package combinator

import (
	"github.com/corvidlang/peg/state"
)

// Optional runs its body and always succeeds — if the body failed,
// Run has already restored state. Optional is nullable.
type Optional struct {
	body Parser
}

var _ Parser = (*Optional)(nil)

// Opt builds an Optional wrapping body.
func Opt(body Parser) *Optional {
	return &Optional{body: body}
}

func (o *Optional) doparse(st *state.State) bool {
	Run(o.body, st)
	return true
}

func (o *Optional) Children() []Parser { return []Parser{o.body} }
func (o *Optional) RuleName() string   { return "optional(" + o.body.RuleName() + ")" }

func (o *Optional) NullableGiven(func(Parser) bool) bool { return true }
func (o *Optional) LeftEdges(func(Parser) bool) []Parser { return []Parser{o.body} }
