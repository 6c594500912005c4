package analysis

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/corvidlang/peg/combinator"
)

// Kind distinguishes the two kinds of diagnostic the visitor reports.
type Kind int

const (
	// LeftRecursion marks an unprotected left-recursive cycle.
	LeftRecursion Kind = iota
	// NullableUnboundedRepeat marks a repeat(body, _, Unbounded) whose
	// body can match without consuming input, and would therefore loop
	// forever.
	NullableUnboundedRepeat
)

func (k Kind) String() string {
	switch k {
	case LeftRecursion:
		return "left-recursion"
	case NullableUnboundedRepeat:
		return "nullable-unbounded-repeat"
	default:
		return "unknown"
	}
}

// Diagnostic is a single well-formedness violation.
type Diagnostic struct {
	Kind    Kind
	Rule    string   // the rule name of the offending parser
	Cycle   []string // populated for LeftRecursion: the cycle's rule names
	Message string
}

func (d Diagnostic) String() string { return d.Message }

// Check runs every well-formedness check over the graph reachable from
// root and returns every diagnostic found, sorted for deterministic
// output. An empty result means root is well-formed.
func Check(root combinator.Parser) []Diagnostic {
	nullable := nullableSet(root)

	var diags []Diagnostic
	diags = append(diags, leftRecursionDiagnostics(root, nullable)...)
	diags = append(diags, nullableRepeatDiagnostics(root, nullable)...)

	slices.SortFunc(diags, func(a, b Diagnostic) int {
		if a.Kind != b.Kind {
			return int(a.Kind) - int(b.Kind)
		}
		return strings.Compare(a.Rule, b.Rule)
	})
	tracer().Debugf("well-formedness check found %d diagnostic(s)", len(diags))
	return diags
}

func leftRecursionDiagnostics(root combinator.Parser, nullable map[combinator.Parser]bool) []Diagnostic {
	var diags []Diagnostic
	seen := map[string]bool{}
	for _, cycle := range findLeftRecursiveCycles(root, nullable) {
		if anyHandled(cycle) {
			continue
		}
		names := cycleNames(cycle)
		key := fmt.Sprint(names)
		if seen[key] {
			continue
		}
		seen[key] = true
		diags = append(diags, Diagnostic{
			Kind:    LeftRecursion,
			Rule:    names[0],
			Cycle:   names,
			Message: fmt.Sprintf("unprotected left recursion through %v", names),
		})
	}
	return diags
}

func nullableRepeatDiagnostics(root combinator.Parser, nullable map[combinator.Parser]bool) []Diagnostic {
	var diags []Diagnostic
	for _, p := range discover(root) {
		rep, ok := p.(*combinator.Repeat)
		if !ok || rep.Max() != combinator.Unbounded {
			continue
		}
		if nullable[rep.Body()] {
			diags = append(diags, Diagnostic{
				Kind:    NullableUnboundedRepeat,
				Rule:    rep.RuleName(),
				Message: fmt.Sprintf("%s repeats a nullable body without an upper bound", rep.RuleName()),
			})
		}
	}
	return diags
}
