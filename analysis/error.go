package analysis

import "github.com/corvidlang/peg"

// AsError collapses diags into a single peg.GrammarIllFormedError, or
// returns nil if diags is empty. driver.Compile uses this to surface a
// well-formedness failure through the same error taxonomy as every
// other structural error.
func AsError(diags []Diagnostic) *peg.GrammarIllFormedError {
	if len(diags) == 0 {
		return nil
	}
	offenders := make([]string, len(diags))
	reason := diags[0].Kind.String()
	for i, d := range diags {
		offenders[i] = d.Message
		if d.Kind.String() != reason {
			reason = "multiple"
		}
	}
	return &peg.GrammarIllFormedError{Reason: reason, Offenders: offenders}
}
