package checker

import (
	"slices"

	"github.com/sirkon/namedparams/internal/rules"
)

// Threshold is the argument count starting from which a call is checked.
const Threshold = rules.Threshold

// Reporter accepts diagnostics produced by the checker.
type Reporter interface {
	Report(d Diagnostic)
}

// Diagnostic is a single flagged call site.
type Diagnostic struct {
	Rule     rules.Rule
	Message  string
	Severity rules.Severity
	Span     Span
}

// ID returns the rule identifier of the diagnostic.
func (d Diagnostic) ID() string {
	return d.Rule.String()
}

func newDiagnostic(span Span) Diagnostic {
	rule := rules.NamedParameters()
	return Diagnostic{
		Rule:     rule,
		Message:  rule.Message(),
		Severity: rule.DefaultSeverity(),
		Span:     span,
	}
}

// Check decides whether the node violates the rule.
func Check(node Node) (Diagnostic, bool) {
	args, ok := argumentList(node)
	if !ok || len(args) < Threshold {
		return Diagnostic{}, false
	}

	if !slices.ContainsFunc(args, Argument.Positional) {
		return Diagnostic{}, false
	}

	return newDiagnostic(node.Span()), true
}

// Inspect runs Check and passes its diagnostic to the reporter, if there is one.
func Inspect(node Node, r Reporter) {
	d, ok := Check(node)
	if !ok {
		return
	}

	r.Report(d)
}

func argumentList(node Node) ([]Argument, bool) {
	if node == nil {
		return nil, false
	}

	switch node.Kind() {
	case KindInvocation, KindConstruction:
		cs, ok := node.(CallSite)
		if !ok {
			// Claims to be a call yet cannot show its arguments.
			return nil, false
		}

		return cs.Arguments()

	default:
		return nil, false
	}
}
