package rules

import (
	"fmt"
	"strconv"
)

// Threshold is the argument count starting from which every argument of a call must be named.
const Threshold = 4

// Rule represents a namedparams rule code.
type Rule int

const (
	ruleInvalid Rule = iota

	NP001NamedParameters
)

var ruleIDs = map[Rule]string{
	NP001NamedParameters: "NamedParametersAnalyzer",
}

// NamedParameters is the only rule: calls with Threshold or more arguments must name them all.
func NamedParameters() Rule { return NP001NamedParameters }

// String returns the rule identifier.
func (r Rule) String() string {
	v, ok := ruleIDs[r]
	if !ok {
		return fmt.Sprintf("rule-unknown(%d)", r)
	}

	return v
}

// Title returns a short headline of the rule.
func (r Rule) Title() string {
	switch r {
	case NP001NamedParameters:
		return "Method calls with " + strconv.Itoa(Threshold) + " or more parameters should be named"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Message returns the text attached to every diagnostic of the rule.
func (r Rule) Message() string {
	switch r {
	case NP001NamedParameters:
		return "Method calls with " + strconv.Itoa(Threshold) + " or more parameters have param names"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case NP001NamedParameters:
		return "Check that calls with many parameters has their names"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Category groups rules for hosts that support filtering by it.
func (r Rule) Category() string {
	switch r {
	case NP001NamedParameters:
		return "Naming"
	default:
		return ""
	}
}

// DefaultSeverity is the severity diagnostics of the rule are reported with.
func (r Rule) DefaultSeverity() Severity {
	switch r {
	case NP001NamedParameters:
		return SeverityWarning
	default:
		return SeverityInvalid
	}
}

// EnabledByDefault tells if a host should run the rule without explicit opt-in.
func (r Rule) EnabledByDefault() bool {
	return r == NP001NamedParameters
}

// All lists every known rule.
func All() []Rule {
	return []Rule{NP001NamedParameters}
}
