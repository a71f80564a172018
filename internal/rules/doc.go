// Package rules defines the identity of the diagnostics namedparams emits.
//
// A rule carries everything a host needs to present a finding: a stable
// identifier, a title, the message text, a longer description, a category
// and the default severity. The values are fixed and must not change between
// releases, external tooling filters findings by them.
//
// Example:
//
//	rules.NamedParameters().String()  → "NamedParametersAnalyzer"
//	rules.NamedParameters().Message() → "Method calls with 4 or more parameters have param names"
package rules
