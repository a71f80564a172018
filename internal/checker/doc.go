// Package checker implements the named parameters rule over an abstract syntax node.
//
// Hosts (the go/analysis analyzer, the C# frontend) adapt their own syntax
// trees into Node values and hand them over one by one. The checker looks at
// nothing but the node kind, its argument list and its span:
//
//   - Invocation and Construction nodes with Threshold or more arguments where
//     at least one argument is positional produce exactly one Diagnostic;
//   - everything else produces nothing.
//
// The checker holds no state, it neither deduplicates nor remembers what it
// reported. Calling it twice for the same node yields two equal diagnostics.
package checker
