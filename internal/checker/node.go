package checker

import (
	"fmt"
)

// Kind is the variant of a syntax node as far as the rule is concerned.
type Kind int

const (
	KindOther Kind = iota

	// KindInvocation is a method or function call.
	KindInvocation

	// KindConstruction is an object construction expression.
	KindConstruction
)

var kindValueMap = map[Kind]string{
	KindOther:        "other",
	KindInvocation:   "invocation",
	KindConstruction: "construction",
}

func (k Kind) String() string {
	v, ok := kindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

// Position is a point in a source file. Line and Column are 1-based, Offset is 0-based.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Span is a source range of a node.
type Span struct {
	Filename string
	Start    Position
	End      Position
}

func (s Span) String() string {
	return fmt.Sprintf("%s:%d:%d", s.Filename, s.Start.Line, s.Start.Column)
}

// Argument is a single call argument.
type Argument struct {
	// Name is the explicit parameter name binding, empty for positional arguments.
	Name string
	Span Span
}

// Named tells if the argument carries a parameter name binding.
func (a Argument) Named() bool {
	return a.Name != ""
}

// Positional is the opposite of Named.
func (a Argument) Positional() bool {
	return a.Name == ""
}

// Node is a syntax node of a host tree.
type Node interface {
	Kind() Kind
	Span() Span
}

// CallSite is a node that may have an argument list, i.e. an invocation or a construction.
type CallSite interface {
	Node

	// Arguments returns the argument list of the call. ok is false when
	// the node has no argument list at all, which is different from an
	// empty one: new Point { X = 1 } has no list, Foo() has an empty one.
	Arguments() (args []Argument, ok bool)
}
