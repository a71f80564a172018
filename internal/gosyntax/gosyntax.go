// Package gosyntax adapts Go call-like expressions to checker nodes.
//
// Go has no named arguments, so every argument of a call expression is
// positional. Struct composite literals are the Go flavour of an object
// construction: keyed elements are named, the rest are positional.
package gosyntax

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/sirkon/namedparams/internal/checker"
)

var (
	_ checker.CallSite = (*Call)(nil)
	_ checker.CallSite = (*Composite)(nil)
)

// Adapter turns go/ast nodes into checker nodes.
type Adapter struct {
	fset *token.FileSet
	info *types.Info
}

// NewAdapter is [Adapter] constructor. info may be nil, then composite
// literals are never recognized as constructions and conversions are
// taken for calls.
func NewAdapter(fset *token.FileSet, info *types.Info) *Adapter {
	return &Adapter{fset: fset, info: info}
}

// Node wraps an ast node. Nodes that are neither calls nor struct literals
// come out as checker.KindOther.
func (a *Adapter) Node(n ast.Node) checker.Node {
	switch v := n.(type) {
	case *ast.CallExpr:
		return a.Call(v)
	case *ast.CompositeLit:
		return a.Composite(v)
	default:
		return &Other{span: a.span(n)}
	}
}

// Call wraps a call expression.
func (a *Adapter) Call(call *ast.CallExpr) *Call {
	return &Call{
		call:       call,
		span:       a.span(call),
		conversion: a.isConversion(call),
		args:       a.positional(call.Args),
	}
}

// Composite wraps a composite literal.
func (a *Adapter) Composite(lit *ast.CompositeLit) *Composite {
	res := &Composite{
		lit:  lit,
		span: a.span(lit),
	}
	if !a.isStruct(lit) {
		return res
	}

	res.isStruct = true
	res.args = make([]checker.Argument, 0, len(lit.Elts))
	for _, elt := range lit.Elts {
		arg := checker.Argument{Span: a.span(elt)}
		if kv, ok := elt.(*ast.KeyValueExpr); ok {
			if key, ok := kv.Key.(*ast.Ident); ok {
				arg.Name = key.Name
			}
		}
		res.args = append(res.args, arg)
	}

	return res
}

func (a *Adapter) positional(exprs []ast.Expr) []checker.Argument {
	res := make([]checker.Argument, len(exprs))
	for i, expr := range exprs {
		res[i] = checker.Argument{Span: a.span(expr)}
	}
	return res
}

// isConversion checks if the call is a type conversion like T(x).
func (a *Adapter) isConversion(call *ast.CallExpr) bool {
	if a.info == nil {
		return false
	}

	tv, ok := a.info.Types[call.Fun]
	return ok && tv.IsType()
}

func (a *Adapter) isStruct(lit *ast.CompositeLit) bool {
	if a.info == nil {
		return false
	}

	typ := a.info.TypeOf(lit)
	if typ == nil {
		return false
	}

	// Elided &T{...} inside []*T literals is recorded with the pointer type.
	if ptr, ok := typ.Underlying().(*types.Pointer); ok {
		typ = ptr.Elem()
	}

	_, ok := typ.Underlying().(*types.Struct)
	return ok
}

func (a *Adapter) span(n ast.Node) checker.Span {
	if n == nil || a.fset == nil {
		return checker.Span{}
	}

	start := a.fset.Position(n.Pos())
	end := a.fset.Position(n.End())
	return checker.Span{
		Filename: start.Filename,
		Start:    checker.Position{Line: start.Line, Column: start.Column, Offset: start.Offset},
		End:      checker.Position{Line: end.Line, Column: end.Column, Offset: end.Offset},
	}
}

// Call is a call expression.
type Call struct {
	call       *ast.CallExpr
	span       checker.Span
	conversion bool
	args       []checker.Argument
}

// Kind returns checker.KindInvocation, or checker.KindOther for type conversions.
func (c *Call) Kind() checker.Kind {
	if c.conversion {
		return checker.KindOther
	}
	return checker.KindInvocation
}

func (c *Call) Span() checker.Span { return c.span }

// Arguments all of them are positional.
func (c *Call) Arguments() ([]checker.Argument, bool) {
	if c.call == nil {
		return nil, false
	}
	return c.args, true
}

// Expr returns the wrapped expression.
func (c *Call) Expr() *ast.CallExpr { return c.call }

// Composite is a composite literal.
type Composite struct {
	lit      *ast.CompositeLit
	span     checker.Span
	isStruct bool
	args     []checker.Argument
}

// Kind returns checker.KindConstruction for struct literals and checker.KindOther otherwise.
func (c *Composite) Kind() checker.Kind {
	if c.isStruct {
		return checker.KindConstruction
	}
	return checker.KindOther
}

func (c *Composite) Span() checker.Span { return c.span }

func (c *Composite) Arguments() ([]checker.Argument, bool) {
	if !c.isStruct {
		return nil, false
	}
	return c.args, true
}

// Expr returns the wrapped literal.
func (c *Composite) Expr() *ast.CompositeLit { return c.lit }

// Other is any node the rule does not care about.
type Other struct {
	span checker.Span
}

func (o *Other) Kind() checker.Kind { return checker.KindOther }
func (o *Other) Span() checker.Span { return o.span }
