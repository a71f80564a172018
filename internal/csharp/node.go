package csharp

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/sirkon/namedparams/internal/checker"
)

var _ checker.CallSite = (*Node)(nil)

// Node adapts a tree-sitter node to the checker.
type Node struct {
	node *sitter.Node
	file *File
}

// Type returns the tree-sitter node type.
func (n *Node) Type() string {
	return n.node.Type()
}

func (n *Node) Kind() checker.Kind {
	switch n.node.Type() {
	case "invocation_expression":
		return checker.KindInvocation
	case "object_creation_expression":
		return checker.KindConstruction
	default:
		return checker.KindOther
	}
}

func (n *Node) Span() checker.Span {
	return spanOf(n.file.Name, n.node)
}

// Arguments returns the arguments of the call, the list is absent for
// object creations with initializer only.
func (n *Node) Arguments() ([]checker.Argument, bool) {
	list := argumentList(n.node)
	if list == nil {
		return nil, false
	}

	var args []checker.Argument
	for i := 0; i < int(list.NamedChildCount()); i++ {
		arg := list.NamedChild(i)
		if arg == nil || arg.Type() != "argument" {
			// Comments and error nodes.
			continue
		}

		args = append(args, checker.Argument{
			Name: argumentName(arg, n.file.Source),
			Span: spanOf(n.file.Name, arg),
		})
	}

	return args, true
}

// Callee returns the called expression text of an invocation and the type
// name of an object creation. It is empty for anything else.
func (n *Node) Callee() string {
	var callee *sitter.Node
	switch n.node.Type() {
	case "invocation_expression":
		callee = n.node.ChildByFieldName("function")
	case "object_creation_expression":
		callee = n.node.ChildByFieldName("type")
	default:
		return ""
	}

	if callee == nil {
		callee = n.node.NamedChild(0)
	}
	if callee == nil {
		return ""
	}

	return callee.Content(n.file.Source)
}

func argumentList(n *sitter.Node) *sitter.Node {
	if list := n.ChildByFieldName("arguments"); list != nil && list.Type() == "argument_list" {
		return list
	}

	// Grammar versions without the arguments field.
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child != nil && child.Type() == "argument_list" {
			return child
		}
	}

	return nil
}

// argumentName returns the explicit parameter name of the argument, if any.
func argumentName(arg *sitter.Node, src []byte) string {
	if name := arg.ChildByFieldName("name"); name != nil {
		return name.Content(src)
	}

	for i := 0; i < int(arg.ChildCount()); i++ {
		child := arg.Child(i)
		if child == nil || child.Type() != "name_colon" {
			continue
		}

		if id := child.NamedChild(0); id != nil {
			return id.Content(src)
		}
		return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(child.Content(src)), ":"))
	}

	// identifier ':' expression without a field.
	var head []*sitter.Node
	for i := 0; i < int(arg.ChildCount()) && len(head) < 2; i++ {
		child := arg.Child(i)
		if child == nil || child.Type() == "comment" {
			continue
		}
		head = append(head, child)
	}
	if len(head) == 2 && head[0].Type() == "identifier" && head[1].Type() == ":" {
		return head[0].Content(src)
	}

	return ""
}

func spanOf(filename string, n *sitter.Node) checker.Span {
	start, end := n.StartPoint(), n.EndPoint()
	return checker.Span{
		Filename: filename,
		Start: checker.Position{
			Line:   int(start.Row) + 1,
			Column: int(start.Column) + 1,
			Offset: int(n.StartByte()),
		},
		End: checker.Position{
			Line:   int(end.Row) + 1,
			Column: int(end.Column) + 1,
			Offset: int(n.EndByte()),
		},
	}
}
