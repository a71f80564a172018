package csharp

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"

	"github.com/sirkon/namedparams/internal/directive"
)

// Extension is the file extension of C# sources.
const Extension = ".cs"

// Parser parses C# sources. It is not safe for concurrent use, make one per goroutine.
type Parser struct {
	parser *sitter.Parser
}

// NewParser is [Parser] constructor.
func NewParser() *Parser {
	parser := sitter.NewParser()
	parser.SetLanguage(csharp.GetLanguage())

	return &Parser{parser: parser}
}

// Close releases the underlying parser.
func (p *Parser) Close() {
	p.parser.Close()
}

// Parse parses a single source file.
func (p *Parser) Parse(ctx context.Context, filename string, src []byte) (*File, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	f := &File{
		Name:   filename,
		Source: src,
		tree:   tree,
	}
	f.ignored = f.collectIgnoredLines()

	return f, nil
}

// File is a parsed C# source.
type File struct {
	Name   string
	Source []byte

	tree    *sitter.Tree
	ignored map[int]struct{}
}

// Close releases the syntax tree.
func (f *File) Close() {
	f.tree.Close()
}

// HasErrors tells if the source has syntax errors.
func (f *File) HasErrors() bool {
	return f.tree.RootNode().HasError()
}

// Walk calls fn for every named node of the tree in preorder.
func (f *File) Walk(fn func(n *Node)) {
	walk(f, f.tree.RootNode(), fn)
}

func walk(f *File, n *sitter.Node, fn func(n *Node)) {
	if n == nil {
		return
	}

	fn(&Node{node: n, file: f})
	for i := 0; i < int(n.NamedChildCount()); i++ {
		walk(f, n.NamedChild(i), fn)
	}
}

// Ignored checks if the node starts on a line switched off by a directive.
func (f *File) Ignored(n *Node) bool {
	if len(f.ignored) == 0 {
		return false
	}

	line := n.Span().Start.Line
	if _, ok := f.ignored[line]; ok {
		return true
	}

	_, ok := f.ignored[line-1]
	return ok
}

func (f *File) collectIgnoredLines() map[int]struct{} {
	res := map[int]struct{}{}
	f.Walk(func(n *Node) {
		if n.node.Type() != "comment" {
			return
		}

		if directive.Matches(n.node.Content(f.Source)) {
			res[int(n.node.StartPoint().Row)+1] = struct{}{}
		}
	})

	return res
}
