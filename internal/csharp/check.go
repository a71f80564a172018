package csharp

import (
	"context"
	"strings"

	"github.com/sirkon/namedparams/internal/checker"
)

// Checker runs the rule over parsed files.
type Checker struct {
	skipCallees map[string]struct{}
}

// NewChecker is [Checker] constructor. Calls to the listed callees are not
// checked. An entry matches either the whole called expression
// ("Console.WriteLine") or its last member ("WriteLine").
func NewChecker(skipCallees []string) *Checker {
	skip := make(map[string]struct{}, len(skipCallees))
	for _, name := range skipCallees {
		skip[name] = struct{}{}
	}

	return &Checker{skipCallees: skip}
}

// CheckFile reports every violating call site of the file.
func (c *Checker) CheckFile(f *File, r checker.Reporter) {
	f.Walk(func(n *Node) {
		if n.Kind() != checker.KindOther {
			if f.Ignored(n) || c.skipped(n) {
				return
			}
		}

		checker.Inspect(n, r)
	})
}

// CheckSource parses the source and checks it.
func (c *Checker) CheckSource(ctx context.Context, p *Parser, filename string, src []byte, r checker.Reporter) error {
	f, err := p.Parse(ctx, filename, src)
	if err != nil {
		return err
	}
	defer f.Close()

	c.CheckFile(f, r)
	return nil
}

func (c *Checker) skipped(n *Node) bool {
	if len(c.skipCallees) == 0 {
		return false
	}

	callee := stripTypeArguments(n.Callee())
	if callee == "" {
		return false
	}

	if _, ok := c.skipCallees[callee]; ok {
		return true
	}

	if i := strings.LastIndex(callee, "."); i >= 0 {
		_, ok := c.skipCallees[callee[i+1:]]
		return ok
	}

	return false
}

// stripTypeArguments turns Foo<int>.Bar<T> into Foo.Bar.
func stripTypeArguments(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}

	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
		case r == '>':
			depth--
		case depth == 0 && r != ' ':
			b.WriteRune(r)
		}
	}

	return b.String()
}
