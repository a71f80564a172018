// Command namedparams reports calls with 4 or more arguments where not every argument is named.
//
// Go has no named arguments, so for Go sources the rule boils down to two
// cases: calls with 4 or more arguments, and unkeyed struct literals with 4
// or more fields.
//
// Usage:
//
//	namedparams [-config=.namedparams.yaml] ./...
//	go vet -vettool=$(which namedparams) ./...
package main

import (
	"fmt"
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/analysis/singlechecker"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/namedparams/internal/checker"
	"github.com/sirkon/namedparams/internal/config"
	"github.com/sirkon/namedparams/internal/gosyntax"
	"github.com/sirkon/namedparams/internal/rules"
)

const doc = `namedparams checks that calls with many arguments name them

Calls and struct literals with 4 or more arguments are reported unless
every argument is named. In Go this means keyed struct literals are fine
and plain calls with 4 or more arguments are not.`

const analyzerURL = "https://github.com/sirkon/namedparams"

// configPath is bound to the -config flag.
var configPath string

// Analyzer is the main entry point for the linter
var Analyzer = &analysis.Analyzer{
	Name:     "namedparams",
	Doc:      doc,
	URL:      analyzerURL,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "", "path to YAML config file")
}

func main() {
	singlechecker.Main(Analyzer)
}

func run(pass *analysis.Pass) (any, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	skipped := newKnownSkipFuncs(cfg.SkipCallees)
	ignored := collectIgnoreDirectives(pass.Fset, pass.Files)
	adapter := gosyntax.NewAdapter(pass.Fset, pass.TypesInfo)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
		(*ast.CompositeLit)(nil),
	}

	pector.Preorder(nodeFilter, func(node ast.Node) {
		if cfg.Skips(pass.Fset.Position(node.Pos()).Filename) {
			return
		}

		if ignored.covers(pass.Fset, node.Pos()) {
			return
		}

		if call, ok := node.(*ast.CallExpr); ok && skipped.isSkipped(pass.TypesInfo, call) {
			return
		}

		checkCallSite(pass, adapter, node)
	})

	return nil, nil
}

// checkCallSite reports the node if it violates the rule.
func checkCallSite(pass *analysis.Pass, adapter *gosyntax.Adapter, node ast.Node) {
	d, ok := checker.Check(adapter.Node(node))
	if !ok {
		return
	}

	pass.Report(analysis.Diagnostic{
		Pos:      node.Pos(),
		End:      node.End(),
		Category: d.ID(),
		Message:  d.Message,
		URL:      ruleURL(d.Rule),
	})
}

func ruleURL(r rules.Rule) string {
	return analyzerURL + "#" + r.String()
}
