package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// knownSkipFuncs are callees configured to never be checked.
type knownSkipFuncs struct {
	known map[string]struct{}
}

func newKnownSkipFuncs(custom []string) *knownSkipFuncs {
	known := make(map[string]struct{}, len(custom))
	for _, name := range custom {
		known[name] = struct{}{}
	}

	return &knownSkipFuncs{known: known}
}

// isSkipped checks if given call expression calls one of the skipped functions.
func (c *knownSkipFuncs) isSkipped(info *types.Info, call *ast.CallExpr) bool {
	if len(c.known) == 0 || info == nil {
		return false
	}

	obj := typeutil.Callee(info, call)
	if obj == nil {
		// Calls of func values and closures cannot be named in config.
		return false
	}

	fn, ok := packagedFuncOf(obj)
	if !ok {
		return false
	}

	_, ok = c.known[fn.String()]
	return ok
}
