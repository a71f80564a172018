package main

import (
	"go/ast"
	"go/token"

	"github.com/sirkon/namedparams/internal/directive"
)

// A directive works on the line it is placed on and on the line right after it.

type lineKey struct {
	file *token.File
	line int
}

type ignoreLines map[lineKey]struct{}

func collectIgnoreDirectives(fset *token.FileSet, files []*ast.File) ignoreLines {
	res := ignoreLines{}
	for _, file := range files {
		for _, group := range file.Comments {
			for _, comment := range group.List {
				if !directive.Matches(comment.Text) {
					continue
				}

				tf := fset.File(comment.Pos())
				if tf == nil {
					continue
				}
				res[lineKey{file: tf, line: tf.Line(comment.Pos())}] = struct{}{}
			}
		}
	}

	return res
}

// covers checks if the position is on a line switched off by a directive.
func (l ignoreLines) covers(fset *token.FileSet, pos token.Pos) bool {
	if len(l) == 0 {
		return false
	}

	tf := fset.File(pos)
	if tf == nil {
		return false
	}

	line := tf.Line(pos)
	if _, ok := l[lineKey{file: tf, line: line}]; ok {
		return true
	}

	_, ok := l[lineKey{file: tf, line: line - 1}]
	return ok
}
