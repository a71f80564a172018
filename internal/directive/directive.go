// Package directive recognizes comments switching the check off.
//
// Two forms are accepted, both at the very start of a comment:
//
//	//namedparams:ignore [reason]
//	//nolint:errcheck,namedparams [reason]
package directive

import (
	"strings"
)

const (
	ignore      = "namedparams:ignore"
	nolint      = "nolint:"
	linterName  = "namedparams"
	lineComment = "//"
)

// Matches checks if the comment text, markers included, is an ignore directive.
func Matches(comment string) bool {
	text, ok := stripMarkers(comment)
	if !ok {
		return false
	}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}

	head := fields[0]
	if head == ignore {
		return true
	}

	list, ok := strings.CutPrefix(head, nolint)
	if !ok {
		return false
	}
	for name := range strings.SplitSeq(list, ",") {
		if name == linterName {
			return true
		}
	}

	return false
}

func stripMarkers(comment string) (string, bool) {
	if text, ok := strings.CutPrefix(comment, lineComment); ok {
		return text, true
	}

	if text, ok := strings.CutPrefix(comment, "/*"); ok {
		return strings.TrimSuffix(text, "*/"), true
	}

	return "", false
}
