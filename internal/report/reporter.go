// Package report collects diagnostics found by hosts running the checker.
package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/sirkon/namedparams/internal/checker"
)

var _ checker.Reporter = (*Reporter)(nil)

// Reporter collects diagnostics. It is safe for concurrent use.
type Reporter struct {
	mu      sync.Mutex
	reports []checker.Diagnostic
}

// Report adds a new record to the reporter.
func (r *Reporter) Report(d checker.Diagnostic) {
	r.mu.Lock()
	r.reports = append(r.reports, d)
	r.mu.Unlock()
}

// Len returns the number of collected records.
func (r *Reporter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

// Reports returns a snapshot of all collected records ordered by location.
func (r *Reporter) Reports() []checker.Diagnostic {
	r.mu.Lock()
	out := make([]checker.Diagnostic, len(r.reports))
	copy(out, r.reports)
	r.mu.Unlock()

	slices.SortStableFunc(out, compareDiagnostics)
	return out
}

// WriteText prints all collected reports in a compact, human-readable form.
func (r *Reporter) WriteText(w io.Writer) error {
	for _, rep := range r.Reports() {
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s: %s [%s]\n",
			rep.Span.Filename,
			rep.Span.Start.Line,
			rep.Span.Start.Column,
			rep.Severity,
			rep.Message,
			rep.ID(),
		); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	return nil
}

func compareDiagnostics(a, b checker.Diagnostic) int {
	return cmp.Or(
		cmp.Compare(a.Span.Filename, b.Span.Filename),
		cmp.Compare(a.Span.Start.Line, b.Span.Start.Line),
		cmp.Compare(a.Span.Start.Column, b.Span.Start.Column),
		cmp.Compare(a.Span.Start.Offset, b.Span.Start.Offset),
	)
}
