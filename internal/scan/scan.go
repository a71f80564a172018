// Package scan checks sets of C# files in parallel.
package scan

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/sirkon/namedparams/internal/csharp"
	"github.com/sirkon/namedparams/internal/report"
)

// Scanner checks C# files.
type Scanner struct {
	checker *csharp.Checker
	logger  *log.Logger
	jobs    int
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithJobs limits the number of files checked at once. Non-positive values mean GOMAXPROCS.
func WithJobs(jobs int) Option {
	return func(s *Scanner) {
		if jobs > 0 {
			s.jobs = jobs
		}
	}
}

// WithLogger sets the logger progress is reported to.
func WithLogger(logger *log.Logger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New is [Scanner] constructor.
func New(checker *csharp.Checker, opts ...Option) *Scanner {
	s := &Scanner{
		checker: checker,
		logger:  log.NewWithOptions(os.Stderr, log.Options{Prefix: "scan"}),
		jobs:    runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run checks files and puts found diagnostics into the reporter.
// The first read or parse failure stops the run.
func (s *Scanner) Run(ctx context.Context, files []string, r *report.Reporter) error {
	if len(files) == 0 {
		s.logger.Warn("no files to check")
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(s.jobs, len(files)))

	// Parsers are not safe for concurrent use, keep one per worker slot.
	parsers := make(chan *csharp.Parser, min(s.jobs, len(files)))
	defer func() {
		close(parsers)
		for p := range parsers {
			p.Close()
		}
	}()

	for _, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			var p *csharp.Parser
			select {
			case p = <-parsers:
			default:
				p = csharp.NewParser()
			}
			defer func() { parsers <- p }()

			return s.checkFile(gctx, p, path, r)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Debug("scan finished", "files", len(files), "diagnostics", r.Len())
	return nil
}

func (s *Scanner) checkFile(ctx context.Context, p *csharp.Parser, path string, r *report.Reporter) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	f, err := p.Parse(ctx, path, src)
	if err != nil {
		return err
	}
	defer f.Close()

	if f.HasErrors() {
		s.logger.Warn("source has syntax errors, checking what was recognized", "file", path)
	}

	s.checker.CheckFile(f, r)
	s.logger.Debug("checked", "file", path)

	return nil
}
