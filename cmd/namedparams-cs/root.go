package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sirkon/namedparams/internal/config"
	"github.com/sirkon/namedparams/internal/csharp"
	"github.com/sirkon/namedparams/internal/report"
	"github.com/sirkon/namedparams/internal/scan"
)

// version is set at build time.
var version = "dev"

const projectURL = "https://github.com/sirkon/namedparams"

// errFindings signals that the run succeeded and reported diagnostics.
var errFindings = errors.New("diagnostics reported")

type rootOptions struct {
	format   scan.Format
	config   string
	excludes []string
	jobs     int
	verbose  bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := rootOptions{format: scan.FormatText}

	cmd := &cobra.Command{
		Use:           "namedparams-cs [flags] <paths...>",
		Short:         "Report C# calls with 4 or more arguments that are not all named",
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts, stdout, stderr)
		},
	}

	cmd.Flags().Var(&opts.format, "format", "output format: text, json or sarif")
	cmd.Flags().StringVar(&opts.config, "config", "", "path to YAML config file (default "+config.DefaultFileName+" if present)")
	cmd.Flags().StringArrayVar(&opts.excludes, "exclude", nil, "exclude paths matching the doublestar glob or whole path segments (repeatable)")
	cmd.Flags().IntVar(&opts.jobs, "jobs", 0, "number of files checked in parallel (default GOMAXPROCS)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts rootOptions, stdout, stderr io.Writer) error {
	logger := log.NewWithOptions(stderr, log.Options{Prefix: "namedparams-cs"})
	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	configPath := opts.config
	if configPath == "" {
		configPath = config.DefaultFileName
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.ExcludePaths = append(cfg.ExcludePaths, opts.excludes...)

	files, err := scan.Collect(args, cfg)
	if err != nil {
		return fmt.Errorf("collect files: %w", err)
	}
	logger.Debug("files collected", "count", len(files))

	scanner := scan.New(
		csharp.NewChecker(cfg.SkipCallees),
		scan.WithJobs(opts.jobs),
		scan.WithLogger(logger),
	)

	var r report.Reporter
	if err := scanner.Run(cmd.Context(), files, &r); err != nil {
		return fmt.Errorf("check files: %w", err)
	}

	meta := scan.Meta{
		Name:    "namedparams-cs",
		Version: version,
		URL:     projectURL,
	}
	if err := scan.Write(stdout, opts.format, meta, &r); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	if r.Len() > 0 {
		return errFindings
	}

	return nil
}
