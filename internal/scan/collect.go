package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sirkon/namedparams/internal/config"
	"github.com/sirkon/namedparams/internal/csharp"
)

// Collect expands arguments into a sorted list of C# source files.
//
// An argument can be a file (taken as is, whatever its extension), a
// directory (searched recursively for *.cs) or a doublestar glob
// ("src/**/*.cs"). Files skipped by the config are dropped, except the ones
// named explicitly.
func Collect(patterns []string, cfg *config.Config) ([]string, error) {
	seen := map[string]struct{}{}
	var res []string
	add := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		res = append(res, path)
	}

	for _, pattern := range patterns {
		if containsGlob(pattern) {
			matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("expand pattern %q: %w", pattern, err)
			}
			for _, match := range matches {
				if !cfg.Skips(match) {
					add(match)
				}
			}
			continue
		}

		info, err := os.Stat(pattern)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", pattern, err)
		}

		if !info.IsDir() {
			add(pattern)
			continue
		}

		matches, err := doublestar.Glob(os.DirFS(pattern), "**/*"+csharp.Extension, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("walk directory %s: %w", pattern, err)
		}
		for _, match := range matches {
			path := filepath.Join(pattern, filepath.FromSlash(match))
			if !cfg.Skips(path) {
				add(path)
			}
		}
	}

	slices.Sort(res)
	return res, nil
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
