// Package config loads host-side settings of namedparams.
//
// Settings only decide which nodes reach the checker at all. The rule
// itself, its threshold included, is not configurable.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up by hosts when no config path was given.
const DefaultFileName = ".namedparams.yaml"

// Config holds settings loaded from YAML.
type Config struct {
	// ExcludePaths lists doublestar globs or plain paths. A glob is matched
	// against the path and its trailing subpaths, a plain path against whole
	// path segments. Files matching any of them are not checked.
	ExcludePaths []string `yaml:"exclude_paths"`

	// SkipTests excludes Go _test.go files and C# *Tests.cs / *Test.cs files.
	SkipTests bool `yaml:"skip_tests"`

	// SkipCallees lists callees whose calls are never checked. Go callees are
	// written as "pkgpath.Func" or "pkgpath.Type.Method", C# ones as the
	// called member name ("Console.WriteLine", "Format").
	SkipCallees []string `yaml:"skip_callees"`
}

// Load reads and parses the config file. An empty path or a missing file
// results in an empty config.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML config data. Unknown fields are an error.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty document.
			return &Config{}, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	for _, pattern := range cfg.ExcludePaths {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	return &cfg, nil
}

// ExcludesPath checks whether the file path matches any of the exclude_paths entries.
func (c *Config) ExcludesPath(path string) bool {
	if c == nil {
		return false
	}

	slashed := filepath.ToSlash(path)
	for _, pattern := range c.ExcludePaths {
		if pattern == "" {
			continue
		}

		if !containsMeta(pattern) {
			if containsSegments(slashed, pattern) {
				return true
			}
			continue
		}

		if matchSuffix(pattern, slashed) {
			return true
		}
	}

	return false
}

// containsSegments checks if the plain pattern is a run of whole path
// segments of the path: "vendor/" and "gen" match "src/gen/a.cs", "A.cs"
// does not match "DATA.cs".
func containsSegments(path, pattern string) bool {
	pattern = strings.Trim(pattern, "/")
	return strings.Contains("/"+path+"/", "/"+pattern+"/")
}

func containsMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{\\")
}

// matchSuffix matches the pattern against the path and each of its trailing
// subpaths, so that relative patterns work for absolute paths too.
func matchSuffix(pattern, path string) bool {
	for {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}

		i := strings.IndexByte(path, '/')
		if i < 0 {
			return false
		}
		path = path[i+1:]
	}
}

// IsTestFile tells if the path looks like a test source.
func IsTestFile(path string) bool {
	base := filepath.Base(path)
	switch {
	case strings.HasSuffix(base, "_test.go"):
		return true
	case strings.HasSuffix(base, "Tests.cs"), strings.HasSuffix(base, "Test.cs"):
		return true
	default:
		return false
	}
}

// Skips combines the path related settings: exclusions and tests.
func (c *Config) Skips(path string) bool {
	if c == nil {
		return false
	}

	if c.SkipTests && IsTestFile(path) {
		return true
	}

	return c.ExcludesPath(path)
}
