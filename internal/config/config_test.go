package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sirkon/deepequal"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty path returns empty config", func(t *testing.T) {
		t.Parallel()
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cfg.ExcludePaths) != 0 || len(cfg.SkipCallees) != 0 || cfg.SkipTests {
			t.Errorf("expected empty config, got %+v", cfg)
		}
	})

	t.Run("nonexistent file returns empty config", func(t *testing.T) {
		t.Parallel()
		cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(cfg, &Config{}) {
			t.Errorf("expected empty config, got %+v", cfg)
		}
	})

	t.Run("valid YAML parses correctly", func(t *testing.T) {
		t.Parallel()
		content := `
exclude_paths:
  - "**/generated/**"
  - vendor/
skip_tests: true
skip_callees:
  - fmt.Printf
  - example.com/pkg.Type.Method
`
		path := filepath.Join(t.TempDir(), "namedparams.yaml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := &Config{
			ExcludePaths: []string{"**/generated/**", "vendor/"},
			SkipTests:    true,
			SkipCallees:  []string{"fmt.Printf", "example.com/pkg.Type.Method"},
		}
		if !reflect.DeepEqual(expected, cfg) {
			deepequal.SideBySide(t, "config", expected, cfg)
		}
	})

	t.Run("empty file returns empty config", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "empty.yaml")
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(cfg, &Config{}) {
			t.Errorf("expected empty config, got %+v", cfg)
		}
	})

	t.Run("invalid YAML returns error", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("exclude_paths: [unterminated"), 0o644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		if _, err := Load(path); err == nil {
			t.Fatal("expected error for invalid YAML")
		}
	})

	t.Run("unknown field returns error", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "threshold.yaml")
		if err := os.WriteFile(path, []byte("threshold: 6\n"), 0o644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		if _, err := Load(path); err == nil {
			t.Fatal("expected error for unknown field")
		}
	})

	t.Run("bad glob returns error", func(t *testing.T) {
		t.Parallel()
		if _, err := Parse([]byte("exclude_paths: [\"[a-\"]\n")); err == nil {
			t.Fatal("expected error for malformed pattern")
		}
	})
}

func TestConfig_Skips(t *testing.T) {
	cfg := &Config{
		ExcludePaths: []string{"**/generated/**", "vendor/", "*.Designer.cs"},
		SkipTests:    true,
	}

	tests := []struct {
		path string
		want bool
	}{
		{path: "src/generated/api/Client.cs", want: true},
		{path: "src/vendor/lib.go", want: true},
		{path: "Form1.Designer.cs", want: true},
		{path: "pkg/handler_test.go", want: true},
		{path: "tests/PointTests.cs", want: true},
		{path: "src/Program.cs", want: false},
		{path: "pkg/handler.go", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := cfg.Skips(tt.path); got != tt.want {
				t.Errorf("Skips(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}

	var nilCfg *Config
	if nilCfg.Skips("anything.go") {
		t.Error("nil config must not skip anything")
	}
}

func TestConfig_ExcludesAbsolutePaths(t *testing.T) {
	cfg := &Config{ExcludePaths: []string{"src/generated/**"}}

	if !cfg.ExcludesPath("/home/user/project/src/generated/Client.cs") {
		t.Error("relative pattern must match absolute path")
	}
	if cfg.ExcludesPath("/home/user/project/src/Program.cs") {
		t.Error("unexpected exclusion")
	}
}

func TestConfig_ExcludesPlainPaths(t *testing.T) {
	cfg := &Config{ExcludePaths: []string{"A.cs", "gen", "src/legacy/"}}

	tests := []struct {
		path string
		want bool
	}{
		{path: "src/A.cs", want: true},
		{path: "A.cs", want: true},
		{path: "src/DATA.cs", want: false},
		{path: "src/A.cs.bak", want: false},
		{path: "gen/Client.cs", want: true},
		{path: "/abs/project/gen/Client.cs", want: true},
		{path: "generated/Client.cs", want: false},
		{path: "src/legacy/Old.cs", want: true},
		{path: "other/src/legacy/Old.cs", want: true},
		{path: "src/legacy2/Old.cs", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := cfg.ExcludesPath(tt.path); got != tt.want {
				t.Errorf("ExcludesPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
