package scan

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirkon/namedparams/internal/config"
	"github.com/sirkon/namedparams/internal/csharp"
	"github.com/sirkon/namedparams/internal/report"
)

const flagged = `class A
{
    void M()
    {
        Foo(1, 2, 3, 4);
    }
}
`

const clean = `class B
{
    void M()
    {
        Foo(a: 1, b: 2, c: 3, d: 4);
    }
}
`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return root
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestCollect(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"src/A.cs":               flagged,
		"src/B.cs":               clean,
		"src/readme.md":          "# nothing",
		"src/generated/G.cs":     flagged,
		"tests/ATests.cs":        flagged,
		"scripts/build.csx":      flagged,
		"src/nested/deeper/D.cs": clean,
	})

	cfg := &config.Config{
		ExcludePaths: []string{"**/generated/**"},
		SkipTests:    true,
	}

	t.Run("directory", func(t *testing.T) {
		files, err := Collect([]string{root}, cfg)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(root, "src", "A.cs"),
			filepath.Join(root, "src", "B.cs"),
			filepath.Join(root, "src", "nested", "deeper", "D.cs"),
		}, files)
	})

	t.Run("glob", func(t *testing.T) {
		files, err := Collect([]string{filepath.Join(root, "src", "*.cs")}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(root, "src", "A.cs"),
			filepath.Join(root, "src", "B.cs"),
		}, files)
	})

	t.Run("explicit file and duplicates", func(t *testing.T) {
		script := filepath.Join(root, "scripts", "build.csx")
		files, err := Collect([]string{script, script, filepath.Join(root, "scripts")}, cfg)
		require.NoError(t, err)
		assert.Equal(t, []string{script}, files)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := Collect([]string{filepath.Join(root, "missing")}, cfg)
		require.Error(t, err)
	})
}

func TestScanner_Run(t *testing.T) {
	files := map[string]string{}
	for i := 0; i < 20; i++ {
		name := filepath.Join("src", string(rune('a'+i))+".cs")
		if i%2 == 0 {
			files[name] = flagged
		} else {
			files[name] = clean
		}
	}
	root := writeFiles(t, files)

	paths, err := Collect([]string{root}, nil)
	require.NoError(t, err)
	require.Len(t, paths, 20)

	s := New(csharp.NewChecker(nil), WithJobs(3), WithLogger(quietLogger()))

	var r report.Reporter
	require.NoError(t, s.Run(context.Background(), paths, &r))
	require.Equal(t, 10, r.Len())

	for _, d := range r.Reports() {
		assert.Equal(t, 5, d.Span.Start.Line)
		assert.Equal(t, 9, d.Span.Start.Column)
	}
}

func TestScanner_RunErrors(t *testing.T) {
	s := New(csharp.NewChecker(nil), WithLogger(quietLogger()))

	t.Run("missing file", func(t *testing.T) {
		var r report.Reporter
		err := s.Run(context.Background(), []string{filepath.Join(t.TempDir(), "Missing.cs")}, &r)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Missing.cs")
	})

	t.Run("cancelled", func(t *testing.T) {
		root := writeFiles(t, map[string]string{"A.cs": flagged})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var r report.Reporter
		err := s.Run(ctx, []string{filepath.Join(root, "A.cs")}, &r)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("no files", func(t *testing.T) {
		var r report.Reporter
		require.NoError(t, s.Run(context.Background(), nil, &r))
		assert.Zero(t, r.Len())
	})
}

func TestWrite(t *testing.T) {
	root := writeFiles(t, map[string]string{"A.cs": flagged})
	path := filepath.Join(root, "A.cs")

	var r report.Reporter
	s := New(csharp.NewChecker(nil), WithLogger(quietLogger()))
	require.NoError(t, s.Run(context.Background(), []string{path}, &r))

	meta := Meta{Name: "namedparams-cs", Version: "test"}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatText, meta, &r))
		assert.Equal(t,
			path+":5:9: warning: Method calls with 4 or more parameters have param names [NamedParametersAnalyzer]\n",
			buf.String(),
		)
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatJSON, meta, &r))

		var got []jsonDiagnostic
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "NamedParametersAnalyzer", got[0].ID)
		assert.Equal(t, "warning", got[0].Severity)
		assert.Equal(t, path, got[0].File)
		assert.Equal(t, 5, got[0].Start.Line)
		assert.Equal(t, 24, got[0].End.Column)
	})

	t.Run("sarif", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatSARIF, meta, &r))
		assert.Contains(t, buf.String(), `"ruleId": "NamedParametersAnalyzer"`)
		assert.Contains(t, buf.String(), `"name": "namedparams-cs"`)
	})

	t.Run("invalid", func(t *testing.T) {
		require.Error(t, Write(io.Discard, FormatInvalid, meta, &r))
	})
}

func TestFormat(t *testing.T) {
	var f Format
	require.NoError(t, f.Set("sarif"))
	assert.Equal(t, FormatSARIF, f)
	assert.Equal(t, "sarif", f.String())
	assert.Equal(t, "format", f.Type())

	require.Error(t, f.Set("xml"))
	assert.Equal(t, "invalid(7)", Format(7).String())
}
