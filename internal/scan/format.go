package scan

import (
	"encoding"
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirkon/namedparams/internal/checker"
	"github.com/sirkon/namedparams/internal/report"
	"github.com/sirkon/namedparams/internal/sarif"
)

// Format is an output format of scan results.
type Format int

const (
	FormatInvalid Format = iota
	FormatText
	FormatJSON
	FormatSARIF
)

var formatValueMap = map[Format]string{
	FormatText:  "text",
	FormatJSON:  "json",
	FormatSARIF: "sarif",
}

func (f Format) String() string {
	v, ok := formatValueMap[f]
	if !ok {
		return fmt.Sprintf("invalid(%d)", f)
	}

	return v
}

var _ encoding.TextUnmarshaler = (*Format)(nil)

// UnmarshalText for setting values with configs, CLI, etc.
func (f *Format) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range formatValueMap {
		if v == text {
			*f = k
			return nil
		}
	}

	return fmt.Errorf("unknown output format %q", text)
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	return f.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

// jsonDiagnostic is the JSON shape of a single diagnostic.
type jsonDiagnostic struct {
	ID       string       `json:"id"`
	Message  string       `json:"message"`
	Severity string       `json:"severity"`
	File     string       `json:"file"`
	Start    jsonPosition `json:"start"`
	End      jsonPosition `json:"end"`
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

// Meta describes the tool for formats that carry tool information.
type Meta struct {
	Name    string
	Version string
	URL     string
}

// Write renders the collected diagnostics in the given format.
func Write(w io.Writer, format Format, meta Meta, r *report.Reporter) error {
	switch format {
	case FormatText:
		return r.WriteText(w)

	case FormatJSON:
		diags := r.Reports()
		out := make([]jsonDiagnostic, 0, len(diags))
		for _, d := range diags {
			out = append(out, toJSON(d))
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil

	case FormatSARIF:
		log := sarif.NewLog(meta.Name, meta.Version, meta.URL)
		log.Add(r.Reports()...)
		return log.Write(w)

	default:
		return fmt.Errorf("unsupported output format %s", format)
	}
}

func toJSON(d checker.Diagnostic) jsonDiagnostic {
	return jsonDiagnostic{
		ID:       d.ID(),
		Message:  d.Message,
		Severity: d.Severity.String(),
		File:     d.Span.Filename,
		Start:    jsonPosition(d.Span.Start),
		End:      jsonPosition(d.Span.End),
	}
}
