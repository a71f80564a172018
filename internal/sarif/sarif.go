// Package sarif renders diagnostics as a SARIF 2.1.0 log.
package sarif

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirkon/namedparams/internal/checker"
	"github.com/sirkon/namedparams/internal/rules"
)

// SchemaURI is the JSON schema of SARIF 2.1.0 logs.
const SchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/main/sarif-2.1/schema/sarif-schema-2.1.0.json"

// Version is the SARIF format version written into logs.
const Version = "2.1.0"

// Log is the top level SARIF object.
type Log struct {
	Schema  string `json:"$schema"`
	Version string `json:"version"`
	Runs    []Run  `json:"runs"`
}

// Run holds results of a single tool invocation.
type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

// Tool describes the analysis tool.
type Tool struct {
	Driver Driver `json:"driver"`
}

// Driver is the tool component that produced the results.
type Driver struct {
	Name           string                `json:"name"`
	Version        string                `json:"version,omitempty"`
	InformationURI string                `json:"informationUri,omitempty"`
	Rules          []ReportingDescriptor `json:"rules,omitempty"`
}

// ReportingDescriptor describes a rule.
type ReportingDescriptor struct {
	ID               string                  `json:"id"`
	ShortDescription Message                 `json:"shortDescription"`
	FullDescription  *Message                `json:"fullDescription,omitempty"`
	DefaultConfig    *ReportingConfiguration `json:"defaultConfiguration,omitempty"`
	Properties       map[string]any          `json:"properties,omitempty"`
}

// ReportingConfiguration is the default configuration of a rule.
type ReportingConfiguration struct {
	Enabled bool   `json:"enabled"`
	Level   string `json:"level,omitempty"`
}

// Result is a single diagnostic.
type Result struct {
	RuleID    string     `json:"ruleId"`
	RuleIndex int        `json:"ruleIndex"`
	Level     string     `json:"level"`
	Message   Message    `json:"message"`
	Locations []Location `json:"locations,omitempty"`
}

// Message is a plain text message.
type Message struct {
	Text string `json:"text"`
}

// Location of a result.
type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

// PhysicalLocation points to a region of a file.
type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

// ArtifactLocation is a file reference.
type ArtifactLocation struct {
	URI string `json:"uri"`
}

// Region is a text range, lines and columns are 1-based.
type Region struct {
	StartLine   int `json:"startLine,omitempty"`
	StartColumn int `json:"startColumn,omitempty"`
	EndLine     int `json:"endLine,omitempty"`
	EndColumn   int `json:"endColumn,omitempty"`
}

// NewLog creates a log with a single run of the given tool describing every known rule.
func NewLog(toolName, toolVersion, informationURI string) *Log {
	descriptors := make([]ReportingDescriptor, 0, len(rules.All()))
	for _, r := range rules.All() {
		descriptors = append(descriptors, descriptor(r))
	}

	return &Log{
		Schema:  SchemaURI,
		Version: Version,
		Runs: []Run{{
			Tool: Tool{
				Driver: Driver{
					Name:           toolName,
					Version:        toolVersion,
					InformationURI: informationURI,
					Rules:          descriptors,
				},
			},
			Results: []Result{},
		}},
	}
}

// Add appends diagnostics to the run as results.
func (l *Log) Add(diags ...checker.Diagnostic) {
	run := &l.Runs[0]
	for _, d := range diags {
		run.Results = append(run.Results, Result{
			RuleID:    d.ID(),
			RuleIndex: ruleIndex(run.Tool.Driver.Rules, d.ID()),
			Level:     d.Severity.SARIFLevel(),
			Message:   Message{Text: d.Message},
			Locations: []Location{{
				PhysicalLocation: PhysicalLocation{
					ArtifactLocation: ArtifactLocation{URI: filepath.ToSlash(d.Span.Filename)},
					Region: Region{
						StartLine:   d.Span.Start.Line,
						StartColumn: d.Span.Start.Column,
						EndLine:     d.Span.End.Line,
						EndColumn:   d.Span.End.Column,
					},
				},
			}},
		})
	}
}

// Write encodes the log as indented JSON.
func (l *Log) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode sarif log: %w", err)
	}

	return nil
}

func descriptor(r rules.Rule) ReportingDescriptor {
	return ReportingDescriptor{
		ID:               r.String(),
		ShortDescription: Message{Text: r.Title()},
		FullDescription:  &Message{Text: r.Description()},
		DefaultConfig: &ReportingConfiguration{
			Enabled: r.EnabledByDefault(),
			Level:   r.DefaultSeverity().SARIFLevel(),
		},
		Properties: map[string]any{
			"category": r.Category(),
		},
	}
}

func ruleIndex(descriptors []ReportingDescriptor, id string) int {
	for i, d := range descriptors {
		if d.ID == id {
			return i
		}
	}

	return -1
}
