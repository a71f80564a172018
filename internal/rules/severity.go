package rules

import (
	"encoding"
	"fmt"
)

// Severity describes how loud a diagnostic is.
type Severity int

const (
	SeverityInvalid Severity = iota
	SeverityHidden
	SeverityInfo
	SeverityWarning
	SeverityError
)

var severityValueMap = map[Severity]string{
	SeverityHidden:  "hidden",
	SeverityInfo:    "info",
	SeverityWarning: "warning",
	SeverityError:   "error",
}

// SARIF result levels.
var severitySARIFMap = map[Severity]string{
	SeverityHidden:  "none",
	SeverityInfo:    "note",
	SeverityWarning: "warning",
	SeverityError:   "error",
}

func (s Severity) String() string {
	v, ok := severityValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", s)
	}

	return v
}

// SARIFLevel returns the SARIF level name for the severity.
func (s Severity) SARIFLevel() string {
	v, ok := severitySARIFMap[s]
	if !ok {
		return "none"
	}

	return v
}

var _ encoding.TextUnmarshaler = (*Severity)(nil)

// UnmarshalText for setting values with configs, CLI, etc.
func (s *Severity) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range severityValueMap {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown severity %q", text)
}
