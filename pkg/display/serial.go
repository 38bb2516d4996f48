package display

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/relink/pkg/types"
)

// Format selects the serial output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
)

// ParseFormat validates a format name from the CLI or config
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatText, FormatJSON, FormatYAML, FormatXML:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json, yaml or xml)", name)
	}
}

// SerialReporter collects the run silently and emits one machine-readable
// document when the run completes.
type SerialReporter struct {
	out    io.Writer
	format Format
}

// NewSerialReporter creates a reporter for the given non-text format.
func NewSerialReporter(out io.Writer, format Format) *SerialReporter {
	return &SerialReporter{out: out, format: format}
}

// OnTaskOutcome implements types.Reporter. Per-task events are already
// carried by the summary, so nothing is emitted until the run completes.
func (r *SerialReporter) OnTaskOutcome(types.DirectoryTask, types.TaskOutcome) {}

// OnRunComplete implements types.Reporter
func (r *SerialReporter) OnRunComplete(summary types.RunSummary) {
	report := BuildReport(summary)

	switch r.format {
	case FormatJSON:
		encoder := json.NewEncoder(r.out)
		encoder.SetIndent("", "  ")
		_ = encoder.Encode(report)
	case FormatYAML:
		encoder := yaml.NewEncoder(r.out)
		defer func() { _ = encoder.Close() }()
		_ = encoder.Encode(report)
	case FormatXML:
		_ = writeXML(r.out, report)
	}
}

// NewReporter returns the reporter for a format: the terminal reporter
// for text, a serial reporter otherwise.
func NewReporter(out io.Writer, format Format) types.Reporter {
	if format == FormatText {
		return NewTerminalReporter(out)
	}
	return NewSerialReporter(out, format)
}
