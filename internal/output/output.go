package output

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/pathlist/errors"
)

// Format selects how results are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses "text", "json" or "yaml". The empty string is text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", errors.Newf(errors.CodeInvalidInput, "unknown output format %q (want text, json or yaml)", s)
	}
}

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Printer writes results to out and diagnostics to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	format Format
}

// New creates a Printer using the given format.
func New(out, errOut io.Writer, format Format) *Printer {
	return &Printer{out: out, errOut: errOut, format: format}
}

// Format returns the printer's output format.
func (p *Printer) Format() Format {
	return p.format
}

// Out returns the writer results are written to.
func (p *Printer) Out() io.Writer {
	return p.out
}

// Result writes a command result. In text format text is printed as-is;
// otherwise v is encoded.
func (p *Printer) Result(text string, v any) error {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, errors.CodeInternal, "failed to encode JSON output")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, errors.CodeInternal, "failed to encode YAML output")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, errors.CodeInternal, "failed to encode YAML output")
		}
	default:
		if _, err := fmt.Fprintln(p.out, text); err != nil {
			return errors.Wrap(err, errors.CodeIO, "failed to write output")
		}
	}
	return nil
}

// Info prints an informational message to the diagnostics stream.
//
// Example:
//
//	p.Info("Loaded config: pathlist.yaml")
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.errOut, infoStyle.Render("ℹ️  "+msg))
}

// Step prints an indented detail line to the diagnostics stream.
func (p *Printer) Step(msg string) {
	fmt.Fprintln(p.errOut, stepStyle.Render("   "+msg))
}

// Error reports err on the diagnostics stream. Text output shows the code,
// message and any context fields; JSON and YAML output encode
// errors.ErrorResponse.
func (p *Printer) Error(err error) {
	if err == nil {
		return
	}

	resp := errors.ToJSON(err)
	switch p.format {
	case FormatJSON:
		data, _ := json.Marshal(map[string]any{"error": resp})
		fmt.Fprintln(p.errOut, string(data))
		return
	case FormatYAML:
		data, _ := yaml.Marshal(map[string]any{"error": resp})
		fmt.Fprint(p.errOut, string(data))
		return
	}

	fmt.Fprintln(p.errOut, errorStyle.Render(fmt.Sprintf("❌ [%s] %s", resp.Code, resp.Message)))
	for _, key := range slices.Sorted(maps.Keys(resp.Context)) {
		p.Step(fmt.Sprintf("%s: %v", key, resp.Context[key]))
	}
	if cause := errors.Cause(err); cause != nil {
		p.Step("cause: " + cause.Error())
	}
}
