package hints

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"github.com/agentstation/sherlock/internal/cmd/output"
)

// Formatter formats hints for different output types.
type Formatter struct {
	writer io.Writer
	format output.Format
	config FormatterConfig
}

// FormatterConfig configures hint formatting behavior.
type FormatterConfig struct {
	ShowIcons  bool // Whether to show emoji icons
	UseColor   bool // Whether to dim the command lines
	IndentSize int  // Indentation size for structured output
}

// NewFormatter creates a new hint formatter.
func NewFormatter(w io.Writer, format output.Format) *Formatter {
	return &Formatter{
		writer: w,
		format: format,
		config: FormatterConfig{
			ShowIcons:  true,
			IndentSize: 2,
		},
	}
}

// WithConfig sets the formatter configuration.
func (f *Formatter) WithConfig(config FormatterConfig) *Formatter {
	f.config = config
	return f
}

// FormatHints formats and writes a slice of hints.
func (f *Formatter) FormatHints(hints []*Hint) error {
	if len(hints) == 0 {
		return nil
	}

	switch f.format {
	case output.FormatJSON:
		return f.formatJSON(hints)
	case output.FormatYAML:
		return f.formatYAML(hints)
	default:
		return f.formatText(hints)
	}
}

// hintData represents hint data for structured output.
type hintData struct {
	Message string   `json:"message" yaml:"message"`
	Command string   `json:"command,omitempty" yaml:"command,omitempty"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

func toHintData(hints []*Hint) []hintData {
	data := make([]hintData, len(hints))
	for i, hint := range hints {
		data[i] = hintData{Message: hint.Message, Command: hint.Command, Tags: hint.Tags}
	}
	return data
}

func (f *Formatter) formatJSON(hints []*Hint) error {
	out := struct {
		Hints []hintData `json:"hints"`
	}{Hints: toHintData(hints)}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", strings.Repeat(" ", f.config.IndentSize))
	return encoder.Encode(out)
}

func (f *Formatter) formatYAML(hints []*Hint) error {
	out := struct {
		Hints []hintData `yaml:"hints"`
	}{Hints: toHintData(hints)}

	data, err := yaml.MarshalWithOptions(out,
		yaml.Indent(f.config.IndentSize),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = f.writer.Write(data)
	return err
}

func (f *Formatter) formatText(hints []*Hint) error {
	_, _ = fmt.Fprintln(f.writer)
	for _, hint := range hints {
		for _, line := range f.formatHintContent(hint) {
			if _, err := fmt.Fprintln(f.writer, line); err != nil {
				return err
			}
		}
	}
	_, _ = fmt.Fprintln(f.writer)
	return nil
}

// formatHintContent formats the content of a single hint into lines.
func (f *Formatter) formatHintContent(hint *Hint) []string {
	icon := "💡"
	if !f.config.ShowIcons {
		icon = "Tip:"
	}
	lines := []string{fmt.Sprintf("%s %s", icon, hint.Message)}

	if hint.Command != "" {
		run := fmt.Sprintf("   Run: %s", hint.Command)
		if f.config.UseColor {
			c := color.New(color.Faint)
			c.EnableColor()
			run = c.Sprint(run)
		}
		lines = append(lines, run)
	}
	return lines
}

// Display is a convenience function to format and display hints.
func Display(w io.Writer, format output.Format, hints []*Hint) error {
	return NewFormatter(w, format).FormatHints(hints)
}
