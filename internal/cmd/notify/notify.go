// Package notify provides a unified API for alerts and hints in the CLI.
package notify

import (
	"io"
	"io/fs"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/agentstation/sherlock/internal/cmd/alerts"
	"github.com/agentstation/sherlock/internal/cmd/globals"
	"github.com/agentstation/sherlock/internal/cmd/hints"
	"github.com/agentstation/sherlock/internal/cmd/output"
	"github.com/agentstation/sherlock/pkg/errors"
)

// Notifier sends alerts and displays contextual hints.
type Notifier struct {
	alertWriter  alerts.Writer
	hintRegistry *hints.Registry
	config       Config
}

// Config controls notification behavior.
type Config struct {
	OutputFormat string    // "table", "json", "yaml"; empty detects
	ShowHints    bool      // Whether to show hints
	ShowAlerts   bool      // Whether to show alerts
	MaxHints     int       // Maximum number of hints to show
	AlertWriter  io.Writer // Where to write alerts (default: stderr)
	HintWriter   io.Writer // Where to write hints (default: stderr)
	UseColor     bool      // Whether to use colored output
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		ShowHints:   true,
		ShowAlerts:  true,
		MaxHints:    2,
		AlertWriter: os.Stderr,
		HintWriter:  os.Stderr,
		UseColor:    true,
	}
}

// New creates a new Notifier with the given configuration.
func New(config Config) *Notifier {
	format := output.DetectFormat(config.OutputFormat)
	alertWriter := alerts.NewFormatWriter(config.AlertWriter, format).WithConfig(alerts.WriterConfig{
		ShowDetails: true,
		UseColor:    config.UseColor,
	})

	registry := hints.NewRegistry().WithConfig(hints.RegistryConfig{
		MaxHints: config.MaxHints,
		Enabled:  config.ShowHints,
	})
	hints.RegisterProviders(registry)

	return &Notifier{
		alertWriter:  alertWriter,
		hintRegistry: registry,
		config:       config,
	}
}

// NewFromCommand creates a Notifier configured from the global flags.
func NewFromCommand(cmd *cobra.Command) *Notifier {
	flags := globals.Parse(cmd)
	config := DefaultConfig()
	config.OutputFormat = flags.Format
	config.AlertWriter = cmd.ErrOrStderr()
	config.HintWriter = cmd.ErrOrStderr()
	config.ShowAlerts = !flags.Quiet
	config.ShowHints = !flags.Quiet && !isCI()
	config.UseColor = !flags.NoColor && isTerminal(config.AlertWriter)
	return New(config)
}

// Alert sends an alert notification.
func (n *Notifier) Alert(alert *alerts.Alert) error {
	if !n.config.ShowAlerts {
		return nil
	}
	return n.alertWriter.WriteAlert(alert)
}

// Success sends a success alert with contextual hints.
func (n *Notifier) Success(message string, ctx hints.Context) error {
	ctx.Succeeded = true
	return n.AlertWithHints(alerts.NewSuccess(message), ctx)
}

// Warning sends a warning alert.
func (n *Notifier) Warning(message string, details ...string) error {
	return n.Alert(alerts.NewWarning(message).WithDetails(details...))
}

// Info sends an info alert.
func (n *Notifier) Info(message string) error {
	return n.Alert(alerts.NewInfo(message))
}

// Error sends an error alert with recovery hints for err.
func (n *Notifier) Error(err error, ctx hints.Context) error {
	ctx.Succeeded = false
	ctx.ErrorType = ErrorType(err)
	return n.AlertWithHints(alerts.NewError("Command failed").WithError(err), ctx)
}

// AlertWithHints sends an alert and displays contextual hints.
func (n *Notifier) AlertWithHints(alert *alerts.Alert, ctx hints.Context) error {
	if err := n.Alert(alert); err != nil {
		return errors.WrapIO("write", "alert", err)
	}
	return n.Hints(ctx)
}

// Hints displays contextual hints without an alert.
func (n *Notifier) Hints(ctx hints.Context) error {
	if !n.config.ShowHints {
		return nil
	}
	list := n.hintRegistry.GetHints(ctx)
	if len(list) == 0 {
		return nil
	}
	format := output.DetectFormat(n.config.OutputFormat)
	return hints.NewFormatter(n.config.HintWriter, format).WithConfig(hints.FormatterConfig{
		ShowIcons:  true,
		UseColor:   n.config.UseColor,
		IndentSize: 2,
	}).FormatHints(list)
}

// ErrorType classifies err for recovery hints.
func ErrorType(err error) string {
	var configErr *errors.ConfigError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &configErr):
		return "config"
	case errors.IsNotFound(err):
		return "not_found"
	case errors.IsMalformed(err):
		return "parse"
	case errors.IsValidationError(err):
		return "validation"
	case errors.Is(err, fs.ErrPermission):
		return "permission_denied"
	default:
		return "unknown"
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// isCI detects if running in a CI/CD environment.
func isCI() bool {
	for _, env := range []string{
		"CI",
		"CONTINUOUS_INTEGRATION",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"JENKINS_URL",
		"BUILDKITE",
	} {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}
