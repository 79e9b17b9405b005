package sherlock

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/sherlock/pkg/constants"
	"github.com/agentstation/sherlock/pkg/logging"
	"github.com/agentstation/sherlock/pkg/resolver"
)

// options holds the client configuration.
type options struct {
	logger      *zerolog.Logger
	confirmer   Confirmer
	resolver    resolver.Resolver
	concurrency int
}

// Option is a function that configures a Client.
type Option func(*options)

func defaults() *options {
	return &options{
		logger:      logging.Default(),
		confirmer:   AlwaysConfirm,
		resolver:    resolver.RejectAll,
		concurrency: constants.MaxConcurrentLoads,
	}
}

func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger for loads, writes and skipped units.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConfirmer sets who approves writes. The default approves everything.
func WithConfirmer(c Confirmer) Option {
	return func(o *options) {
		if c != nil {
			o.confirmer = c
		}
	}
}

// WithResolver sets who decides on path corrections during Add. The default
// keeps the requested path.
func WithResolver(r resolver.Resolver) Option {
	return func(o *options) {
		if r != nil {
			o.resolver = r
		}
	}
}

// WithConcurrency bounds how many locales are loaded at once.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// EntryFilter selects the diff entries of a locale.
type EntryFilter func(locale string, item Item) bool

// RunOptions configures a single operation.
type RunOptions struct {
	DryRun      bool        // Compute and report changes without writing
	AutoApprove bool        // Skip confirmation
	Force       bool        // Overwrite existing export files
	XLIFF       bool        // Export exchange documents instead of flat reports
	Orphans     bool        // Also scan for orphaned keys during audit
	OutputDir   string      // Directory for export files
	Filter      EntryFilter // Restricts audit and export entries
}

// RunOption is a function that configures an operation.
type RunOption func(*RunOptions)

// NewRunOptions applies opts to the zero configuration.
func NewRunOptions(opts ...RunOption) *RunOptions {
	ro := &RunOptions{OutputDir: "."}
	for _, opt := range opts {
		opt(ro)
	}
	return ro
}

// DryRun reports changes without writing them.
func DryRun(enabled bool) RunOption {
	return func(ro *RunOptions) {
		ro.DryRun = enabled
	}
}

// AutoApprove skips the confirmation step.
func AutoApprove(enabled bool) RunOption {
	return func(ro *RunOptions) {
		ro.AutoApprove = enabled
	}
}

// Force allows export files to be overwritten.
func Force(enabled bool) RunOption {
	return func(ro *RunOptions) {
		ro.Force = enabled
	}
}

// AsXLIFF exports exchange documents instead of flat reports.
func AsXLIFF(enabled bool) RunOption {
	return func(ro *RunOptions) {
		ro.XLIFF = enabled
	}
}

// IncludeOrphans adds the orphan scan to an audit.
func IncludeOrphans(enabled bool) RunOption {
	return func(ro *RunOptions) {
		ro.Orphans = enabled
	}
}

// OutputDir sets where export files are written.
func OutputDir(dir string) RunOption {
	return func(ro *RunOptions) {
		if dir != "" {
			ro.OutputDir = dir
		}
	}
}

// Where restricts audit and export to the entries f keeps.
func Where(f EntryFilter) RunOption {
	return func(ro *RunOptions) {
		ro.Filter = f
	}
}
