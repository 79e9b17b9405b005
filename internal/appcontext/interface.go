// Package appcontext provides the shared application context interface
// used by all commands. Commands depend on this interface rather than on the
// concrete App, so they can be tested with Mock.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/sherlock"
	"github.com/agentstation/sherlock/internal/config"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/sherlock/app implements this interface.
type Interface interface {
	// Project returns the project configuration, discovering it on first use.
	Project() (*config.Project, error)

	// Client returns the sherlock client for the project.
	// Without options the cached default instance is returned; with options
	// a new client is created for the caller.
	Client(opts ...sherlock.Option) (sherlock.Client, error)

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table).
	OutputFormat() string

	// NoColor reports whether colored output is disabled.
	NoColor() bool

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
