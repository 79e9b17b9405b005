// Package app provides the application context and dependency management
// for the sherlock CLI. It centralizes configuration, logging and the
// lazily built sherlock client.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/sherlock"
	"github.com/agentstation/sherlock/internal/appcontext"
	"github.com/agentstation/sherlock/internal/config"
	"github.com/agentstation/sherlock/pkg/errors"
)

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// App represents the sherlock application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Project and client (lazy-initialized, singletons)
	mu      sync.RWMutex
	project *config.Project
	client  sherlock.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	cfg, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = cfg

	logger := NewLogger(cfg)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}
	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// NoColor reports whether colored output is disabled.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// Project returns the project configuration, discovering it on first use.
func (a *App) Project() (*config.Project, error) {
	a.mu.RLock()
	if a.project != nil {
		p := a.project
		a.mu.RUnlock()
		return p, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.project != nil {
		return a.project, nil
	}

	p, err := config.Discover(a.config.WorkDir, a.config.ConfigFile)
	if err != nil {
		return nil, err
	}
	a.logger.Debug().Str("file", p.File).Str("base", p.BaseLocale).Strs("locales", p.Locales).Msg("Project loaded")
	a.project = p
	return p, nil
}

// Client returns the sherlock client for the project. Without options the
// cached instance is returned; with options a new client is built.
func (a *App) Client(opts ...sherlock.Option) (sherlock.Client, error) {
	if len(opts) == 0 {
		a.mu.RLock()
		c := a.client
		a.mu.RUnlock()
		if c != nil {
			return c, nil
		}
	}

	project, err := a.Project()
	if err != nil {
		return nil, err
	}
	base := []sherlock.Option{
		sherlock.WithLogger(a.logger),
		sherlock.WithConcurrency(a.config.Concurrency),
	}
	c, err := sherlock.New(project, append(base, opts...)...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", project.File, err)
	}

	if len(opts) == 0 {
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.client != nil {
			return a.client, nil
		}
		a.client = c
	}
	return c, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(cfg *Config) Option {
	return func(a *App) error {
		a.config = cfg
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithProject sets the project instead of discovering it (useful for testing).
func WithProject(p *config.Project) Option {
	return func(a *App) error {
		a.project = p
		return nil
	}
}
