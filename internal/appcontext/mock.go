package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/sherlock"
	"github.com/agentstation/sherlock/internal/config"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
//
// Example Usage:
//
//	mock := &appcontext.Mock{
//	    ProjectFunc: func() (*config.Project, error) {
//	        return project, nil
//	    },
//	    OutputFormatFunc: func() string { return "json" },
//	}
//	cmd := stats.NewCommand(mock)
type Mock struct {
	ProjectFunc      func() (*config.Project, error)
	ClientFunc       func(opts ...sherlock.Option) (sherlock.Client, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	NoColorFunc      func() bool
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Project returns a project using the mock function or the default project.
func (m *Mock) Project() (*config.Project, error) {
	if m.ProjectFunc != nil {
		return m.ProjectFunc()
	}
	return config.Default(), nil
}

// Client returns a client using the mock function. Without one, a client is
// built for the mock's project.
func (m *Mock) Client(opts ...sherlock.Option) (sherlock.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc(opts...)
	}
	project, err := m.Project()
	if err != nil {
		return nil, err
	}
	return sherlock.New(project, append([]sherlock.Option{sherlock.WithLogger(m.Logger())}, opts...)...)
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// NoColor returns the mock function result or true.
func (m *Mock) NoColor() bool {
	if m.NoColorFunc != nil {
		return m.NoColorFunc()
	}
	return true
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
