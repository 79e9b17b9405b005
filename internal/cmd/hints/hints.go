// Package hints provides actionable user guidance for CLI operations.
package hints

import (
	"fmt"
	"slices"
	"strings"
)

// Hint represents actionable user guidance.
type Hint struct {
	Message string   // Human-readable guidance message
	Command string   // Optional specific command to run
	Tags    []string // For context-aware filtering
}

// New creates a new hint with the given message.
func New(message string) *Hint {
	return &Hint{Message: message}
}

// NewCommand creates a new hint with a specific command.
func NewCommand(message, command string) *Hint {
	return &Hint{Message: message, Command: command}
}

// WithTags adds tags to the hint for context-aware filtering.
func (h *Hint) WithTags(tags ...string) *Hint {
	h.Tags = append(h.Tags, tags...)
	return h
}

// HasTag checks if the hint has a specific tag.
func (h *Hint) HasTag(tag string) bool {
	return slices.Contains(h.Tags, tag)
}

// String returns a string representation of the hint.
func (h *Hint) String() string {
	parts := []string{fmt.Sprintf("💡 %s", h.Message)}
	if h.Command != "" {
		parts = append(parts, fmt.Sprintf("   Run: %s", h.Command))
	}
	return strings.Join(parts, "\n")
}

// Context provides information for generating contextual hints.
type Context struct {
	Command   string   // Current command being executed
	Args      []string // Command arguments
	Succeeded bool     // Whether the operation succeeded
	DryRun    bool     // Whether nothing was written
	ErrorType string   // Type of error if failed

	// Missing is the number of keys still missing after the command.
	Missing int
	// Orphans is the number of orphaned keys found.
	Orphans int
	// Failures is the number of locale files that could not be read.
	Failures int
	// Files lists the files the command produced.
	Files []string
}

// Provider generates contextual hints based on the current context.
type Provider interface {
	GetHints(ctx Context) []*Hint
	Name() string
}

// ProviderFunc is an adapter to allow functions to be used as Providers.
type ProviderFunc func(Context) []*Hint

// GetHints calls the function.
func (f ProviderFunc) GetHints(ctx Context) []*Hint {
	return f(ctx)
}

// Name returns the function name (generic).
func (f ProviderFunc) Name() string {
	return "func"
}

// Registry manages hint providers and generates contextual hints.
type Registry struct {
	providers []Provider
	config    RegistryConfig
}

// RegistryConfig configures hint generation behavior.
type RegistryConfig struct {
	MaxHints    int      // Maximum number of hints to return
	ExcludeTags []string // Exclude hints with these tags
	Enabled     bool     // Whether hints are enabled
}

// NewRegistry creates a new hint registry.
func NewRegistry() *Registry {
	return &Registry{
		config: RegistryConfig{
			MaxHints: 3,
			Enabled:  true,
		},
	}
}

// WithConfig sets the registry configuration.
func (r *Registry) WithConfig(config RegistryConfig) *Registry {
	r.config = config
	return r
}

// Register adds a hint provider to the registry.
func (r *Registry) Register(provider Provider) {
	r.providers = append(r.providers, provider)
}

// RegisterFunc registers a function as a hint provider.
func (r *Registry) RegisterFunc(name string, fn func(Context) []*Hint) {
	r.Register(&namedProvider{name: name, fn: ProviderFunc(fn)})
}

// GetHints generates hints for the given context.
func (r *Registry) GetHints(ctx Context) []*Hint {
	if !r.config.Enabled {
		return nil
	}

	var hints []*Hint
	for _, provider := range r.providers {
		for _, hint := range provider.GetHints(ctx) {
			if !r.excluded(hint) {
				hints = append(hints, hint)
			}
		}
	}

	if r.config.MaxHints > 0 && len(hints) > r.config.MaxHints {
		hints = hints[:r.config.MaxHints]
	}
	return hints
}

func (r *Registry) excluded(hint *Hint) bool {
	for _, tag := range r.config.ExcludeTags {
		if hint.HasTag(tag) {
			return true
		}
	}
	return false
}

// namedProvider wraps a ProviderFunc with a name.
type namedProvider struct {
	name string
	fn   ProviderFunc
}

func (p *namedProvider) GetHints(ctx Context) []*Hint {
	return p.fn.GetHints(ctx)
}

func (p *namedProvider) Name() string {
	return p.name
}
