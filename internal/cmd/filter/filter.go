// Package filter compiles --where expressions into entry filters.
//
// An expression is evaluated once per reported entry against these
// variables:
//
//	Locale     target locale, e.g. "fr"
//	Namespace  namespace of the entry, e.g. "common"
//	Key        namespace-qualified dot path, e.g. "common.greeting.hello"
//	Path       dot path inside the namespace, e.g. "greeting.hello"
//	Value      base text of the entry
//	Status     "missing-key" or "untranslated"
//	Raw        whether the base value is not a string
//
// For example: Namespace == "admin" && Status == "missing-key".
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/agentstation/sherlock"
	"github.com/agentstation/sherlock/pkg/errors"
)

// Env is the evaluation environment of an expression.
type Env struct {
	Locale    string
	Namespace string
	Key       string
	Path      string
	Value     string
	Status    string
	Raw       bool
}

// NewEnv returns the environment of item in locale.
func NewEnv(locale string, item sherlock.Item) Env {
	return Env{
		Locale:    locale,
		Namespace: item.Namespace,
		Key:       item.Key(),
		Path:      item.Path.String(),
		Value:     item.Value,
		Status:    string(item.Status),
		Raw:       item.Raw,
	}
}

// Filter is a compiled expression.
type Filter struct {
	source  string
	program *vm.Program
}

// Compile parses source. An empty source compiles to nil, which matches
// every entry.
func Compile(source string) (*Filter, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, nil
	}
	program, err := expr.Compile(source, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, errors.NewValidationError("where", source, err.Error())
	}
	return &Filter{source: source, program: program}, nil
}

// String returns the expression source.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.source
}

// Match evaluates the expression against env. Evaluation errors never match.
func (f *Filter) Match(env Env) bool {
	if f == nil {
		return true
	}
	out, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}
	ok, _ := out.(bool)
	return ok
}

// EntryFilter adapts the filter to the client's entry filter. A nil filter
// returns nil.
func (f *Filter) EntryFilter() sherlock.EntryFilter {
	if f == nil {
		return nil
	}
	return func(locale string, item sherlock.Item) bool {
		return f.Match(NewEnv(locale, item))
	}
}
