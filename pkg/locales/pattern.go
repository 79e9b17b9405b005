// Package locales reads and writes locale trees on disk.
//
// A path pattern containing {locale} and {namespace} maps every
// (locale, namespace) pair to one JSON file. A Store discovers namespace
// files, reads them through a per-invocation cache and writes updated
// trees back.
package locales

import (
	"path/filepath"
	"strings"

	"github.com/agentstation/sherlock/pkg/constants"
	"github.com/agentstation/sherlock/pkg/errors"
)

// Pattern is a validated path pattern.
type Pattern struct {
	raw string
}

// ParsePattern validates that s contains both placeholders, with
// {namespace} appearing once.
func ParsePattern(s string) (Pattern, error) {
	if !strings.Contains(s, constants.LocalePlaceholder) {
		return Pattern{}, errors.NewValidationError("path", s, "must contain "+constants.LocalePlaceholder)
	}
	if strings.Count(s, constants.NamespacePlaceholder) != 1 {
		return Pattern{}, errors.NewValidationError("path", s, "must contain "+constants.NamespacePlaceholder+" exactly once")
	}
	return Pattern{raw: s}, nil
}

// MustParsePattern is like ParsePattern but panics on error.
func MustParsePattern(s string) Pattern {
	p, err := ParsePattern(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the pattern as written.
func (p Pattern) String() string {
	return p.raw
}

// Path returns the file of one namespace of one locale.
func (p Pattern) Path(locale, namespace string) string {
	return filepath.FromSlash(strings.NewReplacer(
		constants.LocalePlaceholder, locale,
		constants.NamespacePlaceholder, namespace,
	).Replace(p.raw))
}

// scope describes where the namespace files of a locale live: the directory
// to walk and the name prefix and suffix around the namespace.
type scope struct {
	dir    string
	prefix string
	suffix string
}

func (p Pattern) scope(locale string) scope {
	before, after, _ := strings.Cut(p.raw, constants.NamespacePlaceholder)
	before = strings.ReplaceAll(before, constants.LocalePlaceholder, locale)
	after = strings.ReplaceAll(after, constants.LocalePlaceholder, locale)

	dir, prefix := ".", before
	if i := strings.LastIndex(before, "/"); i >= 0 {
		dir, prefix = before[:i], before[i+1:]
		if dir == "" {
			dir = "/"
		}
	}
	return scope{dir: filepath.Clean(filepath.FromSlash(dir)), prefix: prefix, suffix: after}
}

// namespace extracts the namespace from a file path relative to the scope
// directory, in slash form.
func (s scope) namespace(rel string) (string, bool) {
	if len(rel) <= len(s.prefix)+len(s.suffix) {
		return "", false
	}
	if !strings.HasPrefix(rel, s.prefix) || !strings.HasSuffix(rel, s.suffix) {
		return "", false
	}
	return rel[len(s.prefix) : len(rel)-len(s.suffix)], true
}
