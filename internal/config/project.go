// Package config loads the project configuration that tells sherlock where
// locale files live and which locales to reconcile.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/agentstation/sherlock/pkg/constants"
	"github.com/agentstation/sherlock/pkg/errors"
	"github.com/agentstation/sherlock/pkg/locales"
)

// Project is the project configuration.
type Project struct {
	// BaseLocale is the authoritative locale.
	BaseLocale string `json:"baseLocale" yaml:"baseLocale" toml:"baseLocale"`

	// Locales lists the target locales.
	Locales []string `json:"locales" yaml:"locales" toml:"locales"`

	// Path is the file pattern with {locale} and {namespace} placeholders.
	Path string `json:"path" yaml:"path" toml:"path"`

	// AllowIdentical lists locales whose values may equal the base.
	AllowIdentical []string `json:"allowIdentical,omitempty" yaml:"allowIdentical,omitempty" toml:"allowIdentical,omitempty"`

	// File is the configuration file the project was read from.
	File string `json:"-" yaml:"-" toml:"-"`
}

// Default returns the configuration written by init.
func Default() *Project {
	return &Project{
		BaseLocale:     "en",
		Locales:        []string{"es", "fr-ca"},
		Path:           "locales/{locale}/{namespace}.json",
		AllowIdentical: []string{"en-ca"},
	}
}

// Find looks for a configuration file in dir and its parents.
func Find(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.WrapIO("resolve", dir, err)
	}
	for {
		for _, name := range constants.ConfigFileNames {
			candidate := filepath.Join(abs, name)
			if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", errors.NewNotFoundError("configuration file", constants.ConfigFileNames[0])
		}
		abs = parent
	}
}

// Load reads a configuration file. Files without an extension are parsed
// as YAML, which also accepts JSON.
func Load(path string) (*Project, error) {
	v := viper.New()
	v.SetConfigFile(path)
	switch strings.TrimPrefix(filepath.Ext(path), ".") {
	case "json", "yaml", "yml", "toml":
	default:
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr != nil {
			return nil, errors.NewConfigError("project", "cannot read "+path, statErr)
		}
		return nil, errors.NewConfigError("project", "cannot parse "+path, errors.WrapParse(filepath.Ext(path), path, err))
	}

	p := &Project{
		BaseLocale:     v.GetString("baseLocale"),
		Locales:        v.GetStringSlice("locales"),
		Path:           v.GetString("path"),
		AllowIdentical: v.GetStringSlice("allowIdentical"),
		File:           path,
	}
	if err := p.Validate(); err != nil {
		return nil, errors.NewConfigError("project", path, err)
	}
	return p, nil
}

// Discover finds and loads the configuration starting from dir. An explicit
// path skips the search.
func Discover(dir, explicit string) (*Project, error) {
	path := explicit
	if path == "" {
		var err error
		if path, err = Find(dir); err != nil {
			return nil, err
		}
	}
	return Load(path)
}

// Validate checks the required fields and every locale identifier.
func (p *Project) Validate() error {
	if p.BaseLocale == "" {
		return errors.NewValidationError("baseLocale", p.BaseLocale, "is required")
	}
	if err := validateTag("baseLocale", p.BaseLocale); err != nil {
		return err
	}
	for _, l := range p.Locales {
		if err := validateTag("locales", l); err != nil {
			return err
		}
	}
	for _, l := range p.AllowIdentical {
		if err := validateTag("allowIdentical", l); err != nil {
			return err
		}
	}
	if _, err := locales.ParsePattern(p.Path); err != nil {
		return err
	}
	return nil
}

func validateTag(field, tag string) error {
	if _, err := language.Parse(tag); err != nil {
		return errors.NewValidationError(field, tag, "not a BCP 47 language tag: "+err.Error())
	}
	return nil
}

// Pattern returns the validated path pattern.
func (p *Project) Pattern() locales.Pattern {
	return locales.MustParsePattern(p.Path)
}

// IdenticalAllowed reports whether locale may share values with the base.
func (p *Project) IdenticalAllowed(locale string) bool {
	return slices.Contains(p.AllowIdentical, locale)
}

// AllLocales returns the base locale followed by the target locales.
func (p *Project) AllLocales() []string {
	out := []string{p.BaseLocale}
	for _, l := range p.Locales {
		if l != p.BaseLocale {
			out = append(out, l)
		}
	}
	return out
}

// Targets expands the locale arguments of a command. "all" selects every
// configured target locale; the base locale is always dropped.
func (p *Project) Targets(args []string) ([]string, error) {
	if len(args) == 1 && args[0] == constants.AllLocales {
		args = p.Locales
	}
	var out []string
	for _, l := range args {
		if l == p.BaseLocale || slices.Contains(out, l) {
			continue
		}
		if err := validateTag("locale", l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}
