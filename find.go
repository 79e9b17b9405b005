package sherlock

import (
	"context"

	"github.com/agentstation/sherlock/pkg/tree"
)

// Translation is the value a locale holds at a found key.
type Translation struct {
	Locale string `json:"locale" yaml:"locale"`
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`
	// Missing is true when the locale has no value at the key.
	Missing bool `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// OrphanMatch is a target value matching the search that the base locale
// does not hold anywhere.
type OrphanMatch struct {
	Locale    string    `json:"locale" yaml:"locale"`
	Namespace string    `json:"namespace" yaml:"namespace"`
	Path      tree.Path `json:"path" yaml:"path"`
	Value     string    `json:"value" yaml:"value"`
}

// FindResult reports where a text lives.
type FindResult struct {
	Text string `json:"text" yaml:"text"`

	// Match is the first base location holding the text, if any.
	Match        *Location     `json:"match,omitempty" yaml:"match,omitempty"`
	Value        string        `json:"value,omitempty" yaml:"value,omitempty"`
	Translations []Translation `json:"translations,omitempty" yaml:"translations,omitempty"`

	// Orphans lists target locations holding the text when base does not.
	Orphans []OrphanMatch `json:"orphans,omitempty" yaml:"orphans,omitempty"`

	Failures Failures `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// Found reports whether the text was found in any locale.
func (r *FindResult) Found() bool {
	return r.Match != nil || len(r.Orphans) > 0
}

// Find searches the base locale for a value equal to text, ignoring case,
// and reports what every target locale holds at the same key. When the base
// does not hold the text, every target locale is searched instead.
func (c *client) Find(ctx context.Context, text string) (*FindResult, error) {
	ctx = c.withLogger(ctx)
	base, failures, err := c.loadBase(ctx)
	if err != nil {
		return nil, err
	}

	res := &FindResult{Text: text, Failures: failures}
	for _, ns := range base.Present() {
		if p, ok := base.Tree(ns).FindValue(text); ok {
			res.Match = &Location{Namespace: ns, Path: p}
			res.Value = base.Tree(ns).Get(p).Value()
			break
		}
	}

	targets := c.project.Locales
	if res.Match != nil {
		loaded, targetFailures, err := c.loadTargets(ctx, base, targets)
		if err != nil {
			return nil, err
		}
		res.Failures = append(res.Failures, targetFailures...)
		for _, locale := range targets {
			if locale == c.project.BaseLocale {
				continue
			}
			tr := Translation{Locale: locale, Missing: true}
			if v := loaded[locale].Tree(res.Match.Namespace).Get(res.Match.Path); v.IsLeaf() && v.Value() != "" {
				tr.Value, tr.Missing = v.Value(), false
			}
			res.Translations = append(res.Translations, tr)
		}
		return res, nil
	}

	loaded, err := c.store.LoadAll(ctx, targets, nil)
	if err != nil {
		return nil, err
	}
	for _, locale := range targets {
		if locale == c.project.BaseLocale {
			continue
		}
		l := loaded[locale]
		res.Failures = append(res.Failures, failuresOf(l)...)
		for _, ns := range l.Present() {
			p, ok := l.Tree(ns).FindValue(text)
			if !ok {
				continue
			}
			res.Orphans = append(res.Orphans, OrphanMatch{
				Locale:    locale,
				Namespace: ns,
				Path:      p,
				Value:     l.Tree(ns).Get(p).Value(),
			})
		}
	}
	return res, nil
}
