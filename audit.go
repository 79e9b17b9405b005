package sherlock

import (
	"context"
	"slices"

	"github.com/agentstation/sherlock/pkg/differ"
	"github.com/agentstation/sherlock/pkg/errors"
	"github.com/agentstation/sherlock/pkg/locales"
	"github.com/agentstation/sherlock/pkg/tree"
)

// AuditResult lists the keys a target locale lacks.
type AuditResult struct {
	Locale     string `json:"locale" yaml:"locale"`
	BaseLocale string `json:"base_locale" yaml:"base_locale"`

	// Diff holds the missing keys with namespaces at the first level.
	Diff  *differ.Node `json:"-" yaml:"-"`
	Items []Item       `json:"missing" yaml:"missing"`

	// AbsentNamespaces lists base namespaces without a target file.
	AbsentNamespaces []string `json:"absent_namespaces,omitempty" yaml:"absent_namespaces,omitempty"`
	// ExtraNamespaces lists target namespaces without a base file.
	ExtraNamespaces []string `json:"extra_namespaces,omitempty" yaml:"extra_namespaces,omitempty"`

	// Orphans is filled when the orphan scan was requested.
	Orphans []differ.Orphan `json:"orphans,omitempty" yaml:"orphans,omitempty"`

	Failures Failures `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// Missing returns the number of missing keys.
func (r *AuditResult) Missing() int {
	return len(r.Items)
}

// Clean reports whether the audit found nothing to do.
func (r *AuditResult) Clean() bool {
	return len(r.Items) == 0 && len(r.Orphans) == 0
}

// Audit compares the structure of locale against the base locale. Only
// missing keys are reported; values identical to the base are not.
func (c *client) Audit(ctx context.Context, locale string, opts ...RunOption) (*AuditResult, error) {
	ctx = c.withLogger(ctx)
	ro := NewRunOptions(opts...)
	if locale == c.project.BaseLocale {
		return nil, errors.NewValidationError("locale", locale, "is the base locale")
	}
	targets, err := c.targets([]string{locale})
	if err != nil {
		return nil, err
	}
	if len(targets) != 1 {
		return nil, errors.NewValidationError("locale", locale, "exactly one target locale is required")
	}

	base, failures, err := c.loadBase(ctx)
	if err != nil {
		return nil, err
	}
	loaded, targetFailures, err := c.loadTargets(ctx, base, targets)
	if err != nil {
		return nil, err
	}
	target := loaded[locale]

	res := &AuditResult{
		Locale:     locale,
		BaseLocale: c.project.BaseLocale,
		Failures:   append(failures, targetFailures...),
	}
	d := differ.New(differ.WithStructural())
	res.Diff = c.diffLocale(d, base, target, locale, ro.Filter)
	res.Items = items(res.Diff)

	for _, ns := range base.Present() {
		if target.Failed(ns) == nil && !target.Has(ns) {
			res.AbsentNamespaces = append(res.AbsentNamespaces, ns)
		}
	}

	if ro.Orphans {
		discovered, err := c.store.Discover(ctx, locale)
		if err != nil {
			return nil, err
		}
		for _, ns := range discovered {
			if !slices.Contains(base.Namespaces, ns) {
				res.ExtraNamespaces = append(res.ExtraNamespaces, ns)
			}
		}
		res.Orphans = orphans(base, target)
	}
	return res, nil
}

// diffLocale diffs every base namespace against target and gathers the
// results under the namespace names. Namespaces whose target failed to
// load are left out.
func (c *client) diffLocale(d differ.Differ, base, target *locales.Locale, locale string, filter EntryFilter) *differ.Node {
	diffs := make(map[string]*differ.Node)
	for _, ns := range base.Present() {
		if target.Failed(ns) != nil {
			continue
		}
		nd := d.Diff(base.Tree(ns), target.Tree(ns))
		if filter != nil {
			nd = nd.Filter(func(p tree.Path, e differ.Entry) bool {
				return filter(locale, Item{Namespace: ns, Path: p, Entry: e})
			})
		}
		diffs[ns] = nd
	}
	return differ.Collect(base.Present(), diffs)
}

// orphans scans every namespace both locales have.
func orphans(base, target *locales.Locale) []differ.Orphan {
	var out []differ.Orphan
	for _, ns := range target.Present() {
		out = append(out, differ.FindOrphans(target.Name, ns, base.Tree(ns), target.Tree(ns))...)
	}
	return out
}

// items flattens a namespace-rooted diff.
func items(d *differ.Node) []Item {
	var out []Item
	d.Walk(func(p tree.Path, e differ.Entry) {
		out = append(out, Item{Namespace: p[0], Path: p[1:], Entry: e})
	})
	return out
}
