package sherlock

import (
	"context"
	"slices"

	"github.com/agentstation/sherlock/pkg/errors"
	"github.com/agentstation/sherlock/pkg/logging"
	"github.com/agentstation/sherlock/pkg/resolver"
	"github.com/agentstation/sherlock/pkg/tree"
)

// Location is a value position in a locale.
type Location struct {
	Namespace string    `json:"namespace" yaml:"namespace"`
	Path      tree.Path `json:"path" yaml:"path"`
}

// String returns the namespace-qualified dot path.
func (l Location) String() string {
	return append(tree.Path{l.Namespace}, l.Path...).String()
}

// AddResult reports a key added to every locale.
type AddResult struct {
	ChangeResult
	Namespace string    `json:"namespace" yaml:"namespace"`
	Requested tree.Path `json:"requested" yaml:"requested"`
	// Path is the key written, after accepted corrections.
	Path        tree.Path             `json:"path" yaml:"path"`
	Corrections []resolver.Correction `json:"corrections,omitempty" yaml:"corrections,omitempty"`
	// Duplicate is set when the text already exists in the namespace; nothing
	// is written then.
	Duplicate *Location `json:"duplicate,omitempty" yaml:"duplicate,omitempty"`
	// ReusedFrom is set when the text exists in another namespace and its
	// translations were copied.
	ReusedFrom *Location `json:"reused_from,omitempty" yaml:"reused_from,omitempty"`
}

// Add writes text under key in namespace for the base locale and every
// target locale. When the text already exists in another namespace, each
// target receives its existing translation of that key instead. Typos in
// intermediate segments are offered for correction through the Resolver.
func (c *client) Add(ctx context.Context, namespace, key, text string, opts ...RunOption) (*AddResult, error) {
	ctx = logging.WithNamespace(c.withLogger(ctx), namespace)
	ro := NewRunOptions(opts...)
	requested := tree.ParsePath(key)
	if len(requested) == 0 || slices.Contains(requested, "") {
		return nil, errors.NewValidationError("key", key, "must be a dot path without empty segments")
	}

	base, failures, err := c.loadBase(ctx)
	if err != nil {
		return nil, err
	}
	nsTree := base.Tree(namespace)
	if nsTree == nil {
		if err := base.Failed(namespace); err != nil {
			return nil, err
		}
		return nil, errors.NewNotFoundError("namespace", namespace)
	}
	if nsTree.Has(requested) {
		return nil, errors.NewAlreadyExistsError("key", Location{Namespace: namespace, Path: requested}.String())
	}

	res := &AddResult{
		ChangeResult: ChangeResult{DryRun: ro.DryRun, Failures: failures},
		Namespace:    namespace,
		Requested:    requested,
	}
	if p, ok := nsTree.FindValue(text); ok {
		res.Duplicate = &Location{Namespace: namespace, Path: p}
		return res, nil
	}
	for _, ns := range base.Present() {
		if ns == namespace {
			continue
		}
		if p, ok := base.Tree(ns).FindValue(text); ok {
			res.ReusedFrom = &Location{Namespace: ns, Path: p}
			break
		}
	}

	resolution, err := resolver.ResolvePath(ctx, nsTree, requested, c.options.resolver)
	if err != nil {
		return nil, err
	}
	res.Path = resolution.Path
	res.Corrections = resolution.Corrections
	if resolution.Corrected() && nsTree.Has(res.Path) {
		return nil, errors.NewAlreadyExistsError("key", Location{Namespace: namespace, Path: res.Path}.String())
	}
	if p, ok := valueAbove(nsTree, res.Path); ok {
		return nil, errors.NewValidationError("key", res.Path.String(), p.String()+" already holds a value")
	}

	// Every locale is read and planned before the first write.
	var planned []*LocaleChanges
	for _, locale := range c.project.AllLocales() {
		lc, err := c.addToLocale(ctx, res, locale, text)
		if err != nil {
			return nil, err
		}
		planned = append(planned, lc)
	}
	if err := c.applyAll(ctx, ro, &res.ChangeResult, planned); err != nil {
		return nil, err
	}
	for _, lc := range planned {
		res.Locales = append(res.Locales, *lc)
	}

	log := logging.FromContext(ctx)
	log.Info().Str("key", res.Path.String()).Int("locales", len(res.Locales)).Msg("Key added")
	return res, nil
}

func (c *client) addToLocale(ctx context.Context, res *AddResult, locale, text string) (*LocaleChanges, error) {
	namespaces := []string{res.Namespace}
	if res.ReusedFrom != nil {
		namespaces = append(namespaces, res.ReusedFrom.Namespace)
	}
	l, err := c.store.Load(ctx, locale, namespaces)
	if err != nil {
		return nil, errors.WrapResource("load", "locale", locale, err)
	}

	lc := &LocaleChanges{Locale: locale}
	path := c.store.Pattern().Path(locale, res.Namespace)
	if err := l.Failed(res.Namespace); err != nil {
		res.Failures = append(res.Failures, failureOf(locale, res.Namespace, path, err))
		return lc, nil
	}

	value := text
	if res.ReusedFrom != nil && locale != c.project.BaseLocale {
		if v := l.Tree(res.ReusedFrom.Namespace).Get(res.ReusedFrom.Path); v.IsLeaf() && v.Value() != "" {
			value = v.Value()
		}
	}

	before := l.Tree(res.Namespace)
	if p, ok := valueAbove(before, res.Path); ok {
		err := errors.NewValidationError("key", res.Path.String(), p.String()+" already holds a value")
		res.Failures = append(res.Failures, failureOf(locale, res.Namespace, path, err))
		return lc, nil
	}

	after := tree.NewNode()
	if before != nil {
		after = before.Clone()
	}
	fc := &FileChange{Locale: locale, Namespace: res.Namespace, Path: path, Before: before, After: after}
	if before.Has(res.Path) {
		fc.Updated = 1
	} else {
		fc.Added = 1
	}
	after.Set(res.Path, tree.Leaf(value))
	lc.Files = append(lc.Files, fc)
	return lc, nil
}

// valueAbove returns the closest ancestor of p that holds a value instead of
// a node.
func valueAbove(t *tree.Tree, p tree.Path) (tree.Path, bool) {
	for parent := p.Parent(); len(parent) > 0; parent = parent.Parent() {
		if v := t.Get(parent); v != nil && !v.IsNode() {
			return parent, true
		}
	}
	return nil, false
}
