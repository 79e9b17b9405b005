package differ

import (
	"github.com/agentstation/sherlock/pkg/tree"
)

// Orphan is a target value with no corresponding path in base.
type Orphan struct {
	Locale    string    `json:"locale" yaml:"locale"`
	Namespace string    `json:"namespace" yaml:"namespace"`
	Path      tree.Path `json:"path" yaml:"path"`
	Value     string    `json:"value" yaml:"value"`
}

// Orphans walks every value of target and keeps those base does not have.
// Locale and Namespace are left for the caller to fill in.
func (d *differ) Orphans(base, target *tree.Tree) []Orphan {
	var out []Orphan
	_ = target.Walk(func(p tree.Path, v *tree.Tree) error {
		if !base.Has(p) {
			out = append(out, Orphan{Path: p, Value: v.Text()})
		}
		return nil
	})
	return out
}

// FindOrphans scans target against base and tags every orphan with its
// locale and namespace.
func FindOrphans(locale, namespace string, base, target *tree.Tree) []Orphan {
	orphans := New().Orphans(base, target)
	for i := range orphans {
		orphans[i].Locale = locale
		orphans[i].Namespace = namespace
	}
	return orphans
}
