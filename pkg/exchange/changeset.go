package exchange

import (
	"slices"
	"strings"

	"github.com/agentstation/sherlock/pkg/tree"
)

// Change is one translated value to store in a namespace.
type Change struct {
	Namespace string    `json:"namespace" yaml:"namespace"`
	Path      tree.Path `json:"path" yaml:"path"`
	Value     string    `json:"value" yaml:"value"`
}

// ChangeSet is an ordered list of changes. A later change to the same
// namespace and path replaces an earlier one in place.
type ChangeSet struct {
	changes []Change
	index   map[string]int
}

// NewChangeSet creates an empty change-set.
func NewChangeSet() *ChangeSet {
	return &ChangeSet{index: make(map[string]int)}
}

// Add records a change.
func (c *ChangeSet) Add(ch Change) {
	key := ch.Namespace + "\x00" + ch.Path.String()
	if i, ok := c.index[key]; ok {
		c.changes[i] = ch
		return
	}
	c.index[key] = len(c.changes)
	c.changes = append(c.changes, ch)
}

// Len returns the number of changes.
func (c *ChangeSet) Len() int {
	if c == nil {
		return 0
	}
	return len(c.changes)
}

// Changes returns every change in insertion order.
func (c *ChangeSet) Changes() []Change {
	if c == nil {
		return nil
	}
	return slices.Clone(c.changes)
}

// Namespaces returns the namespaces touched, in first-seen order.
func (c *ChangeSet) Namespaces() []string {
	var out []string
	for _, ch := range c.Changes() {
		if !slices.Contains(out, ch.Namespace) {
			out = append(out, ch.Namespace)
		}
	}
	return out
}

// For returns the changes of one namespace.
func (c *ChangeSet) For(namespace string) []Change {
	var out []Change
	for _, ch := range c.Changes() {
		if ch.Namespace == namespace {
			out = append(out, ch)
		}
	}
	return out
}

// Tree renders the change-set as {namespace: {key: {path: value}}}.
func (c *ChangeSet) Tree() *tree.Tree {
	out := tree.NewNode()
	for _, ch := range c.Changes() {
		out.Set(append(tree.Path{ch.Namespace}, ch.Path...), tree.Leaf(ch.Value))
	}
	return out
}

// Apply sets the changes of namespace on a copy of target, one leaf at a
// time. Everything else in target is preserved. A nil target starts empty.
func (c *ChangeSet) Apply(namespace string, target *tree.Tree) *tree.Tree {
	return ApplyChanges(target, c.For(namespace))
}

// ApplyChanges sets changes on a copy of target, one leaf at a time. A nil
// target starts empty.
func ApplyChanges(target *tree.Tree, changes []Change) *tree.Tree {
	out := tree.NewNode()
	if target.IsNode() {
		out = target.Clone()
	}
	for _, ch := range changes {
		out.Set(ch.Path, tree.Leaf(ch.Value))
	}
	return out
}

// Placeable splits changes into those that only add or replace leaves of
// target and those that would overwrite a node, or a value standing where a
// node is needed.
func Placeable(changes []Change, target *tree.Tree) (ok, conflicts []Change) {
	for _, ch := range changes {
		if conflicting(target, ch.Path) {
			conflicts = append(conflicts, ch)
			continue
		}
		ok = append(ok, ch)
	}
	return ok, conflicts
}

func conflicting(target *tree.Tree, p tree.Path) bool {
	if v := target.Get(p); v != nil && v.IsNode() {
		return true
	}
	for parent := p.Parent(); len(parent) > 0; parent = parent.Parent() {
		if v := target.Get(parent); v != nil && !v.IsNode() {
			return true
		}
	}
	return false
}

// ID returns the unit id of the change.
func (ch Change) ID() string {
	return ch.Namespace + tree.Separator + ch.Path.String()
}

// Diagnostics collects the units skipped by an import.
type Diagnostics struct {
	// Malformed lists unit ids without a namespace/path split point.
	Malformed []string `json:"malformed,omitempty" yaml:"malformed,omitempty"`
	// UnknownNamespaces lists namespaces absent from base, once each.
	UnknownNamespaces []string `json:"unknown_namespaces,omitempty" yaml:"unknown_namespaces,omitempty"`
	// Conflicts lists unit ids whose key is a node in the target, or lies
	// under a value.
	Conflicts []string `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`
	// Unchanged counts units whose target is empty or equals the source.
	Unchanged int `json:"unchanged" yaml:"unchanged"`
}

// Empty reports whether nothing was skipped for a reason worth reporting.
func (d Diagnostics) Empty() bool {
	return len(d.Malformed) == 0 && len(d.UnknownNamespaces) == 0 && len(d.Conflicts) == 0
}

// SplitID splits a unit id on its first dot into namespace and key path.
func SplitID(id string) (namespace string, p tree.Path, ok bool) {
	ns, rest, found := strings.Cut(id, tree.Separator)
	if !found || ns == "" || rest == "" {
		return "", nil, false
	}
	return ns, tree.ParsePath(rest), true
}

// FromDocument turns the translated units of doc into a change-set.
// base is a locale tree whose first level names namespaces. Units that
// cannot be placed are collected in the diagnostics; units without a
// translation are counted as unchanged.
func FromDocument(doc *Document, base *tree.Tree) (*ChangeSet, Diagnostics) {
	cs := NewChangeSet()
	var diag Diagnostics
	for _, u := range doc.Units() {
		ns, p, ok := SplitID(u.ID)
		if !ok {
			diag.Malformed = append(diag.Malformed, u.ID)
			continue
		}
		if _, known := base.Child(ns); !known {
			if !slices.Contains(diag.UnknownNamespaces, ns) {
				diag.UnknownNamespaces = append(diag.UnknownNamespaces, ns)
			}
			continue
		}
		if u.Target == "" || u.Target == u.Source {
			diag.Unchanged++
			continue
		}
		cs.Add(Change{Namespace: ns, Path: p, Value: u.Target})
	}
	return cs, diag
}
