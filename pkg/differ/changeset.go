// Package differ compares a base tree against a target tree and classifies
// every base leaf that still needs work.
package differ

import (
	"fmt"
	"strings"

	"github.com/agentstation/sherlock/pkg/tree"
)

// Status represents the classification of a base leaf.
type Status string

const (
	// StatusMissingKey indicates the key is absent from the target.
	StatusMissingKey Status = "missing-key"
	// StatusUntranslated indicates the target holds the base text verbatim.
	StatusUntranslated Status = "untranslated"
)

// String returns the string representation of a status.
func (s Status) String() string {
	return string(s)
}

// Entry is a classified base leaf.
type Entry struct {
	Value  string `json:"value" yaml:"value"`                 // Base text, or JSON text for raw values
	Status Status `json:"status" yaml:"status"`               // Classification
	Raw    bool   `json:"raw,omitempty" yaml:"raw,omitempty"` // Base value is not a string
}

// Node is a diff tree. It mirrors a sub-tree of the base: a leaf carries an
// Entry, a branch carries children in base order. Branches without any
// classified descendant are never built.
type Node struct {
	entry    *Entry
	keys     []string
	children map[string]*Node
}

func newBranch() *Node {
	return &Node{children: make(map[string]*Node)}
}

func newLeaf(e Entry) *Node {
	return &Node{entry: &e}
}

// NewLeaf creates a diff leaf. It is mostly useful for building fixtures.
func NewLeaf(value string, status Status) *Node {
	return newLeaf(Entry{Value: value, Status: status})
}

// NewBranch creates a diff branch from ordered children.
func NewBranch(keys []string, children ...*Node) *Node {
	n := newBranch()
	for i, k := range keys {
		n.put(k, children[i])
	}
	return n
}

func (n *Node) put(key string, child *Node) {
	if _, ok := n.children[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.children[key] = child
}

// Entry returns the classified entry of a leaf.
func (n *Node) Entry() (Entry, bool) {
	if n == nil || n.entry == nil {
		return Entry{}, false
	}
	return *n.entry, true
}

// IsLeaf reports whether n carries an entry.
func (n *Node) IsLeaf() bool {
	return n != nil && n.entry != nil
}

// Keys returns the child names of a branch in base order.
func (n *Node) Keys() []string {
	if n == nil || n.entry != nil {
		return nil
	}
	return append([]string(nil), n.keys...)
}

// Child returns the named child of a branch.
func (n *Node) Child(key string) *Node {
	if n == nil || n.entry != nil {
		return nil
	}
	return n.children[key]
}

// Get walks p from n.
func (n *Node) Get(p tree.Path) *Node {
	cur := n
	for _, seg := range p {
		cur = cur.Child(seg)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Item is one flattened diff entry.
type Item struct {
	Path tree.Path `json:"path" yaml:"path"`
	Entry
}

// Items flattens the diff depth first in base order.
func (n *Node) Items() []Item {
	var out []Item
	n.walk(nil, func(p tree.Path, e Entry) {
		out = append(out, Item{Path: p, Entry: e})
	})
	return out
}

// Walk calls fn for every entry depth first in base order.
func (n *Node) Walk(fn func(path tree.Path, e Entry)) {
	n.walk(nil, fn)
}

func (n *Node) walk(prefix tree.Path, fn func(tree.Path, Entry)) {
	if n == nil {
		return
	}
	if n.entry != nil {
		fn(prefix, *n.entry)
		return
	}
	for _, k := range n.keys {
		n.children[k].walk(prefix.Append(k), fn)
	}
}

// Filter returns the entries for which keep returns true, keeping base
// order. Branches left without entries are dropped; Filter returns nil when
// nothing is kept.
func (n *Node) Filter(keep func(path tree.Path, e Entry) bool) *Node {
	return n.filter(nil, keep)
}

func (n *Node) filter(prefix tree.Path, keep func(tree.Path, Entry) bool) *Node {
	if n == nil {
		return nil
	}
	if n.entry != nil {
		if keep(prefix, *n.entry) {
			return newLeaf(*n.entry)
		}
		return nil
	}
	var out *Node
	for _, k := range n.keys {
		child := n.children[k].filter(prefix.Append(k), keep)
		if child == nil {
			continue
		}
		if out == nil {
			out = newBranch()
		}
		out.put(k, child)
	}
	return out
}

// Count returns the number of entries with the given status.
func (n *Node) Count(status Status) int {
	count := 0
	n.Walk(func(_ tree.Path, e Entry) {
		if e.Status == status {
			count++
		}
	})
	return count
}

// Len returns the number of entries.
func (n *Node) Len() int {
	return len(n.Items())
}

// String renders the diff as one "path: value --status--" line per entry.
func (n *Node) String() string {
	var sb strings.Builder
	n.Walk(func(p tree.Path, e Entry) {
		fmt.Fprintf(&sb, "%s: %s --%s--\n", p, e.Value, e.Status)
	})
	return sb.String()
}

// Summary provides coverage statistics for one base tree against one target.
type Summary struct {
	Total        int `json:"total" yaml:"total"`               // Base leaves
	Missing      int `json:"missing" yaml:"missing"`           // Absent from target
	Untranslated int `json:"untranslated" yaml:"untranslated"` // Identical to base
}

// Summarize counts the leaves of base and the classified entries of d.
func Summarize(base *tree.Tree, d *Node) Summary {
	return Summary{
		Total:        base.CountLeaves(),
		Missing:      d.Count(StatusMissingKey),
		Untranslated: d.Count(StatusUntranslated),
	}
}

// Add returns the element-wise sum of two summaries.
func (s Summary) Add(o Summary) Summary {
	return Summary{
		Total:        s.Total + o.Total,
		Missing:      s.Missing + o.Missing,
		Untranslated: s.Untranslated + o.Untranslated,
	}
}

// Present returns the number of base leaves that exist in the target.
func (s Summary) Present() int {
	return s.Total - s.Missing
}

// Translated returns the number of base leaves that need no more work.
func (s Summary) Translated() int {
	return s.Total - s.Missing - s.Untranslated
}

// KeyCoverage returns the share of present keys as a percentage.
func (s Summary) KeyCoverage() float64 {
	return percent(s.Present(), s.Total)
}

// TranslationCoverage returns the share of translated keys as a percentage.
func (s Summary) TranslationCoverage() float64 {
	return percent(s.Translated(), s.Total)
}

// HasChanges returns true if any base leaf still needs work.
func (s Summary) HasChanges() bool {
	return s.Missing+s.Untranslated > 0
}

func percent(part, total int) float64 {
	if total == 0 {
		return 100
	}
	return float64(part) * 100 / float64(total)
}

// Collect gathers per-namespace diffs under their names, in the order given.
// Namespaces without a diff are skipped. Collect returns nil when none remain.
func Collect(names []string, diffs map[string]*Node) *Node {
	var out *Node
	for _, name := range names {
		d := diffs[name]
		if d == nil {
			continue
		}
		if out == nil {
			out = newBranch()
		}
		out.put(name, d)
	}
	return out
}
