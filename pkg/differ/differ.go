package differ

import (
	"github.com/agentstation/sherlock/pkg/tree"
)

// Differ handles gap detection between a base tree and a target tree.
type Differ interface {
	// Diff walks the keys of base only and returns the classified entries,
	// or nil when nothing qualifies. target may be nil.
	Diff(base, target *tree.Tree) *Node

	// Orphans returns every target value whose path does not exist in base.
	Orphans(base, target *tree.Tree) []Orphan
}

// Classifier decides the status of one base value. present reports whether
// the target has the same key; target is the value found there. A false
// second result means the value is translated and is left out of the diff.
type Classifier interface {
	Classify(base, target *tree.Tree, present bool) (Status, bool)
}

// Translation classifies absent keys as missing and, unless identical values
// are allowed, verbatim copies of base text as untranslated.
type Translation struct {
	IdenticalAllowed bool
}

// Classify implements Classifier.
func (c Translation) Classify(base, target *tree.Tree, present bool) (Status, bool) {
	if !present {
		return StatusMissingKey, true
	}
	if c.IdenticalAllowed || !base.IsLeaf() {
		return "", false
	}
	if target.IsLeaf() && target.Value() == base.Value() {
		return StatusUntranslated, true
	}
	return "", false
}

// Structural reports key presence only.
type Structural struct{}

// Classify implements Classifier.
func (Structural) Classify(_, _ *tree.Tree, present bool) (Status, bool) {
	if !present {
		return StatusMissingKey, true
	}
	return "", false
}

// differ is the default implementation of Differ.
type differ struct {
	classifier Classifier
}

// New creates a Differ that classifies for translation by default.
func New(opts ...Option) Differ {
	d := &differ{
		classifier: Translation{},
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Diff compares base against target.
func (d *differ) Diff(base, target *tree.Tree) *Node {
	if !base.IsNode() {
		return nil
	}
	return d.node(base, target)
}

func (d *differ) node(base, target *tree.Tree) *Node {
	var out *Node
	for _, k := range base.Keys() {
		b, _ := base.Child(k)
		t, present := target.Child(k)

		var child *Node
		if b.IsNode() {
			// A leaf sitting where base has a node counts as an absent subtree.
			if !t.IsNode() {
				t = nil
			}
			child = d.node(b, t)
		} else if status, ok := d.classifier.Classify(b, t, present); ok {
			child = newLeaf(Entry{Value: b.Text(), Status: status, Raw: b.IsRaw()})
		}

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

// Diff compares base against target with the default translation classifier.
func Diff(base, target *tree.Tree, identicalAllowed bool) *Node {
	return New(WithIdenticalAllowed(identicalAllowed)).Diff(base, target)
}
