package tree

import (
	"slices"
	"strings"
)

// Separator joins path segments in the external representation.
const Separator = "."

// Path is an ordered sequence of segment names addressing a value in a tree.
// Segments compare case-sensitively.
type Path []string

// ParsePath splits a dot-joined key path. The empty string yields an empty path.
func ParsePath(s string) Path {
	if s == "" {
		return nil
	}
	return strings.Split(s, Separator)
}

// String joins the segments with dots.
func (p Path) String() string {
	return strings.Join(p, Separator)
}

// Append returns a new path with seg added. p is never modified.
func (p Path) Append(seg string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// Parent returns p without its last segment.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return slices.Clone(p[:len(p)-1])
}

// Last returns the final segment, or "" for an empty path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Get walks p from t. It returns nil as soon as a segment is absent or an
// intermediate value is not a node. An empty path returns t.
func (t *Tree) Get(p Path) *Tree {
	cur := t
	for _, seg := range p {
		if !cur.IsNode() {
			return nil
		}
		next, ok := cur.children[seg]
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// Has reports whether every segment of p exists as a child of its parent
// node. Unlike Get, a raw null stored at the last segment still counts as
// present. An empty path is never present.
func (t *Tree) Has(p Path) bool {
	if len(p) == 0 {
		return false
	}
	cur := t
	for _, seg := range p {
		if !cur.IsNode() {
			return false
		}
		next, ok := cur.children[seg]
		if !ok {
			return false
		}
		cur = next
	}
	return true
}

// Set stores v at p, creating intermediate nodes as needed. Any intermediate
// value that is not a node is replaced by a new node. t must be a node.
// An empty path is a no-op.
func (t *Tree) Set(p Path, v *Tree) {
	if len(p) == 0 {
		return
	}
	cur := t
	for _, seg := range p[:len(p)-1] {
		next, ok := cur.Child(seg)
		if !ok || !next.IsNode() {
			next = NewNode()
			cur.Put(seg, next)
		}
		cur = next
	}
	cur.Put(p.Last(), v)
}

// Delete removes the value at p and reports whether it existed.
// With prune set, nodes left empty by the removal are removed too,
// up to but excluding t itself.
func (t *Tree) Delete(p Path, prune bool) bool {
	if len(p) == 0 {
		return false
	}
	parent := t.Get(p.Parent())
	if !parent.Remove(p.Last()) {
		return false
	}
	if prune {
		for q := p.Parent(); len(q) > 0; q = q.Parent() {
			n := t.Get(q)
			if !n.IsNode() || n.Len() > 0 {
				break
			}
			t.Get(q.Parent()).Remove(q.Last())
		}
	}
	return true
}
