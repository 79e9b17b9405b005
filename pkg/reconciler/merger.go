package reconciler

import (
	"github.com/agentstation/sherlock/pkg/tree"
)

// MissingStructure returns the parts of base that target lacks, as actual
// base values. Keys absent from target are copied wholesale; nodes present
// on both sides are recursed into. A node in base facing a non-node in
// target is treated like an absent subtree. The result is an empty node
// when nothing is missing, and nil when base is not a node.
func MissingStructure(base, target *tree.Tree) *tree.Tree {
	if !base.IsNode() {
		return nil
	}
	if !target.IsNode() {
		return base.Clone()
	}
	out := tree.NewNode()
	for _, k := range base.Keys() {
		b, _ := base.Child(k)
		t, present := target.Child(k)
		switch {
		case !present:
			out.Put(k, b.Clone())
		case b.IsNode():
			if nested := MissingStructure(b, t); !nested.Empty() {
				out.Put(k, nested)
			}
		}
	}
	return out
}

// Merge deep-merges missing into a copy of target. Absent keys are inserted
// with their nested structure and nodes present on both sides are merged
// recursively. Whenever target already holds a value that is not a node on
// either side of a shared key, the target value is kept and the key is
// reported as a collision. Merge never removes or changes a key target had.
func Merge(target, missing *tree.Tree) *Result {
	res := &Result{}
	out := tree.NewNode()
	if target.IsNode() {
		out = target.Clone()
	}
	if missing.IsNode() {
		res.merge(out, missing, nil)
	}
	res.Tree = out
	return res
}

func (res *Result) merge(dst, src *tree.Tree, prefix tree.Path) {
	for _, k := range src.Keys() {
		s, _ := src.Child(k)
		d, present := dst.Child(k)
		p := prefix.Append(k)
		switch {
		case !present:
			dst.Put(k, s.Clone())
			res.Added += s.CountLeaves()
		case d.IsNode() && s.IsNode():
			res.merge(d, s, p)
		default:
			res.Collisions = append(res.Collisions, Collision{
				Path:     p,
				Existing: d,
				Incoming: s,
			})
		}
	}
}
