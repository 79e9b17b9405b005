// Package reconciler brings target trees in line with a base tree without
// disturbing content the targets already hold.
//
// Sync computes the missing structure and merges it, keeping every existing
// target value:
//
//	res := reconciler.Sync(base, target)
//	if res.HasChanges() {
//		write(res.Tree)
//	}
//
// Clean removes orphaned values from a target and prunes emptied nodes.
package reconciler

import (
	"github.com/agentstation/sherlock/pkg/differ"
	"github.com/agentstation/sherlock/pkg/tree"
)

// Sync merges the structure base has and target lacks into a copy of target.
// The missing structure is kept on the result for previews.
func Sync(base, target *tree.Tree) *SyncResult {
	missing := MissingStructure(base, target)
	return &SyncResult{
		Result:  *Merge(target, missing),
		Missing: missing,
	}
}

// SyncResult extends Result with the structure that was merged.
type SyncResult struct {
	Result
	Missing *tree.Tree
}

// Clean returns a copy of target without the given orphans. Nodes emptied by
// a removal are pruned. The second result counts removed values.
func Clean(target *tree.Tree, orphans []differ.Orphan) (*tree.Tree, int) {
	out := target.Clone()
	removed := 0
	for _, o := range orphans {
		if out.Delete(o.Path, true) {
			removed++
		}
	}
	return out, removed
}
