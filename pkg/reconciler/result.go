package reconciler

import (
	"fmt"

	"github.com/agentstation/sherlock/pkg/tree"
)

// Result represents the outcome of a merge.
type Result struct {
	// Tree is the merged copy of the target.
	Tree *tree.Tree

	// Added counts the values inserted from the missing structure.
	Added int

	// Collisions lists keys where the target value was kept over an
	// incoming one.
	Collisions []Collision
}

// HasChanges returns true if the merge inserted anything.
func (r *Result) HasChanges() bool {
	return r != nil && r.Added > 0
}

// Collision records a key present on both sides where at least one side is
// not a node.
type Collision struct {
	Path     tree.Path
	Existing *tree.Tree
	Incoming *tree.Tree
}

// String returns a one-line description of the collision.
func (c Collision) String() string {
	return fmt.Sprintf("%s: kept %s %s over %s", c.Path, c.Existing.Kind(), c.Existing, c.Incoming.Kind())
}
