// Package exchange converts diffs into documents for translators and turns
// translated documents back into change-sets.
//
// Two export formats are supported: a flat report that mirrors the diff with
// every entry rendered as "<value> --<status>--", and an XLIFF 1.2 document
// with one trans-unit per entry. XLIFF documents can be imported again with
// FromDocument.
package exchange

import (
	"fmt"

	"github.com/agentstation/sherlock/pkg/differ"
	"github.com/agentstation/sherlock/pkg/tree"
)

// Annotate renders one diff entry the way the flat report shows it.
func Annotate(e differ.Entry) string {
	return fmt.Sprintf("%s --%s--", e.Value, e.Status)
}

// FlatReport mirrors d as a tree whose leaves are annotated entries.
// It returns an empty node when d is nil.
func FlatReport(d *differ.Node) *tree.Tree {
	out := tree.NewNode()
	d.Walk(func(p tree.Path, e differ.Entry) {
		out.Set(p, tree.Leaf(Annotate(e)))
	})
	return out
}

// EncodeFlatReport renders the flat report of d as persisted JSON.
func EncodeFlatReport(d *differ.Node) []byte {
	return tree.Encode(FlatReport(d))
}
