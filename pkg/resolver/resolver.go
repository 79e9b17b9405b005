// Package resolver corrects mistyped segments of a key path being authored
// against an existing tree.
//
// Every intermediate segment that does not exist is compared with its
// siblings using a case-insensitive edit distance. Siblings within
// MaxDistance are offered to a Resolver, best match first; the Resolver
// decides whether to descend into the suggestion or to create the literal
// segment. Once a segment is created, the remaining segments are new too and
// are never offered for correction.
package resolver

import (
	"context"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/agentstation/sherlock/pkg/tree"
)

// MaxDistance is the largest edit distance offered as a correction.
const MaxDistance = 2

// Suggestion is an existing sibling close to a missing segment.
type Suggestion struct {
	Key      string
	Distance int
}

// Suggest returns the candidates within MaxDistance of segment, ignoring
// case. Results are ordered by distance; ties keep the candidates' order.
func Suggest(segment string, candidates []string) []Suggestion {
	needle := strings.ToLower(segment)
	var out []Suggestion
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(c))
		if d <= MaxDistance {
			out = append(out, Suggestion{Key: c, Distance: d})
		}
	}
	slices.SortStableFunc(out, func(a, b Suggestion) int {
		return a.Distance - b.Distance
	})
	return out
}

// Request describes one unresolved segment.
type Request struct {
	// Parent is the resolved path leading to the segment.
	Parent tree.Path
	// Segment is the literal segment that was not found.
	Segment string
	// Suggestions holds at least one candidate, best first.
	Suggestions []Suggestion
}

// Resolver chooses between the best suggestion and the literal segment.
type Resolver interface {
	// Resolve returns true to descend into req.Suggestions[0].
	Resolve(ctx context.Context, req Request) (bool, error)
}

// Func adapts a function to the Resolver interface.
type Func func(ctx context.Context, req Request) (bool, error)

// Resolve implements Resolver.
func (f Func) Resolve(ctx context.Context, req Request) (bool, error) {
	return f(ctx, req)
}

// AcceptBest always takes the best suggestion.
var AcceptBest Resolver = Func(func(context.Context, Request) (bool, error) { return true, nil })

// RejectAll always creates the literal segment.
var RejectAll Resolver = Func(func(context.Context, Request) (bool, error) { return false, nil })

// Correction records a segment replaced by an existing sibling.
type Correction struct {
	Index int
	From  string
	To    string
}

// Resolution is the outcome of ResolvePath.
type Resolution struct {
	// Path is the requested path with accepted corrections applied.
	Path tree.Path
	// Corrections lists the replaced segments.
	Corrections []Correction
	// Existing counts the leading segments of Path already present in the tree.
	Existing int
}

// Corrected reports whether Path differs from the requested path.
func (r Resolution) Corrected() bool {
	return len(r.Corrections) > 0
}

// ResolvePath walks every segment of p except the last against root.
// The final segment names the value being added and is kept as given.
func ResolvePath(ctx context.Context, root *tree.Tree, p tree.Path, r Resolver) (Resolution, error) {
	res := Resolution{Path: make(tree.Path, 0, len(p))}
	if len(p) == 0 {
		return res, nil
	}

	cur := root
	fresh := false
	for i, seg := range p[:len(p)-1] {
		if fresh {
			res.Path = append(res.Path, seg)
			continue
		}
		if child, ok := cur.Child(seg); ok {
			cur = child
			res.Path = append(res.Path, seg)
			res.Existing++
			continue
		}

		suggestions := Suggest(seg, cur.Keys())
		accepted := false
		if len(suggestions) > 0 {
			var err error
			accepted, err = r.Resolve(ctx, Request{
				Parent:      slices.Clone(res.Path),
				Segment:     seg,
				Suggestions: suggestions,
			})
			if err != nil {
				return Resolution{}, err
			}
		}
		if !accepted {
			fresh = true
			res.Path = append(res.Path, seg)
			continue
		}

		best := suggestions[0].Key
		cur, _ = cur.Child(best)
		res.Path = append(res.Path, best)
		res.Existing++
		res.Corrections = append(res.Corrections, Correction{Index: i, From: seg, To: best})
	}

	last := p[len(p)-1]
	if !fresh && cur.Has(tree.Path{last}) {
		res.Existing++
	}
	res.Path = append(res.Path, last)
	return res, nil
}
