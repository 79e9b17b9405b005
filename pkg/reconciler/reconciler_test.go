package reconciler

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sherlock/pkg/differ"
	"github.com/agentstation/sherlock/pkg/tree"
)

func parse(t *testing.T, s string) *tree.Tree {
	t.Helper()
	if s == "" {
		return nil
	}
	tr, err := tree.Parse([]byte(s))
	require.NoError(t, err)
	return tr
}

func TestMissingStructure(t *testing.T) {
	base := `{"a":"A","b":{"c":"C","d":{"e":"E"}},"f":{"g":"G"},"n":1}`

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{
			name:   "absent target takes all of base",
			target: "",
			want:   `{"a":"A","b":{"c":"C","d":{"e":"E"}},"f":{"g":"G"},"n":1}`,
		},
		{
			name:   "nothing missing",
			target: `{"a":"x","b":{"c":"x","d":{"e":"x"}},"f":{"g":"x"},"n":2}`,
			want:   `{}`,
		},
		{
			name:   "nested gaps only",
			target: `{"a":"x","b":{"c":"x","d":{}},"n":2}`,
			want:   `{"b":{"d":{"e":"E"}},"f":{"g":"G"}}`,
		},
		{
			name:   "leaf where node expected",
			target: `{"a":"x","b":"flat","f":{"g":"x"},"n":2}`,
			want:   `{"b":{"c":"C","d":{"e":"E"}}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MissingStructure(parse(t, base), parse(t, tt.target))
			if diff := cmp.Diff(tt.want, got.String()); diff != "" {
				t.Errorf("MissingStructure() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeInsertsWholesale(t *testing.T) {
	target := parse(t, `{"keep":"K","nav":{"home":"Accueil"}}`)
	missing := parse(t, `{"nav":{"about":"About","sub":{"x":"X"}},"new":"N"}`)

	res := Merge(target, missing)
	assert.Equal(t, `{"keep":"K","nav":{"home":"Accueil","about":"About","sub":{"x":"X"}},"new":"N"}`, res.Tree.String())
	assert.Equal(t, 3, res.Added)
	assert.Empty(t, res.Collisions)
	assert.True(t, res.HasChanges())

	assert.Equal(t, `{"keep":"K","nav":{"home":"Accueil"}}`, target.String(), "target is not mutated")
}

func TestMergeTargetAlwaysWins(t *testing.T) {
	target := parse(t, `{"title":"Titre","nav":"flat","count":1}`)
	missing := parse(t, `{"title":"Title","nav":{"home":"Home"},"count":{"x":"y"}}`)

	res := Merge(target, missing)
	assert.Equal(t, `{"title":"Titre","nav":"flat","count":1}`, res.Tree.String())
	assert.Zero(t, res.Added)
	require.Len(t, res.Collisions, 3)
	assert.Equal(t, "title", res.Collisions[0].Path.String())
	assert.Equal(t, "nav: kept leaf \"flat\" over node", res.Collisions[1].String())
}

func TestMergeNilInputs(t *testing.T) {
	res := Merge(nil, parse(t, `{"a":"A"}`))
	assert.Equal(t, `{"a":"A"}`, res.Tree.String())

	res = Merge(parse(t, `{"a":"A"}`), nil)
	assert.Equal(t, `{"a":"A"}`, res.Tree.String())
	assert.False(t, res.HasChanges())
}

func TestSyncIdempotence(t *testing.T) {
	pairs := []struct {
		base   string
		target string
	}{
		{`{"a":"A","b":{"c":"C"}}`, ""},
		{`{"a":"A","b":{"c":"C"}}`, `{}`},
		{`{"a":"A","b":{"c":"C","d":"D"}}`, `{"b":{"d":"Dee"},"z":"orphan"}`},
		{`{"x":{"y":{"z":"Z"}},"n":[1,2]}`, `{"x":{"y":{}}}`},
	}
	for _, p := range pairs {
		base := parse(t, p.base)
		target := parse(t, p.target)

		res := Sync(base, target)
		d := differ.Diff(base, res.Tree, false)
		assert.Zero(t, d.Count(differ.StatusMissingKey), "base %s target %s", p.base, p.target)

		again := Sync(base, res.Tree)
		assert.False(t, again.HasChanges(), "second sync adds nothing")
		assert.True(t, again.Missing.Empty())
	}
}

func TestSyncIsNonDestructive(t *testing.T) {
	base := parse(t, `{"a":"A","b":{"c":"C","d":"D"},"e":"E"}`)
	target := parse(t, `{"a":"Alpha","b":{"c":"Cee"},"extra":{"k":"v"}}`)

	res := Sync(base, target)
	require.NoError(t, target.Walk(func(p tree.Path, v *tree.Tree) error {
		assert.True(t, v.Equal(res.Tree.Get(p)), "value at %s must survive the merge", p)
		return nil
	}))
	assert.Equal(t, 2, res.Added)
}

func TestClean(t *testing.T) {
	base := parse(t, `{"nav":{"home":"Home"}}`)
	target := parse(t, `{"nav":{"home":"Accueil","old":"Vieux"},"legacy":{"deep":{"x":"X"}}}`)

	orphans := differ.FindOrphans("fr", "common", base, target)
	require.Len(t, orphans, 2)

	cleaned, removed := Clean(target, orphans)
	assert.Equal(t, 2, removed)
	assert.Equal(t, `{"nav":{"home":"Accueil"}}`, cleaned.String())
	assert.Len(t, differ.FindOrphans("fr", "common", base, cleaned), 0)
	assert.True(t, target.Has(tree.ParsePath("legacy.deep.x")), "input is not mutated")
}
