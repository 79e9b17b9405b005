package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sherlock/pkg/tree"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		name       string
		segment    string
		candidates []string
		want       []Suggestion
	}{
		{
			name:       "transposition",
			segment:    "settings",
			candidates: []string{"profile", "settigns"},
			want:       []Suggestion{{Key: "settigns", Distance: 2}},
		},
		{
			name:       "case insensitive",
			segment:    "PROFILE",
			candidates: []string{"profile"},
			want:       []Suggestion{{Key: "profile", Distance: 0}},
		},
		{
			name:       "best first, ties in input order",
			segment:    "nav",
			candidates: []string{"navs", "nab", "nv", "footer"},
			want: []Suggestion{
				{Key: "navs", Distance: 1},
				{Key: "nab", Distance: 1},
				{Key: "nv", Distance: 1},
			},
		},
		{
			name:       "nothing close",
			segment:    "xyzzy",
			candidates: []string{"settings", "profile"},
			want:       nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.segment, tt.candidates))
		})
	}
}

func TestSuggestOrdersByDistance(t *testing.T) {
	got := Suggest("title", []string{"titel", "title2", "tile"})
	require.Len(t, got, 3)
	assert.Equal(t, "title2", got[0].Key)
	assert.Equal(t, 1, got[0].Distance)
	assert.Equal(t, "tile", got[1].Key)
	assert.Equal(t, "titel", got[2].Key)
}

func base(t *testing.T) *tree.Tree {
	t.Helper()
	root, err := tree.Parse([]byte(`{"settigns":{"title":"Settings"},"profile":{"name":"Name"}}`))
	require.NoError(t, err)
	return root
}

func TestResolvePathAcceptsSuggestion(t *testing.T) {
	var asked []Request
	r := Func(func(_ context.Context, req Request) (bool, error) {
		asked = append(asked, req)
		return true, nil
	})

	res, err := ResolvePath(context.Background(), base(t), tree.ParsePath("settings.subtitle"), r)
	require.NoError(t, err)

	require.Len(t, asked, 1)
	assert.Equal(t, "settings", asked[0].Segment)
	assert.Equal(t, "settigns", asked[0].Suggestions[0].Key)

	assert.Equal(t, "settigns.subtitle", res.Path.String())
	assert.True(t, res.Corrected())
	assert.Equal(t, []Correction{{Index: 0, From: "settings", To: "settigns"}}, res.Corrections)
	assert.Equal(t, 1, res.Existing)
}

func TestResolvePathRejectCreatesFresh(t *testing.T) {
	res, err := ResolvePath(context.Background(), base(t), tree.ParsePath("settings.title"), RejectAll)
	require.NoError(t, err)
	assert.Equal(t, "settings.title", res.Path.String())
	assert.False(t, res.Corrected())
	assert.Zero(t, res.Existing)
}

func TestResolvePathNoSuggestion(t *testing.T) {
	called := false
	r := Func(func(context.Context, Request) (bool, error) {
		called = true
		return true, nil
	})

	res, err := ResolvePath(context.Background(), base(t), tree.ParsePath("xyzzy.title"), r)
	require.NoError(t, err)
	assert.False(t, called, "no sibling within distance means no prompt")
	assert.Equal(t, "xyzzy.title", res.Path.String())

	root := base(t)
	root.Set(res.Path, tree.Leaf("T"))
	assert.True(t, root.Get(tree.Path{"xyzzy"}).IsNode(), "a new node is created")
}

func TestResolvePathFreshSegmentsAreNotSuggested(t *testing.T) {
	calls := 0
	r := Func(func(context.Context, Request) (bool, error) {
		calls++
		return false, nil
	})

	// "profil" is close to "profile" and is rejected; "nam" would be close
	// to "name" but lives under the freshly created node.
	res, err := ResolvePath(context.Background(), base(t), tree.ParsePath("profil.nam.first"), r)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "profil.nam.first", res.Path.String())
}

func TestResolvePathExistingPath(t *testing.T) {
	res, err := ResolvePath(context.Background(), base(t), tree.ParsePath("profile.name"), RejectAll)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Existing)
	assert.Equal(t, "profile.name", res.Path.String())
}

func TestResolvePathPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	r := Func(func(context.Context, Request) (bool, error) { return false, boom })

	_, err := ResolvePath(context.Background(), base(t), tree.ParsePath("settings.title"), r)
	assert.ErrorIs(t, err, boom)
}
