package preview

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sherlock"
	"github.com/agentstation/sherlock/pkg/tree"
)

func mustParse(t *testing.T, s string) *tree.Tree {
	t.Helper()
	tr, err := tree.Parse([]byte(s))
	require.NoError(t, err)
	return tr
}

func TestPrintFile(t *testing.T) {
	fc := &sherlock.FileChange{
		Path:   "locales/fr/common.json",
		Before: mustParse(t, `{"greeting": {"hello": "Bonjour"}}`),
		After:  mustParse(t, `{"greeting": {"hello": "Bonjour", "bye": "Goodbye"}}`),
	}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, false).PrintFile(fc))
	out := buf.String()
	assert.Contains(t, out, "--- locales/fr/common.json\n")
	assert.Contains(t, out, `-     "hello": "Bonjour"`+"\n")
	assert.Contains(t, out, `+     "hello": "Bonjour",`+"\n")
	assert.Contains(t, out, `+     "bye": "Goodbye"`+"\n")
	assert.NotContains(t, out, `"greeting"`)
}

func TestPrintNewFile(t *testing.T) {
	res := &sherlock.ChangeResult{Locales: []sherlock.LocaleChanges{{
		Locale: "fr",
		Files: []*sherlock.FileChange{{
			Path:  "locales/fr/admin.json",
			After: mustParse(t, `{"title": "Admin"}`),
		}},
	}}}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, false).Print(res))
	assert.Contains(t, buf.String(), `+   "title": "Admin"`)
}

func TestMergePatch(t *testing.T) {
	fc := &sherlock.FileChange{
		Path:   "locales/fr/common.json",
		Before: mustParse(t, `{"greeting": {"hello": "Bonjour"}, "legacy": "Ancien"}`),
		After:  mustParse(t, `{"greeting": {"hello": "Bonjour", "bye": "Goodbye"}}`),
	}
	patch, err := MergePatch(fc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"greeting": {"bye": "Goodbye"}, "legacy": null}`, string(patch))

	fc.Before = nil
	patch, err = MergePatch(fc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"greeting": {"hello": "Bonjour", "bye": "Goodbye"}}`, string(patch))
}

func TestPatches(t *testing.T) {
	res := &sherlock.ChangeResult{DryRun: true, Locales: []sherlock.LocaleChanges{{
		Locale: "fr",
		Files: []*sherlock.FileChange{
			{
				Locale:    "fr",
				Namespace: "admin",
				Path:      "locales/fr/admin.json",
				After:     mustParse(t, `{"title": "Admin"}`),
				Added:     1,
			},
			{
				Locale:    "fr",
				Namespace: "common",
				Path:      "locales/fr/common.json",
				Before:    mustParse(t, `{"title": "Titre"}`),
				After:     mustParse(t, `{"title": "Titre"}`),
			},
		},
	}}}

	patches, err := Patches(res)
	require.NoError(t, err)
	require.Len(t, patches, 1)
	assert.Equal(t, "admin", patches[0].Namespace)
	assert.Equal(t, map[string]any{"title": "Admin"}, patches[0].Patch)
}
