package find

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sherlock/internal/appcontext"
	"github.com/agentstation/sherlock/internal/config"
)

func newMock(t *testing.T, format string) *appcontext.Mock {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"en/common.json": `{"auth": {"login": "Sign in"}}`,
		"fr/common.json": `{"auth": {"login": "Connexion"}, "old": "Vieux"}`,
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	project := &config.Project{
		BaseLocale: "en",
		Locales:    []string{"fr", "de"},
		Path:       filepath.ToSlash(filepath.Join(dir, "{locale}", "{namespace}.json")),
	}
	return &appcontext.Mock{
		ProjectFunc:      func() (*config.Project, error) { return project, nil },
		OutputFormatFunc: func() string { return format },
	}
}

func execute(t *testing.T, mock *appcontext.Mock, args ...string) (string, string) {
	t.Helper()
	cmd := NewCommand(mock)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return stdout.String(), stderr.String()
}

func TestFind_BaseMatch(t *testing.T) {
	out, _ := execute(t, newMock(t, "json"), "sign IN")

	var got struct {
		Match struct {
			Namespace string   `json:"namespace"`
			Path      []string `json:"path"`
		} `json:"match"`
		Value        string `json:"value"`
		Translations []struct {
			Locale  string `json:"locale"`
			Value   string `json:"value"`
			Missing bool   `json:"missing"`
		} `json:"translations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "common", got.Match.Namespace)
	assert.Equal(t, []string{"auth", "login"}, got.Match.Path)
	assert.Equal(t, "Sign in", got.Value)
	require.Len(t, got.Translations, 2)
	assert.Equal(t, "fr", got.Translations[0].Locale)
	assert.Equal(t, "Connexion", got.Translations[0].Value)
	assert.Equal(t, "de", got.Translations[1].Locale)
	assert.True(t, got.Translations[1].Missing)
}

func TestFind_OrphanMatch(t *testing.T) {
	out, _ := execute(t, newMock(t, "table"), "vieux")

	assert.Contains(t, out, "common.old")
	assert.Contains(t, out, "Vieux")
}

func TestFind_NotFound(t *testing.T) {
	out, errOut := execute(t, newMock(t, "table"), "nowhere")

	assert.Empty(t, out)
	assert.Contains(t, errOut, `"nowhere" was not found in any locale`)
}

func TestFind_RequiresText(t *testing.T) {
	cmd := NewCommand(&appcontext.Mock{})
	cmd.SetArgs(nil)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
