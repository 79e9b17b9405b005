package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sherlock"
	"github.com/agentstation/sherlock/pkg/errors"
	"github.com/agentstation/sherlock/pkg/logging"
)

// newProject writes a project with en as base and fr as target into a
// temporary directory.
func newProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"locales/en/common.json": `{"greeting": {"hello": "Hello", "bye": "Goodbye"}, "title": "Sherlock"}`,
		"locales/fr/common.json": `{"greeting": {"hello": "Bonjour"}, "legacy": "Ancien"}`,
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	cfg, err := json.Marshal(map[string]any{
		"baseLocale": "en",
		"locales":    []string{"fr"},
		"path":       filepath.ToSlash(filepath.Join(dir, "locales", "{locale}", "{namespace}.json")),
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".i18n-sherlockrc.json"), cfg, 0o644))
	return dir
}

func newTestApp(t *testing.T, dir string) *App {
	t.Helper()
	app, err := New("1.0.0", "abc123", "2024-01-01", "test",
		WithConfig(&Config{WorkDir: dir, Concurrency: 2, LogFormat: "json", LogOutput: "discard"}),
		WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)
	return app
}

// run executes the CLI and returns stdout and stderr.
func run(t *testing.T, app *App, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := app.createRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2024-01-01", "test")
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2024-01-01", app.Date())
	assert.Equal(t, "test", app.BuiltBy())
	assert.NotNil(t, app.Logger())
	assert.NotNil(t, app.Config())
}

func TestApp_Project(t *testing.T) {
	dir := newProject(t)
	app := newTestApp(t, dir)

	p1, err := app.Project()
	require.NoError(t, err)
	assert.Equal(t, "en", p1.BaseLocale)
	assert.Equal(t, []string{"fr"}, p1.Locales)

	p2, err := app.Project()
	require.NoError(t, err)
	assert.Same(t, p1, p2)
}

func TestApp_ProjectNotFound(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	app.config.ConfigFile = filepath.Join(t.TempDir(), "missing.json")

	_, err := app.Project()
	require.Error(t, err)
	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestApp_Client_ThreadSafe(t *testing.T) {
	app := newTestApp(t, newProject(t))

	const goroutines = 50
	var wg sync.WaitGroup
	results := make([]sherlock.Client, goroutines)
	errs := make([]error, goroutines)
	for i := range goroutines {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = app.Client()
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "goroutine %d", i)
		assert.Same(t, results[0], results[i])
	}

	custom, err := app.Client(sherlock.WithConfirmer(sherlock.NeverConfirm))
	require.NoError(t, err)
	assert.NotSame(t, results[0], custom)
}

func TestExecute_Stats(t *testing.T) {
	app := newTestApp(t, newProject(t))

	stdout, _, err := run(t, app, "", "stats", "-o", "json")
	require.NoError(t, err)

	var res sherlock.StatsResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, "en", res.BaseLocale)
	require.Len(t, res.Locales, 1)
	assert.Equal(t, 3, res.Locales[0].Total)
	assert.Equal(t, 1, res.Locales[0].Translated)
}

func TestExecute_Audit(t *testing.T) {
	app := newTestApp(t, newProject(t))

	stdout, _, err := run(t, app, "", "audit", "fr", "--orphans", "-o", "json")
	require.NoError(t, err)

	var res struct {
		Missing []struct {
			Namespace string   `json:"namespace"`
			Path      []string `json:"path"`
		} `json:"missing"`
		Orphans []struct {
			Value string `json:"value"`
		} `json:"orphans"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Len(t, res.Missing, 2)
	require.Len(t, res.Orphans, 1)
	assert.Equal(t, "Ancien", res.Orphans[0].Value)
}

func TestExecute_SyncPromptsAndWrites(t *testing.T) {
	dir := newProject(t)
	app := newTestApp(t, dir)

	_, stderr, err := run(t, app, "y\n", "sync", "fr", "-o", "table", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, stderr, "(y/N)")
	assert.Contains(t, stderr, `"title": "Sherlock"`)

	data, err := os.ReadFile(filepath.Join(dir, "locales", "fr", "common.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"bye": "Goodbye"`)
	assert.Contains(t, string(data), `"legacy": "Ancien"`)
}

func TestExecute_SyncDeclined(t *testing.T) {
	dir := newProject(t)
	app := newTestApp(t, dir)

	_, _, err := run(t, app, "n\n", "sync", "fr", "-o", "table", "--no-color")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "locales", "fr", "common.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Goodbye")
}

func TestExecute_SyncDryRunPatches(t *testing.T) {
	dir := newProject(t)
	app := newTestApp(t, dir)

	stdout, _, err := run(t, app, "", "sync", "all", "--dry-run", "-o", "json")
	require.NoError(t, err)

	var out struct {
		Patches []struct {
			Namespace string         `json:"namespace"`
			Patch     map[string]any `json:"patch"`
		} `json:"patches"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out.Patches, 1)
	assert.Equal(t, "common", out.Patches[0].Namespace)
	assert.Equal(t, map[string]any{
		"greeting": map[string]any{"bye": "Goodbye"},
		"title":    "Sherlock",
	}, out.Patches[0].Patch)
}

func TestExecute_InvalidFormat(t *testing.T) {
	app := newTestApp(t, newProject(t))

	_, _, err := run(t, app, "", "stats", "-o", "xml")
	assert.True(t, errors.IsValidationError(err))
}

func TestExecute_Version(t *testing.T) {
	app := newTestApp(t, t.TempDir())

	stdout, _, err := run(t, app, "", "version", "-v")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sherlock 1.0.0")
	assert.Contains(t, stdout, "commit:   abc123")
}
