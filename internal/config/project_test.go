package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sherlock/pkg/errors"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "extensionless json",
			file:    ".i18n-sherlockrc",
			content: `{"baseLocale":"en","locales":["fr","de"],"path":"locales/{locale}/{namespace}.json","allowIdentical":["en-GB"]}`,
		},
		{
			name: "yaml",
			file: ".i18n-sherlockrc.yaml",
			content: `baseLocale: en
locales:
  - fr
  - de
path: locales/{locale}/{namespace}.json
allowIdentical:
  - en-GB
`,
		},
		{
			name: "toml",
			file: "i18n-sherlock.config.toml",
			content: `baseLocale = "en"
locales = ["fr", "de"]
path = "locales/{locale}/{namespace}.json"
allowIdentical = ["en-GB"]
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.file, tt.content)
			p, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, "en", p.BaseLocale)
			assert.Equal(t, []string{"fr", "de"}, p.Locales)
			assert.Equal(t, "locales/{locale}/{namespace}.json", p.Path)
			assert.Equal(t, []string{"en-GB"}, p.AllowIdentical)
			assert.Equal(t, path, p.File)
		})
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := writeConfig(t, dir, "bad.json", `{"baseLocale":"en","locales":["not a tag!"],"path":"{locale}/{namespace}.json"}`)
	_, err := Load(bad)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	noNS := writeConfig(t, dir, "nons.json", `{"baseLocale":"en","locales":["fr"],"path":"{locale}.json"}`)
	_, err = Load(noNS)
	assert.True(t, errors.IsValidationError(err))

	noBase := writeConfig(t, dir, "nobase.json", `{"locales":["fr"],"path":"{locale}/{namespace}.json"}`)
	_, err = Load(noBase)
	assert.True(t, errors.IsValidationError(err))

	_, err = Load(filepath.Join(dir, "absent.json"))
	var cfgErr *errors.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestFindSearchesParents(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, ".i18n-sherlockrc.json", `{}`)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestDiscoverExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "custom.yaml", "baseLocale: en\nlocales: [fr]\npath: \"{locale}/{namespace}.json\"\n")

	p, err := Discover(t.TempDir(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"fr"}, p.Locales)
}

func TestTargets(t *testing.T) {
	p := Default()

	all, err := p.Targets([]string{"all"})
	require.NoError(t, err)
	assert.Equal(t, []string{"es", "fr-ca"}, all)

	some, err := p.Targets([]string{"en", "de", "de", "es"})
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "es"}, some, "base locale and duplicates are dropped")

	_, err = p.Targets([]string{"bad tag"})
	assert.True(t, errors.IsValidationError(err))

	assert.Equal(t, []string{"en", "es", "fr-ca"}, p.AllLocales())
	assert.True(t, p.IdenticalAllowed("en-ca"))
	assert.False(t, p.IdenticalAllowed("es"))
	assert.Equal(t, "locales/{locale}/{namespace}.json", p.Pattern().String())
}

func TestInit(t *testing.T) {
	for _, ft := range []FileType{FileTypeJSON, FileTypeYAML, FileTypeTOML} {
		t.Run(string(ft), func(t *testing.T) {
			dir := t.TempDir()
			path, err := Init(dir, Default(), ft)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, ".i18n-sherlockrc."+string(ft)), path)

			p, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, Default().BaseLocale, p.BaseLocale)
			assert.Equal(t, Default().Locales, p.Locales)
			assert.Equal(t, Default().Path, p.Path)
			assert.Equal(t, Default().AllowIdentical, p.AllowIdentical)

			_, err = Init(dir, Default(), ft)
			assert.True(t, errors.IsAlreadyExists(err))
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := Marshal(Default(), FileTypeJSON)
	require.NoError(t, err)
	assert.Equal(t, `{
  "baseLocale": "en",
  "locales": [
    "es",
    "fr-ca"
  ],
  "path": "locales/{locale}/{namespace}.json",
  "allowIdentical": [
    "en-ca"
  ]
}
`, string(data))

	_, err = Marshal(Default(), "ini")
	assert.True(t, errors.IsValidationError(err))
}
