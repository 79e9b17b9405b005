package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sherlock"
	"github.com/agentstation/sherlock/pkg/differ"
	"github.com/agentstation/sherlock/pkg/errors"
	"github.com/agentstation/sherlock/pkg/tree"
)

func item(ns, path, value string, status differ.Status) sherlock.Item {
	return sherlock.Item{
		Namespace: ns,
		Path:      tree.ParsePath(path),
		Entry:     differ.Entry{Value: value, Status: status},
	}
}

func TestCompileEmpty(t *testing.T) {
	f, err := Compile("  ")
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.True(t, f.Match(Env{}))
	assert.Nil(t, f.EntryFilter())
}

func TestCompileErrors(t *testing.T) {
	_, err := Compile("Namespace ==")
	assert.True(t, errors.IsValidationError(err))

	_, err = Compile(`Namespace + "x"`)
	assert.True(t, errors.IsValidationError(err), "non-boolean expressions are rejected")

	_, err = Compile("Unknown == 1")
	assert.True(t, errors.IsValidationError(err))
}

func TestEntryFilter(t *testing.T) {
	tests := []struct {
		name   string
		source string
		locale string
		item   sherlock.Item
		want   bool
	}{
		{"namespace", `Namespace == "admin"`, "fr", item("admin", "users.list", "User list", differ.StatusMissingKey), true},
		{"other namespace", `Namespace == "admin"`, "fr", item("common", "title", "Sherlock", differ.StatusMissingKey), false},
		{"status", `Status == "untranslated"`, "fr", item("common", "greeting.bye", "Goodbye", differ.StatusUntranslated), true},
		{"key prefix", `Key startsWith "common.greeting"`, "fr", item("common", "greeting.bye", "Goodbye", differ.StatusUntranslated), true},
		{"locale", `Locale in ["es", "de"]`, "fr", item("common", "title", "Sherlock", differ.StatusMissingKey), false},
		{"value", `Value contains "list"`, "es", item("admin", "users.list", "User list", differ.StatusMissingKey), true},
		{"path", `Path == "users.list" && !Raw`, "es", item("admin", "users.list", "User list", differ.StatusMissingKey), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.source, f.String())
			assert.Equal(t, tt.want, f.EntryFilter()(tt.locale, tt.item))
		})
	}
}
