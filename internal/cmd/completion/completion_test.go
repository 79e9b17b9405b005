package completion

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sherlock/internal/cmd/constants"
	"github.com/agentstation/sherlock/pkg/errors"
)

func TestGenerate(t *testing.T) {
	root := &cobra.Command{Use: "sherlock"}
	root.AddCommand(&cobra.Command{Use: "audit", Run: func(*cobra.Command, []string) {}})

	for _, shell := range constants.Shells {
		t.Run(shell, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Generate(root, shell, &buf))
			assert.Contains(t, buf.String(), "sherlock")
		})
	}

	err := Generate(root, "tcsh", &bytes.Buffer{})
	assert.True(t, errors.IsValidationError(err))
}

func TestPath(t *testing.T) {
	t.Setenv("HOMEBREW_PREFIX", "/brew")

	p, err := Path("sherlock", constants.ShellZsh)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/brew", "share", "zsh", "site-functions", "_sherlock"), p)

	_, err = Path("sherlock", constants.ShellPowerShell)
	assert.True(t, errors.IsValidationError(err))
}

func TestInstallAndUninstall(t *testing.T) {
	t.Setenv("HOMEBREW_PREFIX", t.TempDir())
	root := &cobra.Command{Use: "sherlock"}

	var out bytes.Buffer
	path, err := Install(root, constants.ShellFish, &out)
	require.NoError(t, err)
	assert.FileExists(t, path)

	require.NoError(t, Uninstall("sherlock", constants.ShellFish, &out))
	assert.NoFileExists(t, path)
	assert.Contains(t, out.String(), "Removed fish completions")
}
