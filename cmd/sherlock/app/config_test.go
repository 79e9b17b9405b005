package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sherlock/pkg/constants"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("SHERLOCK_CONCURRENCY", "")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "auto", config.LogFormat)
	assert.Equal(t, "stderr", config.LogOutput)
	assert.Equal(t, ".", config.WorkDir)
	assert.Equal(t, constants.MaxConcurrentLoads, config.Concurrency)
}

func TestConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("SHERLOCK_VERBOSE", "true")
	t.Setenv("SHERLOCK_FORMAT", "json")
	t.Setenv("SHERLOCK_CONFIG", "custom.yaml")
	t.Setenv("SHERLOCK_CONCURRENCY", "3")
	t.Setenv("LOG_LEVEL", "error")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, config.Verbose)
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "custom.yaml", config.ConfigFile)
	assert.Equal(t, 3, config.Concurrency)
	assert.Equal(t, "error", config.EnvLogLevel)
	assert.Empty(t, config.LogLevel)
}

func TestConfig_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, config.NoColor)
}

func TestConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SHERLOCK_FORMAT=yaml\nLOG_OUTPUT=stdout\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("SHERLOCK_FORMAT=wide\n"), 0o644))
	t.Chdir(dir)

	// Registered so the variables loaded from the files are restored.
	t.Setenv("SHERLOCK_FORMAT", "")
	t.Setenv("LOG_OUTPUT", "")
	require.NoError(t, os.Unsetenv("SHERLOCK_FORMAT"))
	require.NoError(t, os.Unsetenv("LOG_OUTPUT"))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "wide", config.Format, ".env.local overrides .env")
	assert.Equal(t, "stdout", config.LogOutput)
}

func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{Format: "json", ConfigFile: "env.yaml"}

	config.UpdateFromFlags(true, false, true, "", "", "")
	assert.True(t, config.Verbose)
	assert.True(t, config.NoColor)
	assert.Equal(t, "json", config.Format, "empty flags keep the environment")
	assert.Equal(t, "env.yaml", config.ConfigFile)

	config.UpdateFromFlags(false, true, false, "yaml", "debug", "flag.yaml")
	assert.True(t, config.Quiet)
	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "flag.yaml", config.ConfigFile)
}
