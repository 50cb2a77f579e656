package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Contains(t, cfg.Patterns.PackIgnore, ".git")
	assert.Equal(t, 3, cfg.Deploy.WalkDepth)
	assert.Equal(t, "stow", cfg.Deploy.StowBinary)
	assert.True(t, cfg.Installers.Enabled)
	assert.Equal(t, "zsh", cfg.Installers.DefaultShell)
	assert.Equal(t, 30, cfg.Installers.ShellChangeTimeoutSeconds)
}

func TestLoadWithRootOverride(t *testing.T) {
	dir := t.TempDir()
	rootConfig := filepath.Join(dir, ".stowaway.toml")
	content := `
[deploy]
walk_depth = 5

[installers]
enabled = false
`
	require.NoError(t, os.WriteFile(rootConfig, []byte(content), 0644))

	cfg, err := Load("", rootConfig)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Deploy.WalkDepth)
	assert.False(t, cfg.Installers.Enabled)
	// Untouched keys keep their defaults
	assert.Equal(t, "stow", cfg.Deploy.StowBinary)
	assert.Contains(t, cfg.Patterns.PackIgnore, ".git")
}

func TestLoadUserThenRootPrecedence(t *testing.T) {
	dir := t.TempDir()

	userConfig := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(userConfig, []byte("[deploy]\nstow_binary = \"user-stow\"\nwalk_depth = 4\n"), 0644))

	rootConfig := filepath.Join(dir, ".stowaway.toml")
	require.NoError(t, os.WriteFile(rootConfig, []byte("[deploy]\nstow_binary = \"root-stow\"\n"), 0644))

	cfg, err := Load(userConfig, rootConfig)
	require.NoError(t, err)

	// Root config wins over user config; user config wins over defaults
	assert.Equal(t, "root-stow", cfg.Deploy.StowBinary)
	assert.Equal(t, 4, cfg.Deploy.WalkDepth)
}

func TestLoadMissingFilesAreIgnored(t *testing.T) {
	cfg, err := Load("/nonexistent/user.toml", "/nonexistent/.stowaway.toml")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Deploy.WalkDepth)
}

func TestLoadInvalidToml(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, ".stowaway.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[deploy\nbroken"), 0644))

	_, err := Load("", bad)
	assert.Error(t, err)
}

func TestLoadPackConfig(t *testing.T) {
	t.Run("missing_file_is_zero_config", func(t *testing.T) {
		cfg, err := LoadPackConfig(filepath.Join(t.TempDir(), ".stowaway.toml"))
		require.NoError(t, err)
		assert.False(t, cfg.Skip)
	})

	t.Run("skip_flag", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".stowaway.toml")
		require.NoError(t, os.WriteFile(path, []byte("skip = true\ndescription = \"work machine only\"\n"), 0644))

		cfg, err := LoadPackConfig(path)
		require.NoError(t, err)
		assert.True(t, cfg.Skip)
		assert.Equal(t, "work machine only", cfg.Description)
	})

	t.Run("invalid_toml_errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".stowaway.toml")
		require.NoError(t, os.WriteFile(path, []byte("skip = "), 0644))

		_, err := LoadPackConfig(path)
		assert.Error(t, err)
	})
}
