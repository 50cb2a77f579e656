package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithExplicitRoot(t *testing.T) {
	dir := t.TempDir()

	p, err := New(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, p.DotfilesRoot())
	assert.False(t, p.UsedFallback())
}

func TestNewResolvesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDotfilesRoot, dir)

	p, err := New("")
	require.NoError(t, err)

	assert.Equal(t, dir, p.DotfilesRoot())
	assert.False(t, p.UsedFallback())
}

func TestNewFallsBackToConventionalDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvDotfilesRoot, "")

	conventional := filepath.Join(home, DefaultDotfilesDir)
	require.NoError(t, os.MkdirAll(conventional, 0755))

	p, err := New("")
	require.NoError(t, err)

	assert.Equal(t, conventional, p.DotfilesRoot())
	assert.False(t, p.UsedFallback())
}

func TestNewFallsBackToCwd(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvDotfilesRoot, "")

	p, err := New("")
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, p.DotfilesRoot())
	assert.True(t, p.UsedFallback())
}

func TestPackPaths(t *testing.T) {
	dir := t.TempDir()
	p, err := New(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "zsh"), p.PackPath("zsh"))
	assert.Equal(t, filepath.Join(dir, "zsh", PackConfigFile), p.PackConfigPath("zsh"))
	assert.Equal(t, filepath.Join(dir, RootConfigFile), p.RootConfigPath())
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare_tilde", "~", home},
		{"tilde_slash", "~/dotfiles", filepath.Join(home, "dotfiles")},
		{"tilde_user", "~other/x", "~other/x"},
		{"absolute", "/etc/passwd", "/etc/passwd"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}

func TestIsInside(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()

	inner := filepath.Join(root, "zsh", ".zshrc")
	require.NoError(t, os.MkdirAll(filepath.Dir(inner), 0755))
	require.NoError(t, os.WriteFile(inner, []byte("# zsh"), 0644))

	t.Run("direct_child", func(t *testing.T) {
		ok, err := IsInside(inner, root)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("symlink_resolving_into_root", func(t *testing.T) {
		link := filepath.Join(outside, ".zshrc")
		require.NoError(t, os.Symlink(inner, link))

		ok, err := IsInside(link, root)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("symlink_resolving_elsewhere", func(t *testing.T) {
		other := filepath.Join(outside, "real.conf")
		require.NoError(t, os.WriteFile(other, []byte("x"), 0644))
		link := filepath.Join(outside, "link.conf")
		require.NoError(t, os.Symlink(other, link))

		ok, err := IsInside(link, root)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("dangling_symlink_errors", func(t *testing.T) {
		link := filepath.Join(outside, "dangling")
		require.NoError(t, os.Symlink(filepath.Join(outside, "missing"), link))

		_, err := IsInside(link, root)
		assert.Error(t, err)
	})
}
