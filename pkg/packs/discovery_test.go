// Test Type: Unit Test
// Description: Pack discovery over a real temp directory tree

package packs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpontes/stowaway/pkg/config"
	"github.com/mpontes/stowaway/pkg/errors"
	"github.com/mpontes/stowaway/pkg/filesystem"
	"github.com/mpontes/stowaway/pkg/packs"
)

func mkdir(t *testing.T, parts ...string) string {
	t.Helper()
	path := filepath.Join(parts...)
	require.NoError(t, os.MkdirAll(path, 0755))
	return path
}

func TestDiscover(t *testing.T) {
	fs := filesystem.NewOS()
	cfg := config.Default()

	t.Run("finds_immediate_subdirectories_sorted", func(t *testing.T) {
		root := t.TempDir()
		mkdir(t, root, "zsh")
		mkdir(t, root, "i3")
		mkdir(t, root, "vim")
		// Files at the root are not packs
		require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("#"), 0644))

		found, err := packs.Discover(fs, root, cfg)
		require.NoError(t, err)

		var names []string
		for _, p := range found {
			names = append(names, p.Name)
		}
		assert.Equal(t, []string{"i3", "vim", "zsh"}, names)
	})

	t.Run("empty_root_yields_empty_slice", func(t *testing.T) {
		found, err := packs.Discover(fs, t.TempDir(), cfg)
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("missing_root_is_not_found", func(t *testing.T) {
		_, err := packs.Discover(fs, filepath.Join(t.TempDir(), "nope"), cfg)
		assert.True(t, errors.IsCode(err, errors.ErrNotFound))
	})

	t.Run("file_root_is_invalid_input", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "rootfile")
		require.NoError(t, os.WriteFile(root, []byte("x"), 0644))

		_, err := packs.Discover(fs, root, cfg)
		assert.True(t, errors.IsCode(err, errors.ErrInvalidInput))
	})

	t.Run("skips_hidden_except_dot_config", func(t *testing.T) {
		root := t.TempDir()
		mkdir(t, root, ".git")
		mkdir(t, root, ".config")
		mkdir(t, root, "zsh")

		found, err := packs.Discover(fs, root, cfg)
		require.NoError(t, err)

		var names []string
		for _, p := range found {
			names = append(names, p.Name)
		}
		assert.Equal(t, []string{".config", "zsh"}, names)
	})

	t.Run("skips_ignored_patterns", func(t *testing.T) {
		root := t.TempDir()
		mkdir(t, root, "docs")
		mkdir(t, root, "scripts")
		mkdir(t, root, "tmux")

		found, err := packs.Discover(fs, root, cfg)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "tmux", found[0].Name)
	})

	t.Run("skips_pack_with_skip_config", func(t *testing.T) {
		root := t.TempDir()
		skipped := mkdir(t, root, "work-only")
		mkdir(t, root, "zsh")
		require.NoError(t, os.WriteFile(filepath.Join(skipped, ".stowaway.toml"), []byte("skip = true\n"), 0644))

		found, err := packs.Discover(fs, root, cfg)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "zsh", found[0].Name)
	})
}

func TestSelect(t *testing.T) {
	root := t.TempDir()
	mkdir(t, root, "zsh")
	mkdir(t, root, "i3")

	all, err := packs.Discover(filesystem.NewOS(), root, config.Default())
	require.NoError(t, err)

	t.Run("no_names_selects_all", func(t *testing.T) {
		selected, err := packs.Select(all, nil)
		require.NoError(t, err)
		assert.Len(t, selected, 2)
	})

	t.Run("explicit_names_keep_argument_order", func(t *testing.T) {
		selected, err := packs.Select(all, []string{"zsh", "i3"})
		require.NoError(t, err)
		require.Len(t, selected, 2)
		assert.Equal(t, "zsh", selected[0].Name)
	})

	t.Run("unknown_name_is_an_error", func(t *testing.T) {
		_, err := packs.Select(all, []string{"nvim"})
		assert.True(t, errors.IsCode(err, errors.ErrPackNotFound))
	})
}
