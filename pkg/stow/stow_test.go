package stow

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpontes/stowaway/pkg/errors"
	"github.com/mpontes/stowaway/pkg/types"
)

func TestParseActions(t *testing.T) {
	output := `MKDIR: .config
LINK: .zshrc => dotfiles/zsh/.zshrc
LINK: .config/i3/config => ../dotfiles/i3/.config/i3/config
UNLINK: .stale
WARNING! unrelated diagnostic line
`

	actions := ParseActions(output)
	require.Len(t, actions, 4)

	assert.Equal(t, types.ActionMkdir, actions[0].Kind)
	assert.Equal(t, ".config", actions[0].Detail)
	assert.Equal(t, types.ActionLink, actions[1].Kind)
	assert.Equal(t, ".zshrc => dotfiles/zsh/.zshrc", actions[1].Detail)
	assert.Equal(t, types.ActionUnlink, actions[3].Kind)

	assert.Len(t, actions.Links(), 2)
}

func TestParseActionsEmptyOutput(t *testing.T) {
	assert.Empty(t, ParseActions(""))
	assert.Empty(t, ParseActions("nothing relevant\n"))
}

func TestPreflight(t *testing.T) {
	t.Run("present_tools_pass", func(t *testing.T) {
		// sh is present on any platform these tests run on
		assert.NoError(t, Preflight("sh"))
	})

	t.Run("missing_tool_is_fatal_code", func(t *testing.T) {
		err := Preflight("definitely-not-a-real-tool-xyz")
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrToolMissing))
	})
}

// fakeStow writes a shell script that mimics stow's verbose output so
// Materialize can be exercised without GNU Stow installed.
func fakeStow(t *testing.T, script string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "stow")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	return path
}

func TestMaterialize(t *testing.T) {
	workDir := t.TempDir()

	t.Run("parses_actions_on_success", func(t *testing.T) {
		bin := fakeStow(t, `echo "LINK: .zshrc => dotfiles/zsh/.zshrc" >&2
exit 0`)
		s := New(bin, "/home/user", false)

		actions, err := s.Materialize(context.Background(), "zsh", workDir)
		require.NoError(t, err)
		require.Len(t, actions, 1)
		assert.Equal(t, types.ActionLink, actions[0].Kind)
	})

	t.Run("nonzero_exit_is_conflict", func(t *testing.T) {
		bin := fakeStow(t, `echo "WARNING! stowing zsh would cause conflicts:" >&2
exit 1`)
		s := New(bin, "/home/user", false)

		_, err := s.Materialize(context.Background(), "zsh", workDir)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrStowConflict))
	})

	t.Run("dry_run_passes_simulate_flag", func(t *testing.T) {
		bin := fakeStow(t, `case "$*" in *--no*) exit 0 ;; *) exit 2 ;; esac`)
		s := New(bin, "/home/user", true)

		_, err := s.Materialize(context.Background(), "zsh", workDir)
		assert.NoError(t, err)
	})

	t.Run("runs_from_working_directory", func(t *testing.T) {
		bin := fakeStow(t, `echo "LINK: cwd => $PWD" >&2`)
		s := New(bin, "/home/user", false)

		actions, err := s.Materialize(context.Background(), "zsh", workDir)
		require.NoError(t, err)
		require.Len(t, actions, 1)
		assert.Contains(t, actions[0].Detail, filepath.Base(workDir))
	})
}
