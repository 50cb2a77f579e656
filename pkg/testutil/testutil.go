// Package testutil provides shared helpers for stowaway tests:
// fixture creation on real temp directories, an isolated environment
// with its own $HOME and dotfiles root, and a fake link farm.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mpontes/stowaway/pkg/types"
)

// CreateFile creates a file with the given content inside dir and
// returns its path
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// CreateDir creates a directory (and parents) inside parent and
// returns its path
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()
	path := filepath.Join(parent, name)
	require.NoError(t, os.MkdirAll(path, 0755))
	return path
}

// CreateSymlink creates a symlink at link pointing to target
func CreateSymlink(t *testing.T, target, link string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(link), 0755))
	require.NoError(t, os.Symlink(target, link))
}

// SkipOnWindows skips tests that rely on POSIX symlinks and shells
func SkipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("not supported on Windows")
	}
}

// Env is an isolated test environment with its own home directory and
// dotfiles root
type Env struct {
	HomeDir      string
	DotfilesRoot string
	RunCtx       types.RunContext
}

// NewEnv creates an isolated environment under a temp directory and
// points $HOME and DOTFILES_ROOT at it for the duration of the test
func NewEnv(t *testing.T) *Env {
	t.Helper()

	home := t.TempDir()
	root := filepath.Join(home, "dotfiles")
	require.NoError(t, os.MkdirAll(root, 0755))

	t.Setenv("HOME", home)
	t.Setenv("DOTFILES_ROOT", root)

	return &Env{
		HomeDir:      home,
		DotfilesRoot: root,
		RunCtx:       types.NewRunContext(home, root, time.Now()),
	}
}

// AddPackFile creates a tracked file inside a pack of the environment's
// dotfiles root and returns its path
func (e *Env) AddPackFile(t *testing.T, pack, rel, content string) string {
	t.Helper()
	return CreateFile(t, filepath.Join(e.DotfilesRoot, pack), rel, content)
}
