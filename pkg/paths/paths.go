// Package paths provides centralized path handling for stowaway:
// dotfiles-root resolution, XDG-compliant config locations, and the
// per-pack path helpers used throughout the engine.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/mpontes/stowaway/pkg/errors"
)

// Environment variable names
const (
	// EnvDotfilesRoot is the primary environment variable for dotfiles location
	EnvDotfilesRoot = "DOTFILES_ROOT"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// DefaultDotfilesDir is the default directory name for dotfiles under $HOME
	DefaultDotfilesDir = "dotfiles"

	// AppDirName is the directory name for stowaway-specific files
	AppDirName = "stowaway"

	// RootConfigFile is the configuration file looked up at the dotfiles root
	RootConfigFile = ".stowaway.toml"

	// PackConfigFile is the per-pack override file inside a pack directory
	PackConfigFile = ".stowaway.toml"

	// UserConfigFile is the user-level configuration file name
	UserConfigFile = "config.toml"
)

// Paths provides centralized path management for stowaway
type Paths interface {
	DotfilesRoot() string
	HomeDir() string
	UsedFallback() bool
	PackPath(packName string) string
	PackConfigPath(packName string) string
	RootConfigPath() string
	UserConfigPath() string
}

type paths struct {
	dotfilesRoot string
	homeDir      string

	// usedFallback indicates if we fell back to cwd (for warning display)
	usedFallback bool
}

// New creates a new Paths instance with the given dotfiles root.
// If dotfilesRoot is empty, it is determined from the environment:
// DOTFILES_ROOT first, then ~/dotfiles if it exists, then the current
// working directory as a fallback (flagged via UsedFallback).
func New(dotfilesRoot string) (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv(EnvHome)
		if home == "" {
			return nil, errors.Wrap(err, errors.ErrNotFound, "cannot determine home directory")
		}
	}

	p := &paths{homeDir: home}

	if dotfilesRoot == "" {
		root, usedFallback, err := findDotfilesRoot(home)
		if err != nil {
			return nil, err
		}
		p.dotfilesRoot = root
		p.usedFallback = usedFallback
	} else {
		p.dotfilesRoot = ExpandHome(dotfilesRoot)
	}

	absRoot, err := filepath.Abs(p.dotfilesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for dotfiles root")
	}
	p.dotfilesRoot = absRoot

	return p, nil
}

// findDotfilesRoot determines the dotfiles root using the following priority:
// 1. DOTFILES_ROOT environment variable (if set)
// 2. ~/dotfiles (if it exists)
// 3. Current working directory (fallback, surfaced as a warning)
func findDotfilesRoot(home string) (string, bool, error) {
	if root := os.Getenv(EnvDotfilesRoot); root != "" {
		return ExpandHome(root), false, nil
	}

	conventional := filepath.Join(home, DefaultDotfilesDir)
	if info, err := os.Stat(conventional); err == nil && info.IsDir() {
		return conventional, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// DotfilesRoot returns the root directory for dotfiles
func (p *paths) DotfilesRoot() string {
	return p.dotfilesRoot
}

// HomeDir returns the deployment target directory
func (p *paths) HomeDir() string {
	return p.homeDir
}

// UsedFallback returns true if the current working directory was used as fallback
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

// PackPath returns the path to a specific pack
func (p *paths) PackPath(packName string) string {
	return filepath.Join(p.dotfilesRoot, packName)
}

// PackConfigPath returns the path to a pack's configuration file
func (p *paths) PackConfigPath(packName string) string {
	return filepath.Join(p.PackPath(packName), PackConfigFile)
}

// RootConfigPath returns the path to the dotfiles-root configuration file
func (p *paths) RootConfigPath() string {
	return filepath.Join(p.dotfilesRoot, RootConfigFile)
}

// UserConfigPath returns the XDG user-level configuration file path
func (p *paths) UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, UserConfigFile)
}

// IsInside reports whether path, after symlink resolution, lies inside
// root. Used by the backup manager's idempotence guard: targets already
// linked into the dotfiles tree are never backed up.
func IsInside(path, root string) (bool, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false, err
	}
	resolvedRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return false, err
	}

	rel, err := filepath.Rel(resolvedRoot, resolved)
	if err != nil {
		return false, nil
	}
	if rel == "." {
		return true, nil
	}
	return rel != ".." && !filepath.IsAbs(rel) &&
		!(len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)), nil
}
