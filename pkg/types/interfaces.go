package types

import (
	"context"
	"io/fs"
)

// FS is the filesystem interface required for stowaway operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
}

// LinkFarm materializes the symlinks for one pack. The production
// implementation shells out to GNU Stow; tests substitute a fake to
// exercise the deployer without the external tool.
type LinkFarm interface {
	Materialize(ctx context.Context, packName, workingDir string) (ActionLog, error)
}
