package types

import (
	"os"
	"path/filepath"
)

// Pack represents a directory containing one application's tracked
// configuration files, mirroring their target layout under the home
// directory. Packs are discovered fresh on every run and are immutable
// for the run's duration.
type Pack struct {
	// Name is the pack name (the directory name)
	Name string

	// Path is the absolute path to the pack directory
	Path string
}

// FilePath returns the full path to a file within the pack
func (p *Pack) FilePath(filename string) string {
	return filepath.Join(p.Path, filename)
}

// Exists checks whether the pack directory is still present on disk.
// Discovery and deployment may race with external deletion; callers
// treat a vanished pack as a no-op, not an error.
func (p *Pack) Exists(fs FS) (bool, error) {
	info, err := fs.Stat(p.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
