package backup

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mpontes/stowaway/pkg/types"
)

// copyTree recursively copies src to dst, preserving permission bits.
// Symlinks are recreated as symlinks with the same target, never
// followed. Parent directories of dst are created as needed.
func copyTree(fs types.FS, src, dst string) error {
	info, err := fs.Lstat(src)
	if err != nil {
		return fmt.Errorf("lstat %s: %w", src, err)
	}

	if err := fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("mkdir parents for %s: %w", dst, err)
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		target, err := fs.Readlink(src)
		if err != nil {
			return fmt.Errorf("readlink %s: %w", src, err)
		}
		if err := fs.Symlink(target, dst); err != nil {
			return fmt.Errorf("symlink %s: %w", dst, err)
		}

	case info.IsDir():
		if err := fs.MkdirAll(dst, info.Mode().Perm()); err != nil {
			return fmt.Errorf("mkdir %s: %w", dst, err)
		}
		entries, err := fs.ReadDir(src)
		if err != nil {
			return fmt.Errorf("readdir %s: %w", src, err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if err := copyTree(fs, filepath.Join(src, name), filepath.Join(dst, name)); err != nil {
				return err
			}
		}

	default:
		data, err := fs.ReadFile(src)
		if err != nil {
			return fmt.Errorf("read %s: %w", src, err)
		}
		if err := fs.WriteFile(dst, data, info.Mode().Perm()); err != nil {
			return fmt.Errorf("write %s: %w", dst, err)
		}
	}

	return nil
}
