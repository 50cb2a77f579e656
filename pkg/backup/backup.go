// Package backup relocates pre-existing files out of the way before
// symlinks are created over them. Displaced entries land under the
// per-run backup root at the same path they had relative to the home
// directory, so a run is always reversible by hand.
package backup

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/mpontes/stowaway/pkg/errors"
	"github.com/mpontes/stowaway/pkg/logging"
	"github.com/mpontes/stowaway/pkg/paths"
	"github.com/mpontes/stowaway/pkg/types"
)

// Manager decides per target path whether a backup is needed and
// performs it. One Manager serves one run; the backup root is fixed by
// the run context and created lazily on first use.
type Manager struct {
	fs     types.FS
	runctx *types.RunContext
	logger zerolog.Logger
}

// NewManager creates a backup manager bound to the given run context
func NewManager(fs types.FS, runctx *types.RunContext) *Manager {
	return &Manager{
		fs:     fs,
		runctx: runctx,
		logger: logging.GetLogger("backup"),
	}
}

// BackupIfNeeded moves the entry's target into the backup root,
// preserving its relative path, if and only if a real entry is in the
// way:
//
//   - a missing target is a no-op;
//   - a symlink resolving into the dotfiles root is a no-op (it is our
//     own prior output; backing it up would break idempotence);
//   - a real directory where the tracked entry is itself a directory is
//     a merge no-op: the link farm populates it in place, and displacing
//     it would drag unmanaged files out of the home directory on every
//     rerun;
//   - anything else is copied into the backup root and then removed.
//
// The copy happens before the delete, so a failed copy leaves the
// original untouched. A second entry mapping to the same relative path
// within one run is a conflict, not a silent overwrite.
func (m *Manager) BackupIfNeeded(entry types.TrackedEntry) error {
	targetPath := entry.TargetPath

	info, err := m.fs.Lstat(targetPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, errors.ErrFileAccess, "cannot inspect target").
			WithDetail("target", targetPath)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		managed, err := paths.IsInside(targetPath, m.runctx.DotfilesRoot)
		if err == nil && managed {
			m.logger.Trace().Str("target", targetPath).Msg("Already managed, skipping backup")
			return nil
		}
		// Dangling links and links elsewhere are displaced like any
		// other pre-existing entry.
	}

	if entry.IsDir && info.IsDir() {
		m.logger.Trace().Str("target", targetPath).Msg("Directory merges in place, skipping backup")
		return nil
	}

	backupPath := m.runctx.BackupPath(entry.RelPath)

	if m.runctx.DryRun {
		m.logger.Info().Str("target", targetPath).Str("backup", backupPath).
			Msg("Would back up existing entry (dry run)")
		return nil
	}

	if _, err := m.fs.Lstat(backupPath); err == nil {
		return errors.Newf(errors.ErrBackupConflict,
			"backup destination already holds an entry for %s", entry.RelPath).
			WithDetail("target", targetPath).
			WithDetail("backup", backupPath)
	}

	if err := copyTree(m.fs, targetPath, backupPath); err != nil {
		// Leave the original in place; clear the partial copy so the
		// backup root never holds a half-written entry.
		if rmErr := m.fs.RemoveAll(backupPath); rmErr != nil {
			m.logger.Warn().Err(rmErr).Str("backup", backupPath).
				Msg("Failed to clean up partial backup")
		}
		return errors.Wrap(err, errors.ErrBackupCopy, "failed to copy entry into backup root").
			WithDetail("target", targetPath).
			WithDetail("backup", backupPath)
	}

	if err := m.fs.RemoveAll(targetPath); err != nil {
		return errors.Wrap(err, errors.ErrBackupRemove, "backed up but failed to remove original").
			WithDetail("target", targetPath)
	}

	m.logger.Info().Str("target", targetPath).Str("backup", backupPath).
		Msg("Backed up existing entry")
	return nil
}
