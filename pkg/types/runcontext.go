package types

import (
	"fmt"
	"path/filepath"
	"time"
)

// Timestamp layout for backup roots and log files. One timestamp is
// fixed at run start and shared by every artifact of that run.
const RunTimestampLayout = "20060102-150405"

// RunContext carries the per-run state that every component needs:
// the fixed run timestamp, the resolved directories, and the derived
// backup/log paths. It is constructed once at startup and passed
// explicitly, which keeps the engine testable with an injected
// temporary root.
type RunContext struct {
	// Timestamp is fixed at run start
	Timestamp time.Time

	// HomeDir is the deployment target directory
	HomeDir string

	// DotfilesRoot is the directory containing the packs
	DotfilesRoot string

	// BackupRoot receives displaced pre-existing files, preserving
	// their path relative to HomeDir. Created lazily on first backup.
	BackupRoot string

	// LogPath is the per-run append-only log file
	LogPath string

	// DryRun previews changes without touching the filesystem
	DryRun bool
}

// NewRunContext derives the per-run paths from the home directory and
// dotfiles root using the given start time.
func NewRunContext(homeDir, dotfilesRoot string, start time.Time) RunContext {
	stamp := start.Format(RunTimestampLayout)
	return RunContext{
		Timestamp:    start,
		HomeDir:      homeDir,
		DotfilesRoot: dotfilesRoot,
		BackupRoot:   filepath.Join(homeDir, fmt.Sprintf(".dotfiles-backup-%s", stamp)),
		LogPath:      filepath.Join(homeDir, fmt.Sprintf(".dotfiles-setup-%s.log", stamp)),
	}
}

// TargetPath maps a pack-relative path to its deployment target under
// the home directory.
func (rc *RunContext) TargetPath(relPath string) string {
	return filepath.Join(rc.HomeDir, relPath)
}

// BackupPath maps a pack-relative path to its destination under the
// backup root. The relative structure is preserved exactly.
func (rc *RunContext) BackupPath(relPath string) string {
	return filepath.Join(rc.BackupRoot, relPath)
}
