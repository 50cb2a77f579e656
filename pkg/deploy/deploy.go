// Package deploy contains the deployment engine: per-pack traversal,
// backup and parent-directory preparation for every tracked entry, and
// the hand-off to the link farm that materializes the symlinks.
package deploy

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/mpontes/stowaway/pkg/backup"
	"github.com/mpontes/stowaway/pkg/errors"
	"github.com/mpontes/stowaway/pkg/logging"
	"github.com/mpontes/stowaway/pkg/paths"
	"github.com/mpontes/stowaway/pkg/types"
)

// DefaultWalkDepth bounds pack traversal when no configuration says
// otherwise
const DefaultWalkDepth = 3

// Options configures a Deployer
type Options struct {
	FS       types.FS
	LinkFarm types.LinkFarm
	RunCtx   *types.RunContext

	// WalkDepth bounds traversal inside a pack; zero means DefaultWalkDepth
	WalkDepth int
}

// Deployer deploys packs one at a time. Entry-level failures are
// collected, not fatal; only a failed link-farm invocation fails the
// pack, and no pack failure ever stops the loop over the remaining
// packs.
type Deployer struct {
	fs        types.FS
	linkfarm  types.LinkFarm
	runctx    *types.RunContext
	backups   *backup.Manager
	walkDepth int
	logger    zerolog.Logger
}

// New creates a Deployer
func New(opts Options) *Deployer {
	depth := opts.WalkDepth
	if depth <= 0 {
		depth = DefaultWalkDepth
	}
	return &Deployer{
		fs:        opts.FS,
		linkfarm:  opts.LinkFarm,
		runctx:    opts.RunCtx,
		backups:   backup.NewManager(opts.FS, opts.RunCtx),
		walkDepth: depth,
		logger:    logging.GetLogger("deploy"),
	}
}

// Deploy deploys a single pack: back up and prepare every tracked
// entry, then let the link farm materialize the symlinks. The contract
// is all-or-nothing per pack: a failed link-farm invocation fails the
// pack even when individual entries were prepared successfully, and
// that preparation work is not rolled back.
func (d *Deployer) Deploy(ctx context.Context, pack types.Pack) error {
	logger := d.logger.With().Str("pack", pack.Name).Logger()

	exists, err := pack.Exists(d.fs)
	if err != nil {
		return errors.Wrap(err, errors.ErrPackAccess, "cannot access pack directory").
			WithDetail("pack", pack.Name)
	}
	if !exists {
		// Discovery may race with external deletion; tolerated.
		logger.Warn().Str("path", pack.Path).Msg("Pack directory vanished, skipping")
		return nil
	}

	entries, err := d.walk(pack)
	if err != nil {
		return err
	}

	hadEntryErrors := false
	for _, entry := range entries {
		if err := d.backups.BackupIfNeeded(entry); err != nil {
			logger.Error().Err(err).Str("target", entry.TargetPath).Msg("Backup failed")
			hadEntryErrors = true
			continue
		}
		if d.runctx.DryRun {
			continue
		}
		if err := EnsureParentDir(d.fs, entry.TargetPath); err != nil {
			logger.Error().Err(err).Str("target", entry.TargetPath).Msg("Parent directory creation failed")
			hadEntryErrors = true
		}
	}

	actions, err := d.linkfarm.Materialize(ctx, pack.Name, d.runctx.DotfilesRoot)
	if err != nil {
		return errors.Wrapf(err, errors.ErrStowExecute, "link farm failed for pack %s", pack.Name).
			WithDetail("pack", pack.Name)
	}

	for _, action := range actions {
		logger.Info().Str("action", string(action.Kind)).Msg(action.Detail)
	}

	if hadEntryErrors {
		return errors.Newf(errors.ErrInternal, "pack %s deployed with entry-level failures", pack.Name).
			WithDetail("pack", pack.Name)
	}

	logger.Debug().Int("entries", len(entries)).Msg("Pack deployed")
	return nil
}

// DeployAll deploys every pack sequentially. A pack failure is logged
// and recorded, never propagated; the loop always reaches the last
// pack.
func (d *Deployer) DeployAll(ctx context.Context, packList []types.Pack) types.DeploymentReport {
	var report types.DeploymentReport

	for _, pack := range packList {
		if err := d.Deploy(ctx, pack); err != nil {
			d.logger.Error().Err(err).Str("pack", pack.Name).Msg("Pack deployment failed")
			report.Failed = append(report.Failed, pack.Name)
			continue
		}
		report.Succeeded = append(report.Succeeded, pack.Name)
	}

	return report
}

// walk enumerates the tracked entries of a pack up to the configured
// depth bound, computing each entry's pack-relative path and its mapped
// target under the home directory. The pack's own config file is not a
// tracked entry.
func (d *Deployer) walk(pack types.Pack) ([]types.TrackedEntry, error) {
	var entries []types.TrackedEntry

	var visit func(dir, rel string, depth int) error
	visit = func(dir, rel string, depth int) error {
		if depth > d.walkDepth {
			return nil
		}

		dirEntries, err := d.fs.ReadDir(dir)
		if err != nil {
			return errors.Wrap(err, errors.ErrPackAccess, "cannot read pack directory").
				WithDetail("path", dir)
		}

		for _, de := range dirEntries {
			name := de.Name()
			if rel == "" && name == paths.PackConfigFile {
				continue
			}

			entryRel := filepath.Join(rel, name)
			entry := types.TrackedEntry{
				RelPath:    entryRel,
				SourcePath: filepath.Join(dir, name),
				TargetPath: d.runctx.TargetPath(entryRel),
				IsDir:      de.IsDir(),
			}
			entries = append(entries, entry)

			if de.IsDir() {
				if err := visit(entry.SourcePath, entryRel, depth+1); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if err := visit(pack.Path, "", 1); err != nil {
		return nil, err
	}
	return entries, nil
}

// EnsureParentDir creates, recursively, the parent directory of
// targetPath if absent. Idempotent; a no-op when already present.
func EnsureParentDir(fs types.FS, targetPath string) error {
	parent := filepath.Dir(targetPath)
	if err := fs.MkdirAll(parent, 0755); err != nil && !os.IsExist(err) {
		return errors.Wrap(err, errors.ErrDirCreate, "cannot create parent directory").
			WithDetail("path", parent)
	}
	return nil
}
