// Package commands implements the top-level operations behind the CLI:
// the end-to-end deploy run and the pack listing.
package commands

import (
	"context"
	"time"

	"github.com/mpontes/stowaway/pkg/config"
	"github.com/mpontes/stowaway/pkg/deploy"
	"github.com/mpontes/stowaway/pkg/filesystem"
	"github.com/mpontes/stowaway/pkg/installers"
	"github.com/mpontes/stowaway/pkg/logging"
	"github.com/mpontes/stowaway/pkg/packs"
	"github.com/mpontes/stowaway/pkg/paths"
	"github.com/mpontes/stowaway/pkg/stow"
	"github.com/mpontes/stowaway/pkg/types"
)

// DeployOptions configures one deploy run
type DeployOptions struct {
	// DotfilesRoot overrides root resolution when non-empty
	DotfilesRoot string

	// Packs restricts deployment to the named packs; empty means all
	Packs []string

	// DryRun previews without changing anything
	DryRun bool

	// NoInstallers skips the post-deploy steps
	NoInstallers bool

	// Verbosity is the -v count from the CLI
	Verbosity int

	// FS and LinkFarm are injectable for tests; nil selects the OS
	// filesystem and the GNU Stow backend
	FS       types.FS
	LinkFarm types.LinkFarm
}

// Deploy runs the full deployment: preflight, pack discovery, per-pack
// deployment, post-deploy installers, and report aggregation. A
// returned error means the run never started (pre-flight or discovery
// failure); per-pack and per-step failures live in the report.
func Deploy(ctx context.Context, opts DeployOptions) (*types.DeploymentReport, error) {
	p, err := paths.New(opts.DotfilesRoot)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(p.UserConfigPath(), p.RootConfigPath())
	if err != nil {
		return nil, err
	}

	// The only fatal error class: required external tools absent.
	if opts.LinkFarm == nil {
		if err := stow.Preflight(cfg.Deploy.StowBinary, "git", "curl"); err != nil {
			return nil, err
		}
	}

	rc := types.NewRunContext(p.HomeDir(), p.DotfilesRoot(), time.Now())
	rc.DryRun = opts.DryRun

	logging.SetupLogger(opts.Verbosity, rc.LogPath)
	logger := logging.GetLogger("deploy.run")

	if p.UsedFallback() {
		logger.Warn().Str("root", p.DotfilesRoot()).
			Msg("No dotfiles root configured, using current directory")
	}
	logger.Info().
		Str("root", rc.DotfilesRoot).
		Str("backupRoot", rc.BackupRoot).
		Bool("dryRun", rc.DryRun).
		Msg("Starting deployment")

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	farm := opts.LinkFarm
	if farm == nil {
		farm = stow.New(cfg.Deploy.StowBinary, rc.HomeDir, rc.DryRun)
	}

	discovered, err := packs.Discover(fs, rc.DotfilesRoot, cfg)
	if err != nil {
		return nil, err
	}
	selected, err := packs.Select(discovered, opts.Packs)
	if err != nil {
		return nil, err
	}

	deployer := deploy.New(deploy.Options{
		FS:        fs,
		LinkFarm:  farm,
		RunCtx:    &rc,
		WalkDepth: cfg.Deploy.WalkDepth,
	})
	report := deployer.DeployAll(ctx, selected)

	if cfg.Installers.Enabled && !opts.NoInstallers {
		steps := installers.DefaultSteps(&cfg.Installers, rc.HomeDir)
		report.Steps = installers.NewRunner(steps, rc.DryRun).RunAll(ctx)
	}

	report.LogPath = rc.LogPath

	logger.Info().
		Int("succeeded", len(report.Succeeded)).
		Int("failed", len(report.Failed)).
		Msg("Deployment finished")

	return &report, nil
}
