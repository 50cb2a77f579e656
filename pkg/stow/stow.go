// Package stow adapts GNU Stow as the link-farm backend. Stow is
// invoked once per pack from the dotfiles root with verbose output,
// which it emits as LINK:/MKDIR:/UNLINK: action lines; those are parsed
// into an ActionLog for the summary. A non-zero exit means a conflict
// and fails the whole pack.
package stow

import (
	"context"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mpontes/stowaway/pkg/errors"
	"github.com/mpontes/stowaway/pkg/logging"
	"github.com/mpontes/stowaway/pkg/types"
)

// Stow shells out to GNU Stow, implementing types.LinkFarm
type Stow struct {
	// Binary is the stow executable name or path
	Binary string

	// TargetDir is passed as stow's --target
	TargetDir string

	// DryRun adds --no (simulate) to every invocation
	DryRun bool

	logger zerolog.Logger
}

// New creates a Stow link farm targeting targetDir
func New(binary, targetDir string, dryRun bool) *Stow {
	if binary == "" {
		binary = "stow"
	}
	return &Stow{
		Binary:    binary,
		TargetDir: targetDir,
		DryRun:    dryRun,
		logger:    logging.GetLogger("stow"),
	}
}

// Materialize runs stow for one pack from the dotfiles root and
// returns the parsed action log. The combined output is always parsed,
// even on failure, so the log retains whatever stow managed to report.
func (s *Stow) Materialize(ctx context.Context, packName, workingDir string) (types.ActionLog, error) {
	args := []string{"-v", "--target", s.TargetDir}
	if s.DryRun {
		args = append(args, "--no")
	}
	args = append(args, packName)

	cmd := exec.CommandContext(ctx, s.Binary, args...)
	cmd.Dir = workingDir

	s.logger.Debug().Str("pack", packName).Strs("args", args).Msg("Invoking stow")

	out, err := cmd.CombinedOutput()
	actions := ParseActions(string(out))

	if err != nil {
		return actions, errors.Wrapf(err, errors.ErrStowConflict, "stow failed for pack %s", packName).
			WithDetail("pack", packName).
			WithDetail("output", strings.TrimSpace(string(out)))
	}

	return actions, nil
}

// ParseActions extracts LINK:/MKDIR:/UNLINK: lines from stow's
// combined verbose output. Unrecognized lines are ignored.
func ParseActions(output string) types.ActionLog {
	var actions types.ActionLog

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)

		var kind types.ActionKind
		switch {
		case strings.HasPrefix(line, "LINK:"):
			kind = types.ActionLink
		case strings.HasPrefix(line, "MKDIR:"):
			kind = types.ActionMkdir
		case strings.HasPrefix(line, "UNLINK:"):
			kind = types.ActionUnlink
		default:
			continue
		}

		detail := strings.TrimSpace(strings.TrimPrefix(line, string(kind)+":"))
		actions = append(actions, types.Action{Kind: kind, Detail: detail})
	}

	return actions
}

// Preflight verifies the external tools the run depends on. A missing
// tool aborts before any deployment work (the only fatal error class).
func Preflight(tools ...string) error {
	for _, tool := range tools {
		if _, err := exec.LookPath(tool); err != nil {
			return errors.Wrapf(err, errors.ErrToolMissing, "required tool %q not found in PATH", tool).
				WithDetail("tool", tool)
		}
	}
	return nil
}
