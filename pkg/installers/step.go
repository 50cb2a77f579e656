// Package installers runs the best-effort post-deploy steps: plugin
// manager bootstraps, the prompt tool install, and the default shell
// change. Every step has its own idempotent precondition check and its
// own failure handling; no step may abort the run and no step depends
// on another's success.
package installers

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mpontes/stowaway/pkg/logging"
	"github.com/mpontes/stowaway/pkg/types"
)

// Step is one independent post-deploy setup unit
type Step interface {
	// Name identifies the step in logs and the summary
	Name() string

	// Check reports whether the step is already satisfied and can be
	// skipped
	Check(ctx context.Context) (bool, error)

	// Run performs the step
	Run(ctx context.Context) error
}

// Runner executes steps in a fixed sequential order
type Runner struct {
	steps  []Step
	dryRun bool
	logger zerolog.Logger
}

// NewRunner creates a Runner over the given steps
func NewRunner(steps []Step, dryRun bool) *Runner {
	return &Runner{
		steps:  steps,
		dryRun: dryRun,
		logger: logging.GetLogger("installers"),
	}
}

// RunAll executes every step regardless of earlier outcomes. Failures
// are logged as warnings and reported in the results, never raised.
func (r *Runner) RunAll(ctx context.Context) []types.StepResult {
	results := make([]types.StepResult, 0, len(r.steps))

	for _, step := range r.steps {
		results = append(results, r.runOne(ctx, step))
	}

	return results
}

func (r *Runner) runOne(ctx context.Context, step Step) types.StepResult {
	logger := r.logger.With().Str("step", step.Name()).Logger()

	satisfied, err := step.Check(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Step precondition check failed")
		return types.StepResult{Name: step.Name(), Status: types.StepFailed, Err: err}
	}
	if satisfied {
		logger.Debug().Msg("Step already satisfied, skipping")
		return types.StepResult{Name: step.Name(), Status: types.StepSkipped}
	}

	if r.dryRun {
		logger.Info().Msg("Would run step (dry run)")
		return types.StepResult{Name: step.Name(), Status: types.StepSkipped}
	}

	if err := step.Run(ctx); err != nil {
		logger.Warn().Err(err).Msg("Step failed")
		return types.StepResult{Name: step.Name(), Status: types.StepFailed, Err: err}
	}

	logger.Info().Msg("Step completed")
	return types.StepResult{Name: step.Name(), Status: types.StepSucceeded}
}
