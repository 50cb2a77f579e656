package types

// TrackedEntry is a single file or directory within a pack, identified
// by its path relative to the pack root. Entries are ephemeral and
// recomputed on every traversal.
type TrackedEntry struct {
	// RelPath is the path relative to the pack root
	RelPath string

	// SourcePath is the absolute path inside the pack
	SourcePath string

	// TargetPath is the mapped absolute path under the home directory
	TargetPath string

	// IsDir reports whether the entry is a directory
	IsDir bool
}

// ActionKind classifies one line of link-farm output
type ActionKind string

const (
	ActionLink   ActionKind = "LINK"
	ActionMkdir  ActionKind = "MKDIR"
	ActionUnlink ActionKind = "UNLINK"
)

// Action is one link-farm operation parsed from the external tool's
// combined output. Informational only, never used for control flow.
type Action struct {
	Kind   ActionKind
	Detail string
}

// ActionLog is the parsed output of one link-farm invocation
type ActionLog []Action

// Links returns only the link-creation actions
func (l ActionLog) Links() []Action {
	var links []Action
	for _, a := range l {
		if a.Kind == ActionLink {
			links = append(links, a)
		}
	}
	return links
}

// StepStatus is the outcome of one post-deploy installer step
type StepStatus string

const (
	StepSkipped   StepStatus = "skipped"
	StepSucceeded StepStatus = "succeeded"
	StepFailed    StepStatus = "failed"
)

// StepResult is the tagged outcome of one installer step. Failures are
// never fatal to the run.
type StepResult struct {
	Name   string
	Status StepStatus
	Err    error
}

// DeploymentReport aggregates the per-pack outcomes and installer step
// results for the final summary. Failure reasons live in the log file,
// not here.
type DeploymentReport struct {
	Succeeded []string
	Failed    []string
	Steps     []StepResult

	// LogPath points at the per-run log file for diagnosis
	LogPath string
}

// HasFailures reports whether any pack failed to deploy
func (r *DeploymentReport) HasFailures() bool {
	return len(r.Failed) > 0
}

// Total returns the number of packs attempted
func (r *DeploymentReport) Total() int {
	return len(r.Succeeded) + len(r.Failed)
}
