package testutil

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mpontes/stowaway/pkg/types"
)

// Invocation records one call to the fake link farm
type Invocation struct {
	PackName   string
	WorkingDir string
}

// FakeLinkFarm implements types.LinkFarm without shelling out. It can
// be told to fail for specific packs and optionally creates real
// symlinks the way stow would, so deployer tests can verify end state.
type FakeLinkFarm struct {
	// FailPacks maps pack names to the error their invocation returns
	FailPacks map[string]error

	// TargetDir, when set, makes the fake actually symlink each pack
	// file into this directory
	TargetDir string

	// Actions is returned for successful invocations when no real
	// linking is requested
	Actions types.ActionLog

	// Invocations records every call in order
	Invocations []Invocation
}

var _ types.LinkFarm = (*FakeLinkFarm)(nil)

// Materialize records the invocation, fails if configured to, and
// otherwise links the pack's files into TargetDir (when set)
func (f *FakeLinkFarm) Materialize(_ context.Context, packName, workingDir string) (types.ActionLog, error) {
	f.Invocations = append(f.Invocations, Invocation{PackName: packName, WorkingDir: workingDir})

	if err, ok := f.FailPacks[packName]; ok {
		return nil, err
	}

	if f.TargetDir == "" {
		return f.Actions, nil
	}

	var actions types.ActionLog
	packRoot := filepath.Join(workingDir, packName)
	err := filepath.Walk(packRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel, err := filepath.Rel(packRoot, path)
		if err != nil {
			return err
		}
		link := filepath.Join(f.TargetDir, rel)
		if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
			return err
		}
		if existing, err := os.Readlink(link); err == nil && existing == path {
			// Already materialized by an earlier run, like stow
			return nil
		}
		if err := os.Symlink(path, link); err != nil {
			return err
		}
		actions = append(actions, types.Action{
			Kind:   types.ActionLink,
			Detail: rel + " => " + path,
		})
		return nil
	})
	if err != nil {
		return actions, err
	}

	return actions, nil
}
