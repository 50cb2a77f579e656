// Package packs discovers deployable configuration packs: the
// immediate subdirectories of the dotfiles root, minus hidden and
// ignored names, each treated as one independently deployable unit.
package packs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mpontes/stowaway/pkg/config"
	"github.com/mpontes/stowaway/pkg/errors"
	"github.com/mpontes/stowaway/pkg/logging"
	"github.com/mpontes/stowaway/pkg/paths"
	"github.com/mpontes/stowaway/pkg/types"
)

// Discover returns all packs in the dotfiles root: one per immediate
// subdirectory (depth 1, non-recursive), sorted by name for
// deterministic ordering. Hidden directories are skipped except
// .config, as are names matching the configured ignore patterns and
// packs whose .stowaway.toml sets skip. An empty root yields an empty
// slice, not an error.
func Discover(fs types.FS, dotfilesRoot string, cfg *config.Config) ([]types.Pack, error) {
	logger := logging.GetLogger("packs.discovery")
	logger.Trace().Str("root", dotfilesRoot).Msg("Discovering packs")

	info, err := fs.Stat(dotfilesRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrNotFound, "dotfiles root does not exist").
				WithDetail("path", dotfilesRoot)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot access dotfiles root").
			WithDetail("path", dotfilesRoot)
	}

	if !info.IsDir() {
		return nil, errors.New(errors.ErrInvalidInput, "dotfiles root is not a directory").
			WithDetail("path", dotfilesRoot)
	}

	entries, err := fs.ReadDir(dotfilesRoot)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read dotfiles root").
			WithDetail("path", dotfilesRoot)
	}

	var result []types.Pack
	for _, entry := range entries {
		name := entry.Name()

		if !entry.IsDir() {
			continue
		}

		// Skip hidden directories (except .config which is common)
		if strings.HasPrefix(name, ".") && name != ".config" {
			logger.Trace().Str("name", name).Msg("Skipping hidden directory")
			continue
		}

		if shouldIgnore(name, cfg.Patterns.PackIgnore) {
			logger.Trace().Str("name", name).Msg("Skipping ignored pattern")
			continue
		}

		packPath := filepath.Join(dotfilesRoot, name)

		packCfg, err := config.LoadPackConfig(filepath.Join(packPath, paths.PackConfigFile))
		if err != nil {
			logger.Warn().Err(err).Str("pack", name).Msg("Ignoring unreadable pack config")
		} else if packCfg.Skip {
			logger.Debug().Str("pack", name).Msg("Pack marked skip in its config")
			continue
		}

		result = append(result, types.Pack{Name: name, Path: packPath})
		logger.Trace().Str("path", packPath).Msg("Found pack")
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	logger.Info().Int("count", len(result)).Msg("Discovered packs")
	return result, nil
}

// Select filters discovered packs down to the explicitly requested
// names. Unknown names are an error so typos fail early instead of
// silently deploying nothing.
func Select(all []types.Pack, names []string) ([]types.Pack, error) {
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]types.Pack, len(all))
	for _, p := range all {
		byName[p.Name] = p
	}

	var selected []types.Pack
	for _, name := range names {
		p, ok := byName[name]
		if !ok {
			return nil, errors.Newf(errors.ErrPackNotFound, "pack %q not found", name).
				WithDetail("pack", name)
		}
		selected = append(selected, p)
	}

	return selected, nil
}

// shouldIgnore checks if a name matches any ignore pattern. Patterns
// are plain names or simple prefix globs of the form "name*".
func shouldIgnore(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.HasSuffix(pattern, "*") {
			if strings.HasPrefix(name, strings.TrimSuffix(pattern, "*")) {
				return true
			}
			continue
		}
		if name == pattern {
			return true
		}
	}
	return false
}
