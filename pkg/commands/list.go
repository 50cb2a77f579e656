package commands

import (
	"github.com/mpontes/stowaway/pkg/config"
	"github.com/mpontes/stowaway/pkg/filesystem"
	"github.com/mpontes/stowaway/pkg/packs"
	"github.com/mpontes/stowaway/pkg/paths"
	"github.com/mpontes/stowaway/pkg/types"
)

// ListOptions configures the list operation
type ListOptions struct {
	DotfilesRoot string
	FS           types.FS
}

// List returns the deployable packs under the resolved dotfiles root
func List(opts ListOptions) ([]types.Pack, error) {
	p, err := paths.New(opts.DotfilesRoot)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(p.UserConfigPath(), p.RootConfigPath())
	if err != nil {
		return nil, err
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	return packs.Discover(fs, p.DotfilesRoot(), cfg)
}
