package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/mpontes/stowaway/pkg/errors"
)

// PackConfig is the optional per-pack override file (.stowaway.toml
// inside a pack directory)
type PackConfig struct {
	// Skip excludes the pack from deployment without deleting it
	Skip bool `toml:"skip"`

	// Description is shown by the list command
	Description string `toml:"description"`
}

// LoadPackConfig reads and parses a pack's .stowaway.toml file.
// A missing file yields the zero config, not an error.
func LoadPackConfig(configPath string) (PackConfig, error) {
	var cfg PackConfig

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read pack config %s", configPath)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse pack config %s", configPath)
	}

	return cfg, nil
}
