// Package config loads stowaway's layered configuration: embedded
// defaults, the XDG user config, and the dotfiles-root config, merged
// in that order. Per-pack overrides live in pack.go.
package config

import (
	_ "embed"
	goerrors "errors"
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mpontes/stowaway/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements a koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, goerrors.New("not implemented")
}

// PatternsConfig holds name-matching configuration
type PatternsConfig struct {
	// PackIgnore lists directory names never treated as packs
	PackIgnore []string `koanf:"pack_ignore"`
}

// DeployConfig holds deployment engine configuration
type DeployConfig struct {
	// WalkDepth bounds pack traversal depth
	WalkDepth int `koanf:"walk_depth"`

	// StowBinary is the link-farm executable name
	StowBinary string `koanf:"stow_binary"`
}

// InstallersConfig toggles the post-deploy installer steps
type InstallersConfig struct {
	Enabled      bool   `koanf:"enabled"`
	OhMyZsh      bool   `koanf:"oh_my_zsh"`
	TmuxPlugins  bool   `koanf:"tmux_plugins"`
	VimPlug      bool   `koanf:"vim_plug"`
	Starship     bool   `koanf:"starship"`
	DefaultShell string `koanf:"default_shell"`

	// ShellChangeTimeoutSeconds bounds the chsh invocation
	ShellChangeTimeoutSeconds int `koanf:"shell_change_timeout_seconds"`
}

// Config is the merged stowaway configuration
type Config struct {
	Patterns   PatternsConfig   `koanf:"patterns"`
	Deploy     DeployConfig     `koanf:"deploy"`
	Installers InstallersConfig `koanf:"installers"`
}

// Load merges the embedded defaults with the user config file and the
// dotfiles-root config file, each of which may be absent.
func Load(userConfigPath, rootConfigPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	for _, path := range []string{userConfigPath, rootConfigPath} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// Default returns the embedded defaults without any file overlays
func Default() *Config {
	cfg, err := Load("", "")
	if err != nil {
		// The embedded defaults are compiled in; failing to parse them
		// is a programming error.
		panic(err)
	}
	return cfg
}
