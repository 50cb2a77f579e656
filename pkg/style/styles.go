// Package style defines the visual styling for stowaway's terminal
// output: adaptive lipgloss styles loaded from an embedded YAML
// definition, pterm status prefixes, and the end-of-run summary
// renderer.
package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// ColorDef is an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
	MarginTop  int    `yaml:"marginTop,omitempty"`
}

type stylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

var registry map[string]lipgloss.Style

func init() {
	var err error
	registry, err = buildStyles(stylesYAML)
	if err != nil {
		// The embedded definition is compiled in; failing to parse it
		// is a programming error.
		panic(fmt.Sprintf("style: invalid embedded styles.yaml: %v", err))
	}
}

func buildStyles(raw []byte) (map[string]lipgloss.Style, error) {
	var cfg stylesConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}

	adaptive := func(name string) lipgloss.TerminalColor {
		if c, ok := cfg.Colors[name]; ok {
			return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark}
		}
		// Allow literal color values in style definitions
		return lipgloss.Color(name)
	}

	built := make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		s := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline)
		if def.Foreground != "" {
			s = s.Foreground(adaptive(def.Foreground))
		}
		if def.Background != "" {
			s = s.Background(adaptive(def.Background))
		}
		if def.MarginTop > 0 {
			s = s.MarginTop(def.MarginTop)
		}
		built[name] = s
	}

	return built, nil
}

// Get returns a named style; unknown names yield the zero style
func Get(name string) lipgloss.Style {
	return registry[name]
}
