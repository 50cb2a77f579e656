package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

//go:embed docs/quickstart.md
var quickstartDoc string

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: MsgDocsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(quickstartDoc))
			return nil
		},
	}
}

// renderMarkdown renders markdown for the terminal, falling back to
// the raw text when rendering is unavailable (pipes, dumb terminals)
func renderMarkdown(content string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return content
	}

	styleOpt := glamour.WithAutoStyle()
	if termenv.EnvNoColor() {
		styleOpt = glamour.WithStandardStyle("notty")
	}

	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(100))
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
