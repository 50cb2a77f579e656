package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpontes/stowaway/pkg/commands"
	"github.com/mpontes/stowaway/pkg/style"
)

func newDeployCmd() *cobra.Command {
	var noInstallers bool

	cmd := &cobra.Command{
		Use:     "deploy [packs...]",
		Short:   MsgDeployShort,
		Long:    MsgDeployLong,
		Example: MsgDeployExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := commands.Deploy(cmd.Context(), commands.DeployOptions{
				DotfilesRoot: dotfilesRoot,
				Packs:        args,
				DryRun:       dryRun,
				NoInstallers: noInstallers,
				Verbosity:    verbosity,
			})
			if err != nil {
				// Pre-flight and discovery failures abort before any
				// deployment work; this is the non-zero exit path.
				return err
			}

			// Deployment was attempted: the summary and log carry the
			// outcome, the process exits zero even with pack failures.
			fmt.Fprint(cmd.OutOrStdout(), style.RenderSummary(report, report.LogPath))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noInstallers, "no-installers", false, "Skip the post-deploy installer steps")

	return cmd
}
