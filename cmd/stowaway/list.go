package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpontes/stowaway/pkg/commands"
	"github.com/mpontes/stowaway/pkg/style"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			packs, err := commands.List(commands.ListOptions{DotfilesRoot: dotfilesRoot})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), style.RenderPackList(packs))
			return nil
		},
	}
}
