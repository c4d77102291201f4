package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nimbus-cloud/nimbus-mcp/internal/buildinfo"
)

func newVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the nimbus-mcp version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nimbus-mcp %s (commit %s)\n",
				buildinfo.Version(), buildinfo.Commit())
		},
	}
}
