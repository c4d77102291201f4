package command

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nimbus-cloud/nimbus-mcp/internal/server"
)

// newTools builds the inventory subcommand, mainly useful for checking
// what a given build exposes without speaking MCP.
func newTools() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the MCP tools this server exposes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tools := server.Commands()
			sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })

			for _, t := range tools {
				fmt.Fprintf(cmd.OutOrStdout(), "%-36s %s\n", t.Name, t.Description)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d tools\n", len(tools))
			return nil
		},
	}
}
