// Package command assembles the nimbus-mcp command tree. The root
// command serves MCP over stdio; subcommands cover introspection.
package command

import (
	"github.com/spf13/cobra"

	"github.com/nimbus-cloud/nimbus-mcp/internal/buildinfo"
)

// New builds the root command.
func New() *cobra.Command {
	const (
		short = "MCP server for the Nimbus Cloud API"

		long = short + ".\n\nExposes Nimbus Cloud resources as Model Context Protocol tools " +
			"over stdio, for use by AI agents. Requires a Nimbus API token in " +
			"the NIMBUS_API_TOKEN environment variable."
	)

	root := &cobra.Command{
		Use:     "nimbus-mcp",
		Short:   short,
		Long:    long,
		Version: buildinfo.Version(),
		RunE:    runServe,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().String("access-token", "", "Nimbus API token (overrides NIMBUS_API_TOKEN)")

	root.AddCommand(
		newTools(),
		newVersion(),
	)

	return root
}
