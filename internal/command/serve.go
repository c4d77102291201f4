package command

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nimbus-cloud/nimbus-mcp/internal/config"
	"github.com/nimbus-cloud/nimbus-mcp/internal/logger"
	"github.com/nimbus-cloud/nimbus-mcp/internal/nimbus"
	"github.com/nimbus-cloud/nimbus-mcp/internal/server"
)

// runServe is the root command action: load configuration, build the
// API client and block serving MCP over stdio. Stdout belongs to the
// protocol stream from here on; all logging goes to stderr.
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	if token, _ := cmd.Flags().GetString("access-token"); token != "" {
		cfg.APIToken = token
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.FromEnv(os.Stderr)
	log.Debugf("using API endpoint %s", cfg.BaseURL)

	client := nimbus.New(cfg, nimbus.WithLogger(log))

	srv, err := server.New(client, log)
	if err != nil {
		return err
	}

	return srv.ServeStdio()
}
