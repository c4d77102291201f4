package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/nimbus-cloud/nimbus-mcp/internal/cmderr"
	"github.com/nimbus-cloud/nimbus-mcp/internal/command"
)

func main() {
	if err := run(); err != nil {
		cmderr.PrintCLIOutput(err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return command.New().ExecuteContext(ctx)
}
