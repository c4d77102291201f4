// Package server implements the tool dispatch engine: declarative tool
// tables validated and routed through one generic invocation path, then
// exposed over MCP stdio.
package server

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"

	mcpGo "github.com/mark3labs/mcp-go/mcp"
	mcpServer "github.com/mark3labs/mcp-go/server"

	"github.com/nimbus-cloud/nimbus-mcp/internal/buildinfo"
	"github.com/nimbus-cloud/nimbus-mcp/internal/logger"
)

// Transport performs one authenticated API round trip. The concrete
// implementation is nimbus.Client; tests substitute a fake.
type Transport interface {
	Do(ctx context.Context, method, path string, query url.Values, body map[string]any) (map[string]any, error)
}

// Commands is the full tool inventory, one slice per resource domain.
func Commands() []Tool {
	return slices.Concat(
		ServerCommands,
		DatabaseCommands,
		KubernetesCommands,
		StorageCommands,
		DNSCommands,
		SSHKeyCommands,
		FloatingIPCommands,
		NetworkCommands,
		ProjectCommands,
		LoadBalancerCommands,
		FirewallCommands,
		ImageCommands,
		AppCommands,
		BillingCommands,
	)
}

type Server struct {
	transport Transport
	log       *logger.Logger
	mcp       *mcpServer.MCPServer
}

// New registers every tool against a fresh MCP server. Tool names must
// be unique; a duplicate is a startup error, not a silent overwrite.
func New(transport Transport, log *logger.Logger) (*Server, error) {
	s := &Server{
		transport: transport,
		log:       log,
		mcp: mcpServer.NewMCPServer(
			"Nimbus Cloud",
			buildinfo.Version(),
		),
	}

	seen := make(map[string]bool)
	for _, t := range Commands() {
		if seen[t.Name] {
			return nil, fmt.Errorf("duplicate tool name %q", t.Name)
		}
		seen[t.Name] = true

		opts, err := toolOptions(t)
		if err != nil {
			return nil, err
		}

		s.mcp.AddTool(mcpGo.NewTool(t.Name, opts...), s.handleTool(t))
	}

	return s, nil
}

// ServeStdio blocks serving MCP over stdin/stdout.
func (s *Server) ServeStdio() error {
	s.log.Infof("serving %d tools over stdio", len(Commands()))
	return mcpServer.ServeStdio(s.mcp)
}

func (s *Server) handleTool(t Tool) func(ctx context.Context, request mcpGo.CallToolRequest) (*mcpGo.CallToolResult, error) {
	return func(ctx context.Context, request mcpGo.CallToolRequest) (*mcpGo.CallToolResult, error) {
		text, failed := s.invoke(ctx, t, request.GetArguments())
		if failed {
			s.log.Warnf("%s: %s", t.Name, text)
			return mcpGo.NewToolResultError(text), nil
		}
		return mcpGo.NewToolResultText(text), nil
	}
}

// toolOptions translates a tool's argument table into the JSON schema
// advertised to the calling agent.
func toolOptions(t Tool) ([]mcpGo.ToolOption, error) {
	opts := []mcpGo.ToolOption{
		mcpGo.WithDescription(t.Description),
	}

	for name, arg := range t.Args {
		popts := []mcpGo.PropertyOption{
			mcpGo.Description(arg.Description),
		}
		if arg.Required {
			popts = append(popts, mcpGo.Required())
		}

		switch arg.Type {
		case "string":
			if arg.Default != "" {
				popts = append(popts, mcpGo.DefaultString(arg.Default))
			}
			opts = append(opts, mcpGo.WithString(name, popts...))

		case "enum":
			popts = append(popts, mcpGo.Enum(arg.Enum...))
			if arg.Default != "" {
				popts = append(popts, mcpGo.DefaultString(arg.Default))
			}
			opts = append(opts, mcpGo.WithString(name, popts...))

		case "number":
			if arg.Min != nil {
				popts = append(popts, mcpGo.Min(*arg.Min))
			}
			if arg.Max != nil {
				popts = append(popts, mcpGo.Max(*arg.Max))
			}
			if arg.Default != "" {
				def, err := strconv.ParseFloat(arg.Default, 64)
				if err != nil {
					return nil, fmt.Errorf("invalid default for argument %s of %s: %w", name, t.Name, err)
				}
				popts = append(popts, mcpGo.DefaultNumber(def))
			}
			opts = append(opts, mcpGo.WithNumber(name, popts...))

		case "boolean":
			if arg.Default != "" {
				def, err := strconv.ParseBool(arg.Default)
				if err != nil {
					return nil, fmt.Errorf("invalid default for argument %s of %s: %w", name, t.Name, err)
				}
				popts = append(popts, mcpGo.DefaultBool(def))
			}
			opts = append(opts, mcpGo.WithBoolean(name, popts...))

		case "array":
			popts = append(popts, mcpGo.Items(map[string]any{"type": "string"}))
			opts = append(opts, mcpGo.WithArray(name, popts...))

		default:
			return nil, fmt.Errorf("unsupported argument type %q for argument %s of %s", arg.Type, name, t.Name)
		}
	}

	return opts, nil
}
