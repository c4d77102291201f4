package server

import (
	"fmt"
	"net/http"
	"net/url"
)

// NetworkCommands covers private virtual networks.
var NetworkCommands = []Tool{
	{
		Name:        "nimbus_list_networks",
		Description: "List all virtual networks in the account",
		Args:        combineArgs(paginationArgs(), formatArg()),
		Build: func(args Args) (*Request, error) {
			return &Request{Method: http.MethodGet, Path: "/networks", Query: listQuery(args)}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "networks", args, "No networks found.", renderNetwork)
		},
	},

	{
		Name:        "nimbus_get_network",
		Description: "Get details of a virtual network",
		Args: combineArgs(formatArg(),
			stringID("network_id", "ID of the network")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/networks/" + url.PathEscape(args.String("network_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderNetwork(obj(payload, "network"))
		},
	},

	{
		Name:        "nimbus_create_network",
		Description: "Create a new private virtual network",
		Args: combineArgs(formatArg(), map[string]Arg{
			"name": {
				Description: "Name of the new network",
				Required:    true,
				Type:        "string",
			},
			"region": {
				Description: "Region to create the network in",
				Required:    true,
				Type:        "string",
			},
			"ip_range": {
				Description: "CIDR range of the network, e.g. 10.0.0.0/16. Defaults to an auto-assigned range.",
				Type:        "string",
			},
		}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{
				"name":   args.String("name"),
				"region": args.String("region"),
			}
			args.CopyTo(body, "ip_range")
			return &Request{Method: http.MethodPost, Path: "/networks", Body: body}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Network created.\n\n" + renderNetwork(obj(payload, "network"))
		},
	},

	{
		Name:        "nimbus_update_network",
		Description: "Rename a virtual network",
		Args: combineArgs(formatArg(),
			stringID("network_id", "ID of the network to update"),
			map[string]Arg{
				"name": {
					Description: "New name for the network",
					Required:    true,
					Type:        "string",
				},
			}),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodPatch,
				Path:   "/networks/" + url.PathEscape(args.String("network_id")),
				Body:   map[string]any{"name": args.String("name")},
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Network updated.\n\n" + renderNetwork(obj(payload, "network"))
		},
	},

	{
		Name:        "nimbus_delete_network",
		Description: "Delete a virtual network. All attached resources must be detached first.",
		Args: combineArgs(formatArg(),
			stringID("network_id", "ID of the network to delete")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodDelete,
				Path:   "/networks/" + url.PathEscape(args.String("network_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("Network %s deleted.", args.String("network_id"))
		},
	},
}

func renderNetwork(m map[string]any) string {
	return section(fmt.Sprintf("%s (%s)", str(m, "name"), str(m, "id")),
		"Region: "+str(m, "region"),
		"IP range: "+str(m, "ip_range"),
		"Attached resources: "+numStr(m, "resource_count"),
		"Created: "+timeStr(m, "created_at"),
	)
}
