package server

import (
	"fmt"
	"net/http"
	"net/url"
)

// FloatingIPCommands covers floating IP addresses and their server
// assignments.
var FloatingIPCommands = []Tool{
	{
		Name:        "nimbus_list_floating_ips",
		Description: "List all floating IPs in the account",
		Args:        combineArgs(paginationArgs(), formatArg()),
		Build: func(args Args) (*Request, error) {
			return &Request{Method: http.MethodGet, Path: "/floating-ips", Query: listQuery(args)}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "floating_ips", args, "No floating IPs found.", renderFloatingIP)
		},
	},

	{
		Name:        "nimbus_get_floating_ip",
		Description: "Get details of a floating IP",
		Args: combineArgs(formatArg(),
			stringID("ip_id", "ID of the floating IP")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/floating-ips/" + url.PathEscape(args.String("ip_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderFloatingIP(obj(payload, "floating_ip"))
		},
	},

	{
		Name:        "nimbus_create_floating_ip",
		Description: "Allocate a new floating IP in a region",
		Args: combineArgs(formatArg(), map[string]Arg{
			"region": {
				Description: "Region to allocate the floating IP in",
				Required:    true,
				Type:        "string",
			},
			"ip_type": {
				Description: "Address family of the floating IP",
				Type:        "enum",
				Enum:        []string{"v4", "v6"},
				Default:     "v4",
			},
			"project_id": {
				Description: "Project to allocate the floating IP in",
				Type:        "string",
			},
		}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{
				"region":  args.String("region"),
				"ip_type": args.String("ip_type"),
			}
			args.CopyTo(body, "project_id")
			return &Request{Method: http.MethodPost, Path: "/floating-ips", Body: body}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Floating IP allocated.\n\n" + renderFloatingIP(obj(payload, "floating_ip"))
		},
	},

	{
		Name:        "nimbus_delete_floating_ip",
		Description: "Release a floating IP back to the pool",
		Args: combineArgs(formatArg(),
			stringID("ip_id", "ID of the floating IP to release")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodDelete,
				Path:   "/floating-ips/" + url.PathEscape(args.String("ip_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("Floating IP %s released.", args.String("ip_id"))
		},
	},

	{
		Name:        "nimbus_bind_floating_ip",
		Description: "Bind a floating IP to a server",
		Args: combineArgs(formatArg(),
			stringID("ip_id", "ID of the floating IP"),
			stringID("server_id", "ID of the server to bind the IP to")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodPost,
				Path:   "/floating-ips/" + url.PathEscape(args.String("ip_id")) + "/bind",
				Body:   map[string]any{"server_id": args.String("server_id")},
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("Floating IP %s bound to server %s.",
				args.String("ip_id"), args.String("server_id"))
		},
	},

	{
		Name:        "nimbus_unbind_floating_ip",
		Description: "Unbind a floating IP from its server. The IP stays allocated.",
		Args: combineArgs(formatArg(),
			stringID("ip_id", "ID of the floating IP to unbind")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodPost,
				Path:   "/floating-ips/" + url.PathEscape(args.String("ip_id")) + "/unbind",
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("Floating IP %s unbound.", args.String("ip_id"))
		},
	},
}

func renderFloatingIP(m map[string]any) string {
	return section(fmt.Sprintf("%s (%s)", str(m, "address"), str(m, "id")),
		"Type: "+str(m, "ip_type"),
		"Region: "+str(m, "region"),
		"Server: "+str(m, "server_id"),
		"Created: "+timeStr(m, "created_at"),
	)
}
