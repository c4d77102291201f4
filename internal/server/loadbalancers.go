package server

import (
	"fmt"
	"net/http"
	"net/url"
)

// LoadBalancerCommands covers load balancers and their forwarding rules.
var LoadBalancerCommands = []Tool{
	{
		Name:        "nimbus_list_load_balancers",
		Description: "List all load balancers in the account",
		Args:        combineArgs(paginationArgs(), formatArg()),
		Build: func(args Args) (*Request, error) {
			return &Request{Method: http.MethodGet, Path: "/load-balancers", Query: listQuery(args)}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "load_balancers", args, "No load balancers found.", renderLoadBalancer)
		},
	},

	{
		Name:        "nimbus_get_load_balancer",
		Description: "Get details of a load balancer",
		Args: combineArgs(formatArg(),
			stringID("lb_id", "ID of the load balancer")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/load-balancers/" + url.PathEscape(args.String("lb_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderLoadBalancer(obj(payload, "load_balancer"))
		},
	},

	{
		Name:        "nimbus_create_load_balancer",
		Description: "Create a new load balancer. Forwarding rules are added separately.",
		Args: combineArgs(formatArg(), map[string]Arg{
			"name": {
				Description: "Name of the new load balancer",
				Required:    true,
				Type:        "string",
			},
			"region": {
				Description: "Region to create the load balancer in",
				Required:    true,
				Type:        "string",
			},
			"algorithm": {
				Description: "Balancing algorithm",
				Type:        "enum",
				Enum:        []string{"round_robin", "least_connections"},
			},
			"server_ids": {
				Description: "Server IDs to attach as backends",
				Type:        "array",
			},
		}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{
				"name":   args.String("name"),
				"region": args.String("region"),
			}
			args.CopyTo(body, "algorithm", "server_ids")
			return &Request{Method: http.MethodPost, Path: "/load-balancers", Body: body}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Load balancer created.\n\n" + renderLoadBalancer(obj(payload, "load_balancer"))
		},
	},

	{
		Name:        "nimbus_update_load_balancer",
		Description: "Update a load balancer's name, algorithm or backend servers",
		Args: combineArgs(formatArg(),
			stringID("lb_id", "ID of the load balancer to update"),
			map[string]Arg{
				"name": {
					Description: "New name for the load balancer",
					Type:        "string",
				},
				"algorithm": {
					Description: "New balancing algorithm",
					Type:        "enum",
					Enum:        []string{"round_robin", "least_connections"},
				},
				"server_ids": {
					Description: "Replacement backend server set",
					Type:        "array",
				},
			}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{}
			args.CopyTo(body, "name", "algorithm", "server_ids")
			return &Request{
				Method: http.MethodPatch,
				Path:   "/load-balancers/" + url.PathEscape(args.String("lb_id")),
				Body:   body,
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Load balancer updated.\n\n" + renderLoadBalancer(obj(payload, "load_balancer"))
		},
	},

	{
		Name:        "nimbus_delete_load_balancer",
		Description: "Delete a load balancer. Backend servers are left untouched.",
		Args: combineArgs(formatArg(),
			stringID("lb_id", "ID of the load balancer to delete")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodDelete,
				Path:   "/load-balancers/" + url.PathEscape(args.String("lb_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("Load balancer %s deleted.", args.String("lb_id"))
		},
	},

	{
		Name:        "nimbus_list_forwarding_rules",
		Description: "List the forwarding rules of a load balancer",
		Args: combineArgs(paginationArgs(), formatArg(),
			stringID("lb_id", "ID of the load balancer")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/load-balancers/" + url.PathEscape(args.String("lb_id")) + "/rules",
				Query:  listQuery(args),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "rules", args, "No forwarding rules found.", renderForwardingRule)
		},
	},

	{
		Name:        "nimbus_create_forwarding_rule",
		Description: "Add a forwarding rule to a load balancer",
		Args: combineArgs(formatArg(),
			stringID("lb_id", "ID of the load balancer"),
			map[string]Arg{
				"entry_protocol": {
					Description: "Protocol the load balancer listens on",
					Required:    true,
					Type:        "enum",
					Enum:        []string{"http", "https", "tcp"},
				},
				"entry_port": {
					Description: "Port the load balancer listens on (1-65535)",
					Required:    true,
					Type:        "number",
					Min:         bound(1),
					Max:         bound(65535),
				},
				"target_protocol": {
					Description: "Protocol used towards the backends",
					Required:    true,
					Type:        "enum",
					Enum:        []string{"http", "https", "tcp"},
				},
				"target_port": {
					Description: "Port the backends listen on (1-65535)",
					Required:    true,
					Type:        "number",
					Min:         bound(1),
					Max:         bound(65535),
				},
			}),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodPost,
				Path:   "/load-balancers/" + url.PathEscape(args.String("lb_id")) + "/rules",
				Body: map[string]any{
					"entry_protocol":  args.String("entry_protocol"),
					"entry_port":      args.Float("entry_port"),
					"target_protocol": args.String("target_protocol"),
					"target_port":     args.Float("target_port"),
				},
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Forwarding rule created.\n\n" + renderForwardingRule(obj(payload, "rule"))
		},
	},

	{
		Name:        "nimbus_delete_forwarding_rule",
		Description: "Remove a forwarding rule from a load balancer",
		Args: combineArgs(formatArg(),
			stringID("lb_id", "ID of the load balancer"),
			stringID("rule_id", "ID of the forwarding rule to remove")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodDelete,
				Path: "/load-balancers/" + url.PathEscape(args.String("lb_id")) +
					"/rules/" + url.PathEscape(args.String("rule_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("Forwarding rule %s deleted.", args.String("rule_id"))
		},
	},
}

func renderLoadBalancer(m map[string]any) string {
	return section(fmt.Sprintf("%s (%s)", str(m, "name"), str(m, "id")),
		"Status: "+str(m, "status"),
		"Region: "+str(m, "region"),
		"IPv4: "+str(m, "ipv4"),
		"Algorithm: "+str(m, "algorithm"),
		"Backends: "+strList(m, "server_ids"),
		"Created: "+timeStr(m, "created_at"),
	)
}

func renderForwardingRule(m map[string]any) string {
	return section(str(m, "id"),
		fmt.Sprintf("Entry: %s/%s", str(m, "entry_protocol"), numStr(m, "entry_port")),
		fmt.Sprintf("Target: %s/%s", str(m, "target_protocol"), numStr(m, "target_port")),
	)
}
