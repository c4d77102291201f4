package server

import (
	"fmt"
	"net/http"
	"net/url"
)

// FirewallCommands covers firewall groups and the rules inside them.
var FirewallCommands = []Tool{
	{
		Name:        "nimbus_list_firewall_groups",
		Description: "List all firewall groups in the account",
		Args:        combineArgs(paginationArgs(), formatArg()),
		Build: func(args Args) (*Request, error) {
			return &Request{Method: http.MethodGet, Path: "/firewalls", Query: listQuery(args)}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "firewall_groups", args, "No firewall groups found.", renderFirewallGroup)
		},
	},

	{
		Name:        "nimbus_get_firewall_group",
		Description: "Get details of a firewall group",
		Args: combineArgs(formatArg(),
			stringID("group_id", "ID of the firewall group")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/firewalls/" + url.PathEscape(args.String("group_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderFirewallGroup(obj(payload, "firewall_group"))
		},
	},

	{
		Name:        "nimbus_create_firewall_group",
		Description: "Create a new firewall group. Rules are added separately.",
		Args: combineArgs(formatArg(), map[string]Arg{
			"description": {
				Description: "Description of the new firewall group",
				Required:    true,
				Type:        "string",
			},
		}),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodPost,
				Path:   "/firewalls",
				Body:   map[string]any{"description": args.String("description")},
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Firewall group created.\n\n" + renderFirewallGroup(obj(payload, "firewall_group"))
		},
	},

	{
		Name:        "nimbus_update_firewall_group",
		Description: "Update a firewall group's description",
		Args: combineArgs(formatArg(),
			stringID("group_id", "ID of the firewall group to update"),
			map[string]Arg{
				"description": {
					Description: "New description for the firewall group",
					Required:    true,
					Type:        "string",
				},
			}),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodPatch,
				Path:   "/firewalls/" + url.PathEscape(args.String("group_id")),
				Body:   map[string]any{"description": args.String("description")},
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Firewall group updated.\n\n" + renderFirewallGroup(obj(payload, "firewall_group"))
		},
	},

	{
		Name:        "nimbus_delete_firewall_group",
		Description: "Delete a firewall group and all its rules. Attached servers lose the rules.",
		Args: combineArgs(formatArg(),
			stringID("group_id", "ID of the firewall group to delete")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodDelete,
				Path:   "/firewalls/" + url.PathEscape(args.String("group_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("Firewall group %s deleted.", args.String("group_id"))
		},
	},

	{
		Name:        "nimbus_list_firewall_rules",
		Description: "List the rules of a firewall group",
		Args: combineArgs(paginationArgs(), formatArg(),
			stringID("group_id", "ID of the firewall group")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/firewalls/" + url.PathEscape(args.String("group_id")) + "/rules",
				Query:  listQuery(args),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "rules", args, "No firewall rules found.", renderFirewallRule)
		},
	},

	{
		Name:        "nimbus_create_firewall_rule",
		Description: "Add a rule to a firewall group",
		Args: combineArgs(formatArg(),
			stringID("group_id", "ID of the firewall group"),
			map[string]Arg{
				"protocol": {
					Description: "Protocol the rule matches",
					Required:    true,
					Type:        "enum",
					Enum:        []string{"tcp", "udp", "icmp"},
				},
				"source": {
					Description: "Source CIDR the rule matches, e.g. 0.0.0.0/0",
					Required:    true,
					Type:        "string",
				},
				"port": {
					Description: "Port or port range the rule matches, e.g. 443 or 8000-9000",
					Type:        "string",
				},
				"direction": {
					Description: "Traffic direction the rule applies to",
					Type:        "enum",
					Enum:        []string{"in", "out"},
					Default:     "in",
				},
				"notes": {
					Description: "Free-form notes on the rule",
					Type:        "string",
				},
			}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{
				"protocol":  args.String("protocol"),
				"source":    args.String("source"),
				"direction": args.String("direction"),
			}
			args.CopyTo(body, "port", "notes")
			return &Request{
				Method: http.MethodPost,
				Path:   "/firewalls/" + url.PathEscape(args.String("group_id")) + "/rules",
				Body:   body,
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Firewall rule created.\n\n" + renderFirewallRule(obj(payload, "rule"))
		},
	},

	{
		Name:        "nimbus_delete_firewall_rule",
		Description: "Remove a rule from a firewall group",
		Args: combineArgs(formatArg(),
			stringID("group_id", "ID of the firewall group"),
			stringID("rule_id", "ID of the rule to remove")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodDelete,
				Path: "/firewalls/" + url.PathEscape(args.String("group_id")) +
					"/rules/" + url.PathEscape(args.String("rule_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("Firewall rule %s deleted.", args.String("rule_id"))
		},
	},
}

func renderFirewallGroup(m map[string]any) string {
	return section(fmt.Sprintf("%s (%s)", str(m, "description"), str(m, "id")),
		"Rules: "+numStr(m, "rule_count"),
		"Attached servers: "+numStr(m, "server_count"),
		"Created: "+timeStr(m, "created_at"),
	)
}

func renderFirewallRule(m map[string]any) string {
	return section(str(m, "id"),
		"Direction: "+str(m, "direction"),
		"Protocol: "+str(m, "protocol"),
		"Port: "+str(m, "port"),
		"Source: "+str(m, "source"),
		"Notes: "+str(m, "notes"),
	)
}
