package server

import (
	"fmt"
	"net/http"
	"net/url"
)

// DNSCommands covers hosted domains and their DNS records.
var DNSCommands = []Tool{
	{
		Name:        "nimbus_list_domains",
		Description: "List all DNS domains in the account",
		Args:        combineArgs(paginationArgs(), formatArg()),
		Build: func(args Args) (*Request, error) {
			return &Request{Method: http.MethodGet, Path: "/domains", Query: listQuery(args)}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "domains", args, "No domains found.", renderDomain)
		},
	},

	{
		Name:        "nimbus_get_domain",
		Description: "Get details of a DNS domain",
		Args: combineArgs(formatArg(),
			stringID("domain", "Domain name, e.g. example.com")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/domains/" + url.PathEscape(args.String("domain")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderDomain(obj(payload, "domain"))
		},
	},

	{
		Name:        "nimbus_create_domain",
		Description: "Add a DNS domain to the account",
		Args: combineArgs(formatArg(), map[string]Arg{
			"domain": {
				Description: "Domain name to add, e.g. example.com",
				Required:    true,
				Type:        "string",
			},
			"dns_sec": {
				Description: "Enable DNSSEC for the domain",
				Type:        "boolean",
			},
		}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{"domain": args.String("domain")}
			args.CopyTo(body, "dns_sec")
			return &Request{Method: http.MethodPost, Path: "/domains", Body: body}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Domain added.\n\n" + renderDomain(obj(payload, "domain"))
		},
	},

	{
		Name:        "nimbus_delete_domain",
		Description: "Remove a DNS domain and all its records from the account",
		Args: combineArgs(formatArg(),
			stringID("domain", "Domain name to remove")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodDelete,
				Path:   "/domains/" + url.PathEscape(args.String("domain")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("Domain %s deleted.", args.String("domain"))
		},
	},

	{
		Name:        "nimbus_list_dns_records",
		Description: "List the DNS records of a domain",
		Args: combineArgs(paginationArgs(), formatArg(),
			stringID("domain", "Domain name to list records for")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/domains/" + url.PathEscape(args.String("domain")) + "/records",
				Query:  listQuery(args),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "records", args, "No DNS records found.", renderDNSRecord)
		},
	},

	{
		Name:        "nimbus_get_dns_record",
		Description: "Get a single DNS record of a domain",
		Args: combineArgs(formatArg(),
			stringID("domain", "Domain name the record belongs to"),
			stringID("record_id", "ID of the DNS record")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path: "/domains/" + url.PathEscape(args.String("domain")) +
					"/records/" + url.PathEscape(args.String("record_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderDNSRecord(obj(payload, "record"))
		},
	},

	{
		Name:        "nimbus_create_dns_record",
		Description: "Create a DNS record on a domain",
		Args: combineArgs(formatArg(),
			stringID("domain", "Domain name to create the record on"),
			map[string]Arg{
				"type": {
					Description: "Record type",
					Required:    true,
					Type:        "enum",
					Enum:        []string{"A", "AAAA", "CNAME", "MX", "TXT", "NS", "SRV"},
				},
				"name": {
					Description: "Record name relative to the domain; use @ for the apex",
					Required:    true,
					Type:        "string",
				},
				"data": {
					Description: "Record data, e.g. an IP address for A records",
					Required:    true,
					Type:        "string",
				},
				"ttl": {
					Description: "Time to live in seconds (60-86400)",
					Type:        "number",
					Min:         bound(60),
					Max:         bound(86400),
				},
				"priority": {
					Description: "Priority for MX and SRV records",
					Type:        "number",
					Min:         bound(0),
				},
			}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{
				"type": args.String("type"),
				"name": args.String("name"),
				"data": args.String("data"),
			}
			args.CopyTo(body, "ttl", "priority")
			return &Request{
				Method: http.MethodPost,
				Path:   "/domains/" + url.PathEscape(args.String("domain")) + "/records",
				Body:   body,
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "DNS record created.\n\n" + renderDNSRecord(obj(payload, "record"))
		},
	},

	{
		Name:        "nimbus_update_dns_record",
		Description: "Update a DNS record on a domain",
		Args: combineArgs(formatArg(),
			stringID("domain", "Domain name the record belongs to"),
			stringID("record_id", "ID of the DNS record to update"),
			map[string]Arg{
				"name": {
					Description: "New record name",
					Type:        "string",
				},
				"data": {
					Description: "New record data",
					Type:        "string",
				},
				"ttl": {
					Description: "New time to live in seconds (60-86400)",
					Type:        "number",
					Min:         bound(60),
					Max:         bound(86400),
				},
				"priority": {
					Description: "New priority for MX and SRV records",
					Type:        "number",
					Min:         bound(0),
				},
			}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{}
			args.CopyTo(body, "name", "data", "ttl", "priority")
			return &Request{
				Method: http.MethodPatch,
				Path: "/domains/" + url.PathEscape(args.String("domain")) +
					"/records/" + url.PathEscape(args.String("record_id")),
				Body: body,
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "DNS record updated.\n\n" + renderDNSRecord(obj(payload, "record"))
		},
	},

	{
		Name:        "nimbus_delete_dns_record",
		Description: "Delete a DNS record from a domain",
		Args: combineArgs(formatArg(),
			stringID("domain", "Domain name the record belongs to"),
			stringID("record_id", "ID of the DNS record to delete")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodDelete,
				Path: "/domains/" + url.PathEscape(args.String("domain")) +
					"/records/" + url.PathEscape(args.String("record_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("DNS record %s deleted.", args.String("record_id"))
		},
	},
}

func renderDomain(m map[string]any) string {
	return section(str(m, "domain"),
		"Status: "+str(m, "status"),
		"DNSSEC: "+boolStr(m, "dns_sec"),
		"Records: "+numStr(m, "record_count"),
		"Created: "+timeStr(m, "created_at"),
	)
}

func renderDNSRecord(m map[string]any) string {
	return section(fmt.Sprintf("%s %s (%s)", str(m, "type"), str(m, "name"), str(m, "id")),
		"Data: "+str(m, "data"),
		"TTL: "+numStr(m, "ttl"),
		"Priority: "+numStr(m, "priority"),
	)
}
