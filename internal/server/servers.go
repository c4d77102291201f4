package server

import (
	"fmt"
	"net/http"
	"net/url"
)

// ServerCommands covers compute instances: CRUD plus the power and
// lifecycle actions.
var ServerCommands = []Tool{
	{
		Name:        "nimbus_list_servers",
		Description: "List all servers in the account, optionally filtered by project or region",
		Args: combineArgs(paginationArgs(), formatArg(), map[string]Arg{
			"project_id": {
				Description: "Only return servers belonging to this project",
				Type:        "string",
			},
			"region": {
				Description: "Only return servers in this region",
				Type:        "string",
			},
		}),
		Build: func(args Args) (*Request, error) {
			q := listQuery(args)
			if args.Has("project_id") {
				q.Set("project_id", args.String("project_id"))
			}
			if args.Has("region") {
				q.Set("region", args.String("region"))
			}
			return &Request{Method: http.MethodGet, Path: "/servers", Query: q}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "servers", args, "No servers found.", renderServer)
		},
	},

	{
		Name:        "nimbus_get_server",
		Description: "Get details of a single server",
		Args: combineArgs(formatArg(),
			stringID("server_id", "ID of the server")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/servers/" + url.PathEscape(args.String("server_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderServer(obj(payload, "server"))
		},
	},

	{
		Name:        "nimbus_create_server",
		Description: "Create a new server. The server starts automatically once provisioned.",
		Args: combineArgs(formatArg(), map[string]Arg{
			"name": {
				Description: "Name of the new server",
				Required:    true,
				Type:        "string",
			},
			"region": {
				Description: "Region to create the server in",
				Required:    true,
				Type:        "string",
			},
			"plan": {
				Description: "Plan (size) of the new server, e.g. cx-2-4",
				Required:    true,
				Type:        "string",
			},
			"image": {
				Description: "OS image or custom image ID to install",
				Required:    true,
				Type:        "string",
			},
			"project_id": {
				Description: "Project to create the server in",
				Type:        "string",
			},
			"ssh_key_ids": {
				Description: "SSH key IDs to install on the server",
				Type:        "array",
			},
			"backups": {
				Description: "Enable automatic backups",
				Type:        "boolean",
			},
			"user_data": {
				Description: "Cloud-init user data to run on first boot",
				Type:        "string",
			},
			"tags": {
				Description: "Tags to attach to the server",
				Type:        "array",
			},
		}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{
				"name":   args.String("name"),
				"region": args.String("region"),
				"plan":   args.String("plan"),
				"image":  args.String("image"),
			}
			args.CopyTo(body, "project_id", "ssh_key_ids", "backups", "user_data", "tags")
			return &Request{Method: http.MethodPost, Path: "/servers", Body: body}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Server created.\n\n" + renderServer(obj(payload, "server"))
		},
	},

	{
		Name:        "nimbus_update_server",
		Description: "Update a server's name or tags",
		Args: combineArgs(formatArg(),
			stringID("server_id", "ID of the server to update"),
			map[string]Arg{
				"name": {
					Description: "New name for the server",
					Type:        "string",
				},
				"tags": {
					Description: "Replacement tag set for the server",
					Type:        "array",
				},
			}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{}
			args.CopyTo(body, "name", "tags")
			return &Request{
				Method: http.MethodPatch,
				Path:   "/servers/" + url.PathEscape(args.String("server_id")),
				Body:   body,
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Server updated.\n\n" + renderServer(obj(payload, "server"))
		},
	},

	{
		Name:        "nimbus_delete_server",
		Description: "Delete a server permanently. This cannot be undone.",
		Args: combineArgs(formatArg(),
			stringID("server_id", "ID of the server to delete")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodDelete,
				Path:   "/servers/" + url.PathEscape(args.String("server_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("Server %s deleted.", args.String("server_id"))
		},
	},

	{
		Name:        "nimbus_start_server",
		Description: "Start a stopped server",
		Args: combineArgs(formatArg(),
			stringID("server_id", "ID of the server to start")),
		Build:  serverAction("start"),
		Render: serverActionResult("start requested"),
	},

	{
		Name:        "nimbus_stop_server",
		Description: "Stop a running server. The server keeps its data and IP addresses.",
		Args: combineArgs(formatArg(),
			stringID("server_id", "ID of the server to stop")),
		Build:  serverAction("stop"),
		Render: serverActionResult("stop requested"),
	},

	{
		Name:        "nimbus_reboot_server",
		Description: "Reboot a server",
		Args: combineArgs(formatArg(),
			stringID("server_id", "ID of the server to reboot")),
		Build:  serverAction("reboot"),
		Render: serverActionResult("reboot requested"),
	},

	{
		Name:        "nimbus_resize_server",
		Description: "Resize a server to a different plan. The server is rebooted during the resize.",
		Args: combineArgs(formatArg(),
			stringID("server_id", "ID of the server to resize"),
			map[string]Arg{
				"plan": {
					Description: "Plan to resize the server to",
					Required:    true,
					Type:        "string",
				},
			}),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodPost,
				Path:   "/servers/" + url.PathEscape(args.String("server_id")) + "/resize",
				Body:   map[string]any{"plan": args.String("plan")},
			}, nil
		},
		Render: serverActionResult("resize requested"),
	},

	{
		Name:        "nimbus_reinstall_server",
		Description: "Reinstall a server from an image, wiping all data on its disk",
		Args: combineArgs(formatArg(),
			stringID("server_id", "ID of the server to reinstall"),
			map[string]Arg{
				"image": {
					Description: "Image to reinstall from. Defaults to the server's current image.",
					Type:        "string",
				},
			}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{}
			args.CopyTo(body, "image")
			return &Request{
				Method: http.MethodPost,
				Path:   "/servers/" + url.PathEscape(args.String("server_id")) + "/reinstall",
				Body:   body,
			}, nil
		},
		Render: serverActionResult("reinstall requested"),
	},
}

// serverAction builds the no-body POST shared by the power actions.
func serverAction(action string) func(args Args) (*Request, error) {
	return func(args Args) (*Request, error) {
		return &Request{
			Method: http.MethodPost,
			Path:   "/servers/" + url.PathEscape(args.String("server_id")) + "/" + action,
		}, nil
	}
}

func serverActionResult(verb string) func(payload map[string]any, args Args) string {
	return func(payload map[string]any, args Args) string {
		return fmt.Sprintf("Server %s: %s.", args.String("server_id"), verb)
	}
}

func renderServer(m map[string]any) string {
	return section(fmt.Sprintf("%s (%s)", str(m, "name"), str(m, "id")),
		"Status: "+str(m, "status"),
		"Region: "+str(m, "region"),
		"Plan: "+str(m, "plan"),
		"Image: "+str(m, "image"),
		"IPv4: "+str(m, "ipv4"),
		"IPv6: "+str(m, "ipv6"),
		"vCPUs: "+numStr(m, "vcpus"),
		"Memory: "+bytesStr(m, "memory_bytes"),
		"Disk: "+bytesStr(m, "disk_bytes"),
		"Tags: "+strList(m, "tags"),
		"Created: "+timeStr(m, "created_at"),
	)
}
