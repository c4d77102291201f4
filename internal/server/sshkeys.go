package server

import (
	"fmt"
	"net/http"
	"net/url"
)

// SSHKeyCommands covers the account's SSH public keys.
var SSHKeyCommands = []Tool{
	{
		Name:        "nimbus_list_ssh_keys",
		Description: "List all SSH keys in the account",
		Args:        combineArgs(paginationArgs(), formatArg()),
		Build: func(args Args) (*Request, error) {
			return &Request{Method: http.MethodGet, Path: "/ssh-keys", Query: listQuery(args)}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "ssh_keys", args, "No SSH keys found.", renderSSHKey)
		},
	},

	{
		Name:        "nimbus_get_ssh_key",
		Description: "Get details of an SSH key",
		Args: combineArgs(formatArg(),
			stringID("key_id", "ID of the SSH key")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/ssh-keys/" + url.PathEscape(args.String("key_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderSSHKey(obj(payload, "ssh_key"))
		},
	},

	{
		Name:        "nimbus_create_ssh_key",
		Description: "Add an SSH public key to the account",
		Args: combineArgs(formatArg(), map[string]Arg{
			"name": {
				Description: "Name identifying the new SSH key",
				Required:    true,
				Type:        "string",
			},
			"body": {
				Description: "SSH public key in OpenSSH format, e.g. ssh-ed25519 AAAA...",
				Required:    true,
				Type:        "string",
			},
		}),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodPost,
				Path:   "/ssh-keys",
				Body: map[string]any{
					"name": args.String("name"),
					"body": args.String("body"),
				},
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "SSH key added.\n\n" + renderSSHKey(obj(payload, "ssh_key"))
		},
	},

	{
		Name:        "nimbus_update_ssh_key",
		Description: "Rename an SSH key",
		Args: combineArgs(formatArg(),
			stringID("key_id", "ID of the SSH key to update"),
			map[string]Arg{
				"name": {
					Description: "New name for the SSH key",
					Required:    true,
					Type:        "string",
				},
			}),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodPatch,
				Path:   "/ssh-keys/" + url.PathEscape(args.String("key_id")),
				Body:   map[string]any{"name": args.String("name")},
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "SSH key updated.\n\n" + renderSSHKey(obj(payload, "ssh_key"))
		},
	},

	{
		Name:        "nimbus_delete_ssh_key",
		Description: "Remove an SSH key from the account. Servers already using it are unaffected.",
		Args: combineArgs(formatArg(),
			stringID("key_id", "ID of the SSH key to remove")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodDelete,
				Path:   "/ssh-keys/" + url.PathEscape(args.String("key_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("SSH key %s deleted.", args.String("key_id"))
		},
	},
}

func renderSSHKey(m map[string]any) string {
	return section(fmt.Sprintf("%s (%s)", str(m, "name"), str(m, "id")),
		"Fingerprint: "+str(m, "fingerprint"),
		"Created: "+timeStr(m, "created_at"),
	)
}
