package server

import (
	"fmt"
	"net/http"
	"net/url"
)

// DatabaseCommands covers managed database clusters, including backup
// management.
var DatabaseCommands = []Tool{
	{
		Name:        "nimbus_list_databases",
		Description: "List all managed database clusters in the account",
		Args:        combineArgs(paginationArgs(), formatArg()),
		Build: func(args Args) (*Request, error) {
			return &Request{Method: http.MethodGet, Path: "/databases", Query: listQuery(args)}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "databases", args, "No databases found.", renderDatabase)
		},
	},

	{
		Name:        "nimbus_get_database",
		Description: "Get details of a managed database cluster",
		Args: combineArgs(formatArg(),
			stringID("database_id", "ID of the database cluster")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/databases/" + url.PathEscape(args.String("database_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderDatabase(obj(payload, "database"))
		},
	},

	{
		Name:        "nimbus_create_database",
		Description: "Create a new managed database cluster",
		Args: combineArgs(formatArg(), map[string]Arg{
			"name": {
				Description: "Name of the new database cluster",
				Required:    true,
				Type:        "string",
			},
			"engine": {
				Description: "Database engine",
				Required:    true,
				Type:        "enum",
				Enum:        []string{"postgres", "mysql", "redis"},
			},
			"version": {
				Description: "Engine version, e.g. 16. Defaults to the latest supported version.",
				Type:        "string",
			},
			"region": {
				Description: "Region to create the cluster in",
				Required:    true,
				Type:        "string",
			},
			"plan": {
				Description: "Plan (size) of the cluster",
				Required:    true,
				Type:        "string",
			},
			"project_id": {
				Description: "Project to create the cluster in",
				Type:        "string",
			},
		}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{
				"name":   args.String("name"),
				"engine": args.String("engine"),
				"region": args.String("region"),
				"plan":   args.String("plan"),
			}
			args.CopyTo(body, "version", "project_id")
			return &Request{Method: http.MethodPost, Path: "/databases", Body: body}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Database cluster created.\n\n" + renderDatabase(obj(payload, "database"))
		},
	},

	{
		Name:        "nimbus_update_database",
		Description: "Update a database cluster's name, plan or maintenance window",
		Args: combineArgs(formatArg(),
			stringID("database_id", "ID of the database cluster to update"),
			map[string]Arg{
				"name": {
					Description: "New name for the cluster",
					Type:        "string",
				},
				"plan": {
					Description: "Plan to resize the cluster to",
					Type:        "string",
				},
				"maintenance_window": {
					Description: "Weekly maintenance window, e.g. sun-02:00",
					Type:        "string",
				},
			}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{}
			args.CopyTo(body, "name", "plan", "maintenance_window")
			return &Request{
				Method: http.MethodPatch,
				Path:   "/databases/" + url.PathEscape(args.String("database_id")),
				Body:   body,
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Database cluster updated.\n\n" + renderDatabase(obj(payload, "database"))
		},
	},

	{
		Name:        "nimbus_delete_database",
		Description: "Delete a database cluster permanently, including all its backups",
		Args: combineArgs(formatArg(),
			stringID("database_id", "ID of the database cluster to delete")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodDelete,
				Path:   "/databases/" + url.PathEscape(args.String("database_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("Database cluster %s deleted.", args.String("database_id"))
		},
	},

	{
		Name:        "nimbus_list_database_backups",
		Description: "List available backups of a database cluster",
		Args: combineArgs(paginationArgs(), formatArg(),
			stringID("database_id", "ID of the database cluster")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/databases/" + url.PathEscape(args.String("database_id")) + "/backups",
				Query:  listQuery(args),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "backups", args, "No backups found.", renderDatabaseBackup)
		},
	},

	{
		Name:        "nimbus_restore_database_backup",
		Description: "Restore a database cluster from one of its backups. Current data is replaced.",
		Args: combineArgs(formatArg(),
			stringID("database_id", "ID of the database cluster to restore"),
			stringID("backup_id", "ID of the backup to restore from")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodPost,
				Path:   "/databases/" + url.PathEscape(args.String("database_id")) + "/restore",
				Body:   map[string]any{"backup_id": args.String("backup_id")},
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("Restore of database cluster %s from backup %s started.",
				args.String("database_id"), args.String("backup_id"))
		},
	},

	{
		Name:        "nimbus_set_database_auto_backup",
		Description: "Enable or disable automatic daily backups for a database cluster",
		Args: combineArgs(formatArg(),
			stringID("database_id", "ID of the database cluster"),
			map[string]Arg{
				"enabled": {
					Description: "Whether automatic backups should be enabled",
					Required:    true,
					Type:        "boolean",
				},
			}),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodPatch,
				Path:   "/databases/" + url.PathEscape(args.String("database_id")),
				Body:   map[string]any{"auto_backup": args.Bool("enabled")},
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			state := "disabled"
			if args.Bool("enabled") {
				state = "enabled"
			}
			return fmt.Sprintf("Automatic backups %s for database cluster %s.", state, args.String("database_id"))
		},
	},
}

func renderDatabase(m map[string]any) string {
	return section(fmt.Sprintf("%s (%s)", str(m, "name"), str(m, "id")),
		"Status: "+str(m, "status"),
		"Engine: "+str(m, "engine")+" "+str(m, "version"),
		"Region: "+str(m, "region"),
		"Plan: "+str(m, "plan"),
		"Host: "+str(m, "host"),
		"Port: "+numStr(m, "port"),
		"Storage: "+bytesStr(m, "storage_bytes"),
		"Auto backup: "+boolStr(m, "auto_backup"),
		"Maintenance window: "+str(m, "maintenance_window"),
		"Created: "+timeStr(m, "created_at"),
	)
}

func renderDatabaseBackup(m map[string]any) string {
	return section(str(m, "id"),
		"Status: "+str(m, "status"),
		"Size: "+bytesStr(m, "size_bytes"),
		"Created: "+timeStr(m, "created_at"),
	)
}
