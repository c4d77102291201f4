package server

import (
	"fmt"
	"net/http"
	"net/url"
)

// ProjectCommands covers projects, the grouping unit for other resources.
var ProjectCommands = []Tool{
	{
		Name:        "nimbus_list_projects",
		Description: "List all projects in the account",
		Args:        combineArgs(paginationArgs(), formatArg()),
		Build: func(args Args) (*Request, error) {
			return &Request{Method: http.MethodGet, Path: "/projects", Query: listQuery(args)}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "projects", args, "No projects found.", renderProject)
		},
	},

	{
		Name:        "nimbus_get_project",
		Description: "Get details of a project",
		Args: combineArgs(formatArg(),
			stringID("project_id", "ID of the project")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/projects/" + url.PathEscape(args.String("project_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderProject(obj(payload, "project"))
		},
	},

	{
		Name:        "nimbus_create_project",
		Description: "Create a new project",
		Args: combineArgs(formatArg(), map[string]Arg{
			"name": {
				Description: "Name of the new project",
				Required:    true,
				Type:        "string",
			},
			"description": {
				Description: "Description of the project",
				Type:        "string",
			},
			"environment": {
				Description: "Environment the project is intended for",
				Type:        "enum",
				Enum:        []string{"development", "staging", "production"},
			},
		}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{"name": args.String("name")}
			args.CopyTo(body, "description", "environment")
			return &Request{Method: http.MethodPost, Path: "/projects", Body: body}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Project created.\n\n" + renderProject(obj(payload, "project"))
		},
	},

	{
		Name:        "nimbus_update_project",
		Description: "Update a project's name, description or environment",
		Args: combineArgs(formatArg(),
			stringID("project_id", "ID of the project to update"),
			map[string]Arg{
				"name": {
					Description: "New name for the project",
					Type:        "string",
				},
				"description": {
					Description: "New description for the project",
					Type:        "string",
				},
				"environment": {
					Description: "New environment for the project",
					Type:        "enum",
					Enum:        []string{"development", "staging", "production"},
				},
			}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{}
			args.CopyTo(body, "name", "description", "environment")
			return &Request{
				Method: http.MethodPatch,
				Path:   "/projects/" + url.PathEscape(args.String("project_id")),
				Body:   body,
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Project updated.\n\n" + renderProject(obj(payload, "project"))
		},
	},

	{
		Name:        "nimbus_delete_project",
		Description: "Delete a project. The project must not contain any resources.",
		Args: combineArgs(formatArg(),
			stringID("project_id", "ID of the project to delete")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodDelete,
				Path:   "/projects/" + url.PathEscape(args.String("project_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("Project %s deleted.", args.String("project_id"))
		},
	},
}

func renderProject(m map[string]any) string {
	return section(fmt.Sprintf("%s (%s)", str(m, "name"), str(m, "id")),
		"Description: "+str(m, "description"),
		"Environment: "+str(m, "environment"),
		"Resources: "+numStr(m, "resource_count"),
		"Created: "+timeStr(m, "created_at"),
	)
}
