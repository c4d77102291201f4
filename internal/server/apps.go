package server

import (
	"fmt"
	"net/http"
	"net/url"
)

// AppCommands covers platform apps, their deployments and logs.
var AppCommands = []Tool{
	{
		Name:        "nimbus_list_apps",
		Description: "List all platform apps in the account",
		Args:        combineArgs(paginationArgs(), formatArg()),
		Build: func(args Args) (*Request, error) {
			return &Request{Method: http.MethodGet, Path: "/apps", Query: listQuery(args)}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "apps", args, "No apps found.", renderApp)
		},
	},

	{
		Name:        "nimbus_get_app",
		Description: "Get details of a platform app",
		Args: combineArgs(formatArg(),
			stringID("app_id", "ID of the app")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/apps/" + url.PathEscape(args.String("app_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderApp(obj(payload, "app"))
		},
	},

	{
		Name:        "nimbus_create_app",
		Description: "Create a new platform app, optionally linked to a git repository",
		Args: combineArgs(formatArg(), map[string]Arg{
			"name": {
				Description: "Name of the new app",
				Required:    true,
				Type:        "string",
			},
			"region": {
				Description: "Region to run the app in",
				Required:    true,
				Type:        "string",
			},
			"repository": {
				Description: "Git repository URL to deploy from",
				Type:        "string",
			},
			"branch": {
				Description: "Git branch to deploy. Defaults to the repository default branch.",
				Type:        "string",
			},
			"instance_size": {
				Description: "Size of each app instance, e.g. small",
				Type:        "string",
			},
			"instance_count": {
				Description: "Number of app instances to run",
				Type:        "number",
				Min:         bound(1),
			},
			"env_vars": {
				Description: "Environment variables as KEY=value strings",
				Type:        "array",
			},
		}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{
				"name":   args.String("name"),
				"region": args.String("region"),
			}
			args.CopyTo(body, "repository", "branch", "instance_size", "instance_count", "env_vars")
			return &Request{Method: http.MethodPost, Path: "/apps", Body: body}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "App created.\n\n" + renderApp(obj(payload, "app"))
		},
	},

	{
		Name:        "nimbus_update_app",
		Description: "Update an app's scaling, branch or environment variables",
		Args: combineArgs(formatArg(),
			stringID("app_id", "ID of the app to update"),
			map[string]Arg{
				"branch": {
					Description: "New git branch to deploy from",
					Type:        "string",
				},
				"instance_size": {
					Description: "New size of each app instance",
					Type:        "string",
				},
				"instance_count": {
					Description: "New number of app instances",
					Type:        "number",
					Min:         bound(1),
				},
				"env_vars": {
					Description: "Replacement environment variables as KEY=value strings",
					Type:        "array",
				},
			}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{}
			args.CopyTo(body, "branch", "instance_size", "instance_count", "env_vars")
			return &Request{
				Method: http.MethodPatch,
				Path:   "/apps/" + url.PathEscape(args.String("app_id")),
				Body:   body,
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "App updated.\n\n" + renderApp(obj(payload, "app"))
		},
	},

	{
		Name:        "nimbus_delete_app",
		Description: "Delete an app and all its deployments permanently",
		Args: combineArgs(formatArg(),
			stringID("app_id", "ID of the app to delete")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodDelete,
				Path:   "/apps/" + url.PathEscape(args.String("app_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("App %s deleted.", args.String("app_id"))
		},
	},

	{
		Name:        "nimbus_list_deployments",
		Description: "List the deployments of an app, newest first",
		Args: combineArgs(paginationArgs(), formatArg(),
			stringID("app_id", "ID of the app")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/apps/" + url.PathEscape(args.String("app_id")) + "/deployments",
				Query:  listQuery(args),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "deployments", args, "No deployments found.", renderDeployment)
		},
	},

	{
		Name:        "nimbus_get_deployment",
		Description: "Get details of a single deployment of an app",
		Args: combineArgs(formatArg(),
			stringID("app_id", "ID of the app"),
			stringID("deployment_id", "ID of the deployment")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path: "/apps/" + url.PathEscape(args.String("app_id")) +
					"/deployments/" + url.PathEscape(args.String("deployment_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderDeployment(obj(payload, "deployment"))
		},
	},

	{
		Name:        "nimbus_create_deployment",
		Description: "Trigger a new deployment of an app from its current branch",
		Args: combineArgs(formatArg(),
			stringID("app_id", "ID of the app to deploy")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodPost,
				Path:   "/apps/" + url.PathEscape(args.String("app_id")) + "/deployments",
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Deployment started.\n\n" + renderDeployment(obj(payload, "deployment"))
		},
	},

	{
		Name:        "nimbus_get_app_logs",
		Description: "Fetch the most recent log lines of an app",
		Args: combineArgs(formatArg(),
			stringID("app_id", "ID of the app"),
			map[string]Arg{
				"lines": {
					Description: "Number of log lines to return (1-1000)",
					Type:        "number",
					Default:     "100",
					Min:         bound(1),
					Max:         bound(1000),
				},
			}),
		Build: func(args Args) (*Request, error) {
			q := url.Values{}
			q.Set("lines", fmt.Sprintf("%d", args.Int("lines")))
			return &Request{
				Method: http.MethodGet,
				Path:   "/apps/" + url.PathEscape(args.String("app_id")) + "/logs",
				Query:  q,
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			if logs, ok := payload["logs"].(string); ok && logs != "" {
				return logs
			}
			return "No log output."
		},
	},
}

func renderApp(m map[string]any) string {
	return section(fmt.Sprintf("%s (%s)", str(m, "name"), str(m, "id")),
		"Status: "+str(m, "status"),
		"Region: "+str(m, "region"),
		"URL: "+str(m, "url"),
		"Repository: "+str(m, "repository"),
		"Branch: "+str(m, "branch"),
		"Instances: "+numStr(m, "instance_count")+" x "+str(m, "instance_size"),
		"Created: "+timeStr(m, "created_at"),
	)
}

func renderDeployment(m map[string]any) string {
	return section(str(m, "id"),
		"Status: "+str(m, "status"),
		"Commit: "+str(m, "commit_sha"),
		"Started: "+timeStr(m, "started_at"),
		"Finished: "+timeStr(m, "finished_at"),
	)
}
