package server

import (
	"fmt"
	"net/http"
	"net/url"
)

// KubernetesCommands covers managed Kubernetes clusters and their node
// pools.
var KubernetesCommands = []Tool{
	{
		Name:        "nimbus_list_clusters",
		Description: "List all managed Kubernetes clusters in the account",
		Args:        combineArgs(paginationArgs(), formatArg()),
		Build: func(args Args) (*Request, error) {
			return &Request{Method: http.MethodGet, Path: "/kubernetes/clusters", Query: listQuery(args)}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "clusters", args, "No Kubernetes clusters found.", renderCluster)
		},
	},

	{
		Name:        "nimbus_get_cluster",
		Description: "Get details of a managed Kubernetes cluster",
		Args: combineArgs(formatArg(),
			stringID("cluster_id", "ID of the Kubernetes cluster")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/kubernetes/clusters/" + url.PathEscape(args.String("cluster_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderCluster(obj(payload, "cluster"))
		},
	},

	{
		Name:        "nimbus_create_cluster",
		Description: "Create a new managed Kubernetes cluster. Node pools are added separately.",
		Args: combineArgs(formatArg(), map[string]Arg{
			"name": {
				Description: "Name of the new cluster",
				Required:    true,
				Type:        "string",
			},
			"region": {
				Description: "Region to create the cluster in",
				Required:    true,
				Type:        "string",
			},
			"version": {
				Description: "Kubernetes version, e.g. 1.31. Defaults to the latest supported version.",
				Type:        "string",
			},
			"network_id": {
				Description: "Virtual network to attach the cluster to",
				Type:        "string",
			},
		}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{
				"name":   args.String("name"),
				"region": args.String("region"),
			}
			args.CopyTo(body, "version", "network_id")
			return &Request{Method: http.MethodPost, Path: "/kubernetes/clusters", Body: body}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Kubernetes cluster created.\n\n" + renderCluster(obj(payload, "cluster"))
		},
	},

	{
		Name:        "nimbus_delete_cluster",
		Description: "Delete a Kubernetes cluster and all its node pools permanently",
		Args: combineArgs(formatArg(),
			stringID("cluster_id", "ID of the Kubernetes cluster to delete")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodDelete,
				Path:   "/kubernetes/clusters/" + url.PathEscape(args.String("cluster_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("Kubernetes cluster %s deleted.", args.String("cluster_id"))
		},
	},

	{
		Name:        "nimbus_upgrade_cluster",
		Description: "Upgrade a Kubernetes cluster's control plane to a newer version",
		Args: combineArgs(formatArg(),
			stringID("cluster_id", "ID of the Kubernetes cluster to upgrade"),
			map[string]Arg{
				"version": {
					Description: "Kubernetes version to upgrade to",
					Required:    true,
					Type:        "string",
				},
			}),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodPost,
				Path:   "/kubernetes/clusters/" + url.PathEscape(args.String("cluster_id")) + "/upgrade",
				Body:   map[string]any{"version": args.String("version")},
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("Upgrade of cluster %s to %s started.",
				args.String("cluster_id"), args.String("version"))
		},
	},

	{
		Name:        "nimbus_get_kubeconfig",
		Description: "Download the kubeconfig for a Kubernetes cluster",
		Args: combineArgs(formatArg(),
			stringID("cluster_id", "ID of the Kubernetes cluster")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/kubernetes/clusters/" + url.PathEscape(args.String("cluster_id")) + "/kubeconfig",
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			if kc, ok := payload["kubeconfig"].(string); ok && kc != "" {
				return kc
			}
			return absent
		},
	},

	{
		Name:        "nimbus_list_node_pools",
		Description: "List the node pools of a Kubernetes cluster",
		Args: combineArgs(paginationArgs(), formatArg(),
			stringID("cluster_id", "ID of the Kubernetes cluster")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/kubernetes/clusters/" + url.PathEscape(args.String("cluster_id")) + "/node-pools",
				Query:  listQuery(args),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "node_pools", args, "No node pools found.", renderNodePool)
		},
	},

	{
		Name:        "nimbus_create_node_pool",
		Description: "Add a node pool to a Kubernetes cluster",
		Args: combineArgs(formatArg(),
			stringID("cluster_id", "ID of the Kubernetes cluster"),
			map[string]Arg{
				"name": {
					Description: "Name of the new node pool",
					Required:    true,
					Type:        "string",
				},
				"plan": {
					Description: "Plan (size) of each node in the pool",
					Required:    true,
					Type:        "string",
				},
				"node_count": {
					Description: "Number of nodes in the pool (1-100)",
					Required:    true,
					Type:        "number",
					Min:         bound(1),
					Max:         bound(100),
				},
				"auto_scale": {
					Description: "Enable autoscaling for the pool",
					Type:        "boolean",
				},
				"min_nodes": {
					Description: "Minimum node count when autoscaling",
					Type:        "number",
					Min:         bound(1),
				},
				"max_nodes": {
					Description: "Maximum node count when autoscaling",
					Type:        "number",
					Min:         bound(1),
				},
			}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{
				"name":       args.String("name"),
				"plan":       args.String("plan"),
				"node_count": args.Float("node_count"),
			}
			args.CopyTo(body, "auto_scale", "min_nodes", "max_nodes")
			return &Request{
				Method: http.MethodPost,
				Path:   "/kubernetes/clusters/" + url.PathEscape(args.String("cluster_id")) + "/node-pools",
				Body:   body,
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Node pool created.\n\n" + renderNodePool(obj(payload, "node_pool"))
		},
	},

	{
		Name:        "nimbus_update_node_pool",
		Description: "Update a node pool's size or autoscaling settings",
		Args: combineArgs(formatArg(),
			stringID("cluster_id", "ID of the Kubernetes cluster"),
			stringID("pool_id", "ID of the node pool to update"),
			map[string]Arg{
				"node_count": {
					Description: "New number of nodes in the pool (1-100)",
					Type:        "number",
					Min:         bound(1),
					Max:         bound(100),
				},
				"auto_scale": {
					Description: "Enable or disable autoscaling",
					Type:        "boolean",
				},
				"min_nodes": {
					Description: "Minimum node count when autoscaling",
					Type:        "number",
					Min:         bound(1),
				},
				"max_nodes": {
					Description: "Maximum node count when autoscaling",
					Type:        "number",
					Min:         bound(1),
				},
			}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{}
			args.CopyTo(body, "node_count", "auto_scale", "min_nodes", "max_nodes")
			return &Request{
				Method: http.MethodPatch,
				Path: "/kubernetes/clusters/" + url.PathEscape(args.String("cluster_id")) +
					"/node-pools/" + url.PathEscape(args.String("pool_id")),
				Body: body,
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Node pool updated.\n\n" + renderNodePool(obj(payload, "node_pool"))
		},
	},

	{
		Name:        "nimbus_delete_node_pool",
		Description: "Remove a node pool from a Kubernetes cluster. Its nodes are drained first.",
		Args: combineArgs(formatArg(),
			stringID("cluster_id", "ID of the Kubernetes cluster"),
			stringID("pool_id", "ID of the node pool to delete")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodDelete,
				Path: "/kubernetes/clusters/" + url.PathEscape(args.String("cluster_id")) +
					"/node-pools/" + url.PathEscape(args.String("pool_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("Node pool %s deleted.", args.String("pool_id"))
		},
	},
}

func renderCluster(m map[string]any) string {
	return section(fmt.Sprintf("%s (%s)", str(m, "name"), str(m, "id")),
		"Status: "+str(m, "status"),
		"Region: "+str(m, "region"),
		"Version: "+str(m, "version"),
		"Endpoint: "+str(m, "endpoint"),
		"Node pools: "+numStr(m, "node_pool_count"),
		"Created: "+timeStr(m, "created_at"),
	)
}

func renderNodePool(m map[string]any) string {
	return section(fmt.Sprintf("%s (%s)", str(m, "name"), str(m, "id")),
		"Status: "+str(m, "status"),
		"Plan: "+str(m, "plan"),
		"Nodes: "+numStr(m, "node_count"),
		"Autoscaling: "+boolStr(m, "auto_scale"),
		"Created: "+timeStr(m, "created_at"),
	)
}
