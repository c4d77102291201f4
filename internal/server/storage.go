package server

import (
	"fmt"
	"net/http"
	"net/url"
)

// StorageCommands covers object storage buckets and their access keys.
var StorageCommands = []Tool{
	{
		Name:        "nimbus_list_buckets",
		Description: "List all object storage buckets in the account",
		Args:        combineArgs(paginationArgs(), formatArg()),
		Build: func(args Args) (*Request, error) {
			return &Request{Method: http.MethodGet, Path: "/storage/buckets", Query: listQuery(args)}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "buckets", args, "No buckets found.", renderBucket)
		},
	},

	{
		Name:        "nimbus_get_bucket",
		Description: "Get details of an object storage bucket",
		Args: combineArgs(formatArg(),
			stringID("bucket_id", "ID of the bucket")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/storage/buckets/" + url.PathEscape(args.String("bucket_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderBucket(obj(payload, "bucket"))
		},
	},

	{
		Name:        "nimbus_create_bucket",
		Description: "Create a new object storage bucket",
		Args: combineArgs(formatArg(), map[string]Arg{
			"name": {
				Description: "Globally unique name of the new bucket",
				Required:    true,
				Type:        "string",
			},
			"region": {
				Description: "Region to create the bucket in",
				Required:    true,
				Type:        "string",
			},
			"versioning": {
				Description: "Enable object versioning",
				Type:        "boolean",
			},
		}),
		Build: func(args Args) (*Request, error) {
			body := map[string]any{
				"name":   args.String("name"),
				"region": args.String("region"),
			}
			args.CopyTo(body, "versioning")
			return &Request{Method: http.MethodPost, Path: "/storage/buckets", Body: body}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Bucket created.\n\n" + renderBucket(obj(payload, "bucket"))
		},
	},

	{
		Name:        "nimbus_delete_bucket",
		Description: "Delete an object storage bucket. The bucket must be empty.",
		Args: combineArgs(formatArg(),
			stringID("bucket_id", "ID of the bucket to delete")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodDelete,
				Path:   "/storage/buckets/" + url.PathEscape(args.String("bucket_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("Bucket %s deleted.", args.String("bucket_id"))
		},
	},

	{
		Name:        "nimbus_list_bucket_keys",
		Description: "List the access keys of an object storage bucket",
		Args: combineArgs(paginationArgs(), formatArg(),
			stringID("bucket_id", "ID of the bucket")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/storage/buckets/" + url.PathEscape(args.String("bucket_id")) + "/keys",
				Query:  listQuery(args),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "keys", args, "No access keys found.", renderBucketKey)
		},
	},

	{
		Name:        "nimbus_create_bucket_key",
		Description: "Create a new access key for an object storage bucket. The secret is only returned once.",
		Args: combineArgs(formatArg(),
			stringID("bucket_id", "ID of the bucket"),
			map[string]Arg{
				"label": {
					Description: "Label identifying the new access key",
					Required:    true,
					Type:        "string",
				},
			}),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodPost,
				Path:   "/storage/buckets/" + url.PathEscape(args.String("bucket_id")) + "/keys",
				Body:   map[string]any{"label": args.String("label")},
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			key := obj(payload, "key")
			return section("Access key created",
				"Label: "+str(key, "label"),
				"Access key: "+str(key, "access_key"),
				"Secret key: "+str(key, "secret_key"),
				"Store the secret key now; it cannot be retrieved again.",
			)
		},
	},

	{
		Name:        "nimbus_revoke_bucket_key",
		Description: "Revoke an access key of an object storage bucket",
		Args: combineArgs(formatArg(),
			stringID("bucket_id", "ID of the bucket"),
			stringID("key_id", "ID of the access key to revoke")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodDelete,
				Path: "/storage/buckets/" + url.PathEscape(args.String("bucket_id")) +
					"/keys/" + url.PathEscape(args.String("key_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("Access key %s revoked.", args.String("key_id"))
		},
	},
}

func renderBucket(m map[string]any) string {
	return section(fmt.Sprintf("%s (%s)", str(m, "name"), str(m, "id")),
		"Region: "+str(m, "region"),
		"Endpoint: "+str(m, "endpoint"),
		"Objects: "+numStr(m, "object_count"),
		"Size: "+bytesStr(m, "size_bytes"),
		"Versioning: "+boolStr(m, "versioning"),
		"Created: "+timeStr(m, "created_at"),
	)
}

func renderBucketKey(m map[string]any) string {
	return section(fmt.Sprintf("%s (%s)", str(m, "label"), str(m, "id")),
		"Access key: "+str(m, "access_key"),
		"Created: "+timeStr(m, "created_at"),
	)
}
