package server

import (
	"fmt"
	"net/http"
	"net/url"
)

// ImageCommands covers OS images, custom images and snapshots.
var ImageCommands = []Tool{
	{
		Name:        "nimbus_list_images",
		Description: "List available images, optionally filtered by type",
		Args: combineArgs(paginationArgs(), formatArg(), map[string]Arg{
			"type": {
				Description: "Only return images of this type",
				Type:        "enum",
				Enum:        []string{"os", "custom", "snapshot"},
			},
		}),
		Build: func(args Args) (*Request, error) {
			q := listQuery(args)
			if args.Has("type") {
				q.Set("type", args.String("type"))
			}
			return &Request{Method: http.MethodGet, Path: "/images", Query: q}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "images", args, "No images found.", renderImage)
		},
	},

	{
		Name:        "nimbus_get_image",
		Description: "Get details of an image",
		Args: combineArgs(formatArg(),
			stringID("image_id", "ID of the image")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/images/" + url.PathEscape(args.String("image_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderImage(obj(payload, "image"))
		},
	},

	{
		Name:        "nimbus_create_image",
		Description: "Import a custom image from a URL",
		Args: combineArgs(formatArg(), map[string]Arg{
			"name": {
				Description: "Name of the new image",
				Required:    true,
				Type:        "string",
			},
			"url": {
				Description: "HTTPS URL of the raw or qcow2 image to import",
				Required:    true,
				Type:        "string",
			},
		}),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodPost,
				Path:   "/images",
				Body: map[string]any{
					"name": args.String("name"),
					"url":  args.String("url"),
				},
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Image import started.\n\n" + renderImage(obj(payload, "image"))
		},
	},

	{
		Name:        "nimbus_update_image",
		Description: "Rename a custom image or snapshot",
		Args: combineArgs(formatArg(),
			stringID("image_id", "ID of the image to update"),
			map[string]Arg{
				"name": {
					Description: "New name for the image",
					Required:    true,
					Type:        "string",
				},
			}),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodPatch,
				Path:   "/images/" + url.PathEscape(args.String("image_id")),
				Body:   map[string]any{"name": args.String("name")},
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return "Image updated.\n\n" + renderImage(obj(payload, "image"))
		},
	},

	{
		Name:        "nimbus_delete_image",
		Description: "Delete a custom image or snapshot. OS images cannot be deleted.",
		Args: combineArgs(formatArg(),
			stringID("image_id", "ID of the image to delete")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodDelete,
				Path:   "/images/" + url.PathEscape(args.String("image_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return fmt.Sprintf("Image %s deleted.", args.String("image_id"))
		},
	},
}

func renderImage(m map[string]any) string {
	return section(fmt.Sprintf("%s (%s)", str(m, "name"), str(m, "id")),
		"Type: "+str(m, "type"),
		"Status: "+str(m, "status"),
		"Size: "+bytesStr(m, "size_bytes"),
		"Created: "+timeStr(m, "created_at"),
	)
}
