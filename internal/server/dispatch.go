package server

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/nimbus-cloud/nimbus-mcp/internal/format"
)

// validateArgs checks raw caller arguments against the tool's table and
// returns the normalized set with defaults applied. Any failure here
// means no network call is made.
func validateArgs(t Tool, raw map[string]any) (Args, error) {
	args := Args{}

	for name, value := range raw {
		spec, ok := t.Args[name]
		if !ok {
			return nil, fmt.Errorf("unknown argument %q", name)
		}

		if value == nil {
			if spec.Required {
				return nil, fmt.Errorf("argument %q is required", name)
			}
			continue
		}

		switch spec.Type {
		case "string":
			s, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("argument %q must be a string", name)
			}
			args[name] = s

		case "enum":
			s, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("argument %q must be a string", name)
			}
			if !slices.Contains(spec.Enum, s) {
				return nil, fmt.Errorf("argument %q must be one of %v", name, spec.Enum)
			}
			args[name] = s

		case "number":
			n, ok := value.(float64)
			if !ok {
				if i, isInt := value.(int); isInt {
					n, ok = float64(i), true
				}
			}
			if !ok {
				return nil, fmt.Errorf("argument %q must be a number", name)
			}
			if spec.Min != nil && n < *spec.Min {
				return nil, fmt.Errorf("argument %q must be at least %v", name, *spec.Min)
			}
			if spec.Max != nil && n > *spec.Max {
				return nil, fmt.Errorf("argument %q must be at most %v", name, *spec.Max)
			}
			args[name] = n

		case "boolean":
			b, ok := value.(bool)
			if !ok {
				return nil, fmt.Errorf("argument %q must be a boolean", name)
			}
			args[name] = b

		case "array":
			items, ok := value.([]any)
			if !ok {
				if strs, isStrs := value.([]string); isStrs {
					args[name] = strs
					continue
				}
				return nil, fmt.Errorf("argument %q must be an array of strings", name)
			}
			strs := make([]string, 0, len(items))
			for _, item := range items {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("argument %q must be an array of strings", name)
				}
				strs = append(strs, s)
			}
			args[name] = strs

		default:
			return nil, fmt.Errorf("unsupported argument type %q for argument %q", spec.Type, name)
		}
	}

	for name, spec := range t.Args {
		if _, ok := args[name]; ok {
			continue
		}
		if spec.Required {
			return nil, fmt.Errorf("missing required argument %q", name)
		}
		if spec.Default == "" {
			continue
		}
		switch spec.Type {
		case "number":
			n, err := strconv.ParseFloat(spec.Default, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid default for argument %q: %w", name, err)
			}
			args[name] = n
		case "boolean":
			b, err := strconv.ParseBool(spec.Default)
			if err != nil {
				return nil, fmt.Errorf("invalid default for argument %q: %w", name, err)
			}
			args[name] = b
		default:
			args[name] = spec.Default
		}
	}

	return args, nil
}

// invoke runs one tool invocation end to end: validate, build, one
// transport call, format. Every failure becomes exactly one user-facing
// message with isErr set; nothing is retried.
func (s *Server) invoke(ctx context.Context, t Tool, raw map[string]any) (string, bool) {
	args, err := validateArgs(t, raw)
	if err != nil {
		return "Error: Invalid argument: " + err.Error(), true
	}

	req, err := t.Build(args)
	if err != nil {
		return "Error: Invalid argument: " + err.Error(), true
	}

	payload, err := s.transport.Do(ctx, req.Method, req.Path, req.Query, req.Body)
	if err != nil {
		return errorMessage(err), true
	}

	if args.String("format") == "json" || t.Render == nil {
		return structured(t, payload, args), false
	}

	return t.Render(payload, args), false
}

// structured pretty-prints the provider payload untouched, adding
// computed pagination fields for list responses that report a total.
func structured(t Tool, payload map[string]any, args Args) string {
	out := payload

	if t.paginated() {
		if total, ok := metaTotal(payload); ok {
			limit, offset := args.Int("limit"), args.Int("offset")
			out = make(map[string]any, len(payload)+1)
			for k, v := range payload {
				out[k] = v
			}
			out["pagination"] = map[string]any{
				"page":        format.PageNumber(limit, offset),
				"total_pages": format.TotalPages(limit, total),
				"more":        format.HasMore(limit, offset, total),
			}
		}
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error: An unexpected error occurred: %v", err)
	}
	return string(encoded)
}
