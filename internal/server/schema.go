package server

import (
	"net/url"
	"strconv"
)

// Shared schema fragments composed into tool argument tables. Fragments
// are returned fresh on every call so tables can be merged without
// aliasing.

func bound(v float64) *float64 {
	return &v
}

// combineArgs merges argument fragments into one table. Later fragments
// win on name collisions, which no table should rely on.
func combineArgs(groups ...map[string]Arg) map[string]Arg {
	merged := make(map[string]Arg)
	for _, group := range groups {
		for name, arg := range group {
			merged[name] = arg
		}
	}
	return merged
}

// paginationArgs is the fragment shared by every list tool.
func paginationArgs() map[string]Arg {
	return map[string]Arg{
		"limit": {
			Description: "Number of items to return per page (1-100)",
			Type:        "number",
			Default:     "50",
			Min:         bound(1),
			Max:         bound(100),
		},
		"offset": {
			Description: "Number of items to skip before the first returned item",
			Type:        "number",
			Default:     "0",
			Min:         bound(0),
		},
	}
}

// formatArg is the output-mode selector shared by every tool.
func formatArg() map[string]Arg {
	return map[string]Arg{
		"format": {
			Description: "Output format: human-readable markdown or raw JSON",
			Type:        "enum",
			Enum:        []string{"markdown", "json"},
			Default:     "markdown",
		},
	}
}

// stringID is the required string-identifier fragment, parameterized by
// its description only.
func stringID(name, description string) map[string]Arg {
	return map[string]Arg{
		name: {
			Description: description,
			Required:    true,
			Type:        "string",
		},
	}
}

// listQuery builds the query string every list tool sends, from the
// defaulted pagination arguments.
func listQuery(args Args) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(args.Int("limit")))
	q.Set("offset", strconv.Itoa(args.Int("offset")))
	return q
}
