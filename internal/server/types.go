package server

import "net/url"

// Tool declares one Nimbus operation: the schema its arguments are
// validated against, the HTTP request built from them, and the renderer
// for the markdown output mode. Concrete tools are declarative instances
// of this one shape; the dispatch loop owns all control flow.
type Tool struct {
	Name        string
	Description string
	Args        map[string]Arg

	// Build assembles the API request from validated arguments.
	Build func(args Args) (*Request, error)

	// Render produces the markdown view of a successful response. Tools
	// without a renderer fall back to structured JSON output.
	Render func(payload map[string]any, args Args) string
}

// Arg constrains one tool argument.
type Arg struct {
	Description string
	Required    bool
	Type        string // "string", "number", "boolean", "enum", "array"
	Default     string
	Enum        []string
	Min         *float64
	Max         *float64
}

// Request is one assembled API call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   map[string]any
}

// paginated reports whether the tool carries the pagination fragment.
func (t Tool) paginated() bool {
	_, ok := t.Args["limit"]
	return ok
}

// Args holds arguments after validation and defaulting: strings for
// string/enum kinds, float64 for numbers, bool for booleans, []string
// for arrays. Absent optional arguments without defaults are simply not
// present.
type Args map[string]any

func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

func (a Args) String(name string) string {
	v, _ := a[name].(string)
	return v
}

func (a Args) Float(name string) float64 {
	v, _ := a[name].(float64)
	return v
}

func (a Args) Int(name string) int {
	return int(a.Float(name))
}

func (a Args) Bool(name string) bool {
	v, _ := a[name].(bool)
	return v
}

func (a Args) Strings(name string) []string {
	v, _ := a[name].([]string)
	return v
}

// CopyTo copies the named arguments into body, skipping any the caller
// did not supply. Omitted optional fields must never reach the provider,
// so its own defaults apply.
func (a Args) CopyTo(body map[string]any, names ...string) {
	for _, name := range names {
		if v, ok := a[name]; ok {
			body[name] = v
		}
	}
}
