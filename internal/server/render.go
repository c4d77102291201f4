package server

import (
	"strconv"
	"strings"

	"github.com/nimbus-cloud/nimbus-mcp/internal/format"
)

// Absent-safe payload accessors. Provider payloads are decoded JSON with
// no schema guarantee; a renderer must survive any field being missing
// or of an unexpected type.

const absent = "N/A"

func str(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return absent
}

func numStr(m map[string]any, key string) string {
	if v, ok := m[key].(float64); ok {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return absent
}

func boolStr(m map[string]any, key string) string {
	if v, ok := m[key].(bool); ok {
		return strconv.FormatBool(v)
	}
	return absent
}

// bytesStr renders a numeric byte-count field, tolerating absence.
func bytesStr(m map[string]any, key string) string {
	if v, ok := m[key].(float64); ok {
		return format.Bytes(v)
	}
	return absent
}

// moneyStr renders a numeric amount field in the currency named by the
// payload's currencyKey field.
func moneyStr(m map[string]any, key, currencyKey string) string {
	amount, ok := m[key].(float64)
	if !ok {
		return absent
	}
	code, ok := m[currencyKey].(string)
	if !ok || code == "" {
		return strconv.FormatFloat(amount, 'f', 2, 64)
	}
	return format.Currency(amount, code)
}

// timeStr renders an ISO timestamp field.
func timeStr(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return format.Timestamp(v)
	}
	return absent
}

func obj(m map[string]any, key string) map[string]any {
	v, _ := m[key].(map[string]any)
	return v
}

// strList renders an array-of-strings field as a comma-separated line.
func strList(m map[string]any, key string) string {
	items, ok := m[key].([]any)
	if !ok || len(items) == 0 {
		return "None"
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, ", ")
}

// collection extracts the item objects under a plural payload key.
func collection(payload map[string]any, key string) []map[string]any {
	raw, ok := payload[key].([]any)
	if !ok {
		return nil
	}
	items := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}

// metaTotal reads the provider-reported collection total.
func metaTotal(payload map[string]any) (int, bool) {
	meta, ok := payload["meta"].(map[string]any)
	if !ok {
		return 0, false
	}
	total, ok := meta["total"].(float64)
	if !ok {
		return 0, false
	}
	return int(total), true
}

// renderList produces the standard list view: pagination summary, then
// one section per item separated by blank lines. An empty page renders
// the fixed empty sentence alone.
func renderList(payload map[string]any, key string, args Args, empty string, item func(map[string]any) string) string {
	items := collection(payload, key)
	if len(items) == 0 {
		return empty
	}

	total := len(items)
	if t, ok := metaTotal(payload); ok {
		total = t
	}

	sections := make([]string, 0, len(items)+1)
	sections = append(sections, format.PageSummary(args.Int("limit"), args.Int("offset"), total))
	for _, m := range items {
		sections = append(sections, item(m))
	}

	return strings.Join(sections, "\n\n")
}

// section assembles one "## heading" block followed by "Label: value"
// lines, the shape every per-item renderer shares.
func section(heading string, lines ...string) string {
	return "## " + heading + "\n" + strings.Join(lines, "\n")
}
