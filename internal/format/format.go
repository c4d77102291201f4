// Package format implements the pure value formatters used by rendered
// tool output. Every function is deterministic and performs no I/O.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// Bytes renders a byte count in the largest unit keeping the scaled value
// at or above one, with at most two decimal digits. The unit is capped at
// TB. Zero renders literally as "0 B".
func Bytes(n float64) string {
	if n <= 0 {
		return "0 B"
	}

	unit := 0
	for n >= 1024 && unit < len(byteUnits)-1 {
		n /= 1024
		unit++
	}

	rounded := math.Round(n*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + byteUnits[unit]
}

// Currency renders an amount with the locale symbol for a 3-letter ISO
// currency code, always carrying the currency's standard decimal digits.
// Unknown codes fall back to "<amount> <CODE>".
func Currency(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%.2f %s", amount, strings.ToUpper(code))
	}

	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprint(currency.NarrowSymbol(unit.Amount(amount)))
}

// Timestamp renders an ISO 8601 timestamp as "Jan 2, 2006 15:04 UTC".
// Empty input yields the absent placeholder; unparsable input is passed
// through untouched rather than dropped.
func Timestamp(s string) string {
	if s == "" {
		return "N/A"
	}

	t, err := parseTime(s)
	if err != nil {
		return s
	}

	return t.UTC().Format("Jan 2, 2006 15:04 UTC")
}

// RelativeTime renders an ISO 8601 timestamp as a humanized distance
// from now ("3 days ago"). Unparsable input yields "".
func RelativeTime(s string) string {
	t, err := parseTime(s)
	if err != nil {
		return ""
	}
	return humanize.Time(t)
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// PageNumber is the 1-based page a (limit, offset) window addresses.
func PageNumber(limit, offset int) int {
	return offset/limit + 1
}

// TotalPages is the number of pages a collection of the given total
// occupies at the given limit.
func TotalPages(limit, total int) int {
	return (total + limit - 1) / limit
}

// HasMore reports whether results exist beyond the current window.
func HasMore(limit, offset, total int) bool {
	return offset+limit < total
}

// PageSummary renders the pagination header for a list view, including a
// pointer to the next page when more results exist.
func PageSummary(limit, offset, total int) string {
	first := offset + 1
	last := offset + limit
	if last > total {
		last = total
	}
	if first > last {
		first = last
	}

	summary := fmt.Sprintf("Showing %d-%d of %d items (Page %d/%d)",
		first, last, total, PageNumber(limit, offset), TotalPages(limit, total))

	if HasMore(limit, offset, total) {
		summary += fmt.Sprintf("\nMore results available. Use offset=%d for the next page.", offset+limit)
	}

	return summary
}
