package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytes(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0 B"},
		{-10, "0 B"},
		{1, "1 B"},
		{512, "512 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1234567, "1.18 MB"},
		{1073741824, "1 GB"},
		{1649267441664, "1.5 TB"},
		// unit never exceeds TB
		{1024 * 1024 * 1024 * 1024 * 1024, "1024 TB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Bytes(tt.in), "Bytes(%v)", tt.in)
	}
}

func TestCurrency(t *testing.T) {
	usd := Currency(10, "USD")
	assert.Contains(t, usd, "10.00")
	assert.Contains(t, usd, "$")

	eur := Currency(5.5, "EUR")
	assert.Contains(t, eur, "5.50")

	// unknown codes fall back rather than fail
	assert.Equal(t, "12.00 XXQ", Currency(12, "xxq"))
}

func TestTimestamp(t *testing.T) {
	assert.Equal(t, "Jan 15, 2024 10:30 UTC", Timestamp("2024-01-15T10:30:00Z"))
	assert.Equal(t, "Jan 15, 2024 09:30 UTC", Timestamp("2024-01-15T10:30:00+01:00"))
	assert.Equal(t, "N/A", Timestamp(""))
	assert.Equal(t, "yesterday-ish", Timestamp("yesterday-ish"))
}

func TestPaginationMath(t *testing.T) {
	tests := []struct {
		limit, offset, total int
		page, pages          int
		more                 bool
	}{
		{50, 0, 2, 1, 1, false},
		{50, 0, 0, 1, 0, false},
		{10, 0, 100, 1, 10, true},
		{10, 90, 100, 10, 10, false},
		{10, 95, 100, 10, 10, false},
		{1, 0, 1, 1, 1, false},
		{1, 1, 3, 2, 3, true},
		{100, 0, 101, 1, 2, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.page, PageNumber(tt.limit, tt.offset), "page limit=%d offset=%d", tt.limit, tt.offset)
		assert.Equal(t, tt.pages, TotalPages(tt.limit, tt.total), "pages limit=%d total=%d", tt.limit, tt.total)
		assert.Equal(t, tt.more, HasMore(tt.limit, tt.offset, tt.total), "more limit=%d offset=%d total=%d", tt.limit, tt.offset, tt.total)
	}
}

func TestPageSummary(t *testing.T) {
	assert.Equal(t, "Showing 1-2 of 2 items (Page 1/1)", PageSummary(50, 0, 2))

	withMore := PageSummary(10, 0, 25)
	assert.Contains(t, withMore, "Showing 1-10 of 25 items (Page 1/3)")
	assert.Contains(t, withMore, "Use offset=10 for the next page.")

	// window past the end still renders sanely
	assert.Equal(t, "Showing 2-2 of 2 items (Page 2/1)", PageSummary(2, 2, 2))
}
