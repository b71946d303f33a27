package normalize

import (
	"fmt"
	"strings"
	"time"
)

// DateOnly is the canonical date encoding used everywhere after the
// ingestion boundary.
const DateOnly = "2006-01-02"

// ConvertSalesDate converts a 3-part dash-separated date known to be
// encoded YYYY-DD-MM into canonical YYYY-MM-DD by swapping the second
// and third segments. Inputs that are not exactly three parts pass
// through unchanged. This is a positional fix for the sales sheet's
// non-standard encoding, not a parser: it cannot detect which segment
// is the day, so it must only be applied where the source format is
// known to match.
func ConvertSalesDate(raw string) string {
	parts := strings.Split(raw, "-")
	if len(parts) != 3 {
		return raw
	}
	return fmt.Sprintf("%s-%s-%s", parts[0], parts[2], parts[1])
}

// AmbiguousSalesDate reports whether a raw YYYY-DD-MM sales date would
// still be a plausible date with day and month swapped, i.e. both
// middle segments are <= 12. Such rows are flagged at the boundary
// instead of being silently guessed per call site.
func AmbiguousSalesDate(raw string) bool {
	parts := strings.Split(raw, "-")
	if len(parts) != 3 {
		return false
	}
	day := atoiOrZero(parts[1])
	month := atoiOrZero(parts[2])
	return day >= 1 && day <= 12 && month >= 1 && month <= 12 && day != month
}

// ParseCanonicalDate parses a canonical YYYY-MM-DD string in the given
// location. A nil location means time.Local. The zero time is returned
// for malformed input.
func ParseCanonicalDate(value string, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateOnly, value, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SameLocalDay compares a canonical date string against a reference
// time on local calendar components, avoiding the UTC off-by-one-day
// shift that toISOString-style comparisons suffer from.
func SameLocalDay(value string, ref time.Time) bool {
	t := ParseCanonicalDate(value, ref.Location())
	if t.IsZero() {
		return false
	}
	y1, m1, d1 := t.Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// MonthOfDate extracts the zero-padded month ("01".."12") from a
// canonical date string, or "" when the input is malformed.
func MonthOfDate(value string) string {
	t := ParseCanonicalDate(value, time.UTC)
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d", int(t.Month()))
}

func atoiOrZero(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
