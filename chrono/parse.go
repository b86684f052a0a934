package chrono

import (
	"fmt"
	"time"
)

// timeLayouts are the accepted ParseTime formats, tried in order. Layouts
// without a zone are interpreted as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DateLayout,
}

// ParseTime parses an instant from any of the accepted layouts: RFC 3339
// with or without fractional seconds, a bare datetime with "T" or space
// separator, or a bare date (midnight UTC).
func ParseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("failed to parse time %q: accepted layouts are %v", s, timeLayouts)
}

// MustParseTime is ParseTime that panics on invalid input. Intended for
// fixtures and package-level values.
func MustParseTime(s string) time.Time {
	t, err := ParseTime(s)
	if err != nil {
		panic(err)
	}

	return t
}
