package chrono

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the wire format for civil dates.
const DateLayout = "2006-01-02"

// Date is a zone-free calendar date. Its ordering and arithmetic are
// independent of any location, which makes it the boundary type of choice
// for day-granularity intervals.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()

	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a date in the DateLayout form "2006-01-02".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("failed to parse date %q: %w", s, err)
	}

	return DateOf(t), nil
}

// MustParseDate is ParseDate that panics on invalid input. Intended for
// fixtures and package-level values.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}

	return d
}

// Today returns the current date as seen by the given clock, in the
// clock's location. A nil clock uses time.Now.
func Today(clock func() time.Time) Date {
	if clock == nil {
		clock = time.Now
	}

	return DateOf(clock())
}

// Time returns the instant at midnight of the date in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// At returns the instant at the given wall-clock time within the date, in
// the given location.
func (d Date) At(hour, min, sec, nsec int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, min, sec, nsec, loc)
}

// IsValid reports whether the date denotes a real calendar day, e.g.
// February 30th is not valid.
func (d Date) IsValid() bool {
	return DateOf(d.Time(time.UTC)) == d
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// AddDays returns the date n days after d (before, for negative n).
func (d Date) AddDays(n int) Date {
	// time.Date normalizes out-of-range days.
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// AddMonths returns the date n months after d, normalized the way time.Date
// normalizes (Jan 31 + 1 month = Mar 2 or 3).
func (d Date) AddMonths(n int) Date {
	return DateOf(time.Date(d.Year, d.Month+time.Month(n), d.Day, 0, 0, 0, 0, time.UTC))
}

// Next returns the following day.
func (d Date) Next() Date {
	return d.AddDays(1)
}

// Prev returns the preceding day.
func (d Date) Prev() Date {
	return d.AddDays(-1)
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// DaysUntil returns the number of days from d to o; negative when o is
// before d.
func (d Date) DaysUntil(o Date) int {
	// Counting via Unix seconds keeps distant spans exact, where a
	// time.Duration difference would saturate.
	return int((o.Time(time.UTC).Unix() - d.Time(time.UTC).Unix()) / 86400)
}

// Compare orders two dates chronologically, returning -1, 0 or 1.
func (d Date) Compare(o Date) int {
	if d.Year != o.Year {
		return cmp(d.Year, o.Year)
	}
	if d.Month != o.Month {
		return cmp(int(d.Month), int(o.Month))
	}

	return cmp(d.Day, o.Day)
}

// Equal reports whether both dates denote the same day.
func (d Date) Equal(o Date) bool {
	return d == o
}

// Before reports whether d is before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After reports whether d is after o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// String renders the date in DateLayout form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalText encodes the date in DateLayout form. Drives JSON encoding as
// well.
//
// Implements the encoding.TextMarshaler interface.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a date in DateLayout form.
//
// Implements the encoding.TextUnmarshaler interface.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}

// MarshalYAML encodes the date in DateLayout form. yaml.v3 does not honor
// encoding.TextMarshaler, so the YAML codecs are explicit.
//
// Implements the yaml.Marshaler interface.
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML decodes a date in DateLayout form.
//
// Implements the yaml.Unmarshaler interface.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	return d.UnmarshalText([]byte(s))
}

func cmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
