package chrono

import (
	"time"

	"github.com/stackbound/commons/interval"
)

// DateInterval is a half-open day-granularity interval. It carries the full
// interval algebra: Contains, Overlaps, Intersect, Subtract, Normalize,
// Split and friends all apply.
type DateInterval = interval.Interval[Date]

// DateRange returns the half-open date interval [start, end).
func DateRange(start, end Date) DateInterval {
	return interval.Between(start, end)
}

// DateRangeInclusive returns the interval covering every day from start
// through end, both included. It maps the closed range [start..end] onto
// the half-open core as [start, end+1day).
func DateRangeInclusive(start, end Date) DateInterval {
	return interval.Between(start, end.Next())
}

// Day returns the single-day interval covering d.
func Day(d Date) DateInterval {
	return interval.Between(d, d.Next())
}

// DayInstants returns the instant interval spanning the civil day d in the
// given location: [midnight, next midnight).
func DayInstants(d Date, loc *time.Location) interval.Interval[time.Time] {
	return interval.Between(d.Time(loc), d.Next().Time(loc))
}

// ToInstants converts a date interval into the equivalent instant interval
// in the given location. Unbounded sides stay unbounded.
func ToInstants(iv DateInterval, loc *time.Location) interval.Interval[time.Time] {
	start, hasStart := iv.Start()
	end, hasEnd := iv.End()

	switch {
	case hasStart && hasEnd:
		return interval.Between(start.Time(loc), end.Time(loc))
	case hasStart:
		return interval.From(start.Time(loc))
	case hasEnd:
		return interval.Until(end.Time(loc))
	default:
		return interval.Unbounded[time.Time]()
	}
}

// ToDates converts an instant interval into the date interval covering
// every day that holds at least one instant of the input. The start is
// truncated down to its day; an end that is not exactly midnight is rounded
// up to the next day so the final partial day stays covered.
func ToDates(iv interval.Interval[time.Time]) DateInterval {
	start, hasStart := iv.Start()
	end, hasEnd := iv.End()

	var startDate, endDate Date
	if hasStart {
		startDate = DateOf(start)
	}
	if hasEnd {
		endDate = DateOf(end)
		if !end.Equal(StartOfDay(end)) {
			endDate = endDate.Next()
		}
	}

	switch {
	case hasStart && hasEnd:
		return interval.Between(startDate, endDate)
	case hasStart:
		return interval.From(startDate)
	case hasEnd:
		return interval.Until(endDate)
	default:
		return interval.Unbounded[Date]()
	}
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the exclusive end of t's day: midnight of the following
// day in t's location, so [StartOfDay(t), EndOfDay(t)) covers exactly t's
// day.
func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day+1, 0, 0, 0, 0, t.Location())
}

// Earliest returns the earlier of two instants.
func Earliest(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}

	return a
}

// Latest returns the later of two instants.
func Latest(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}

	return a
}
