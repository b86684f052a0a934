package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// day returns an instant n days into an arbitrary fixed month, giving the
// tests compact, readable boundaries.
func day(n int) time.Time {
	return time.Date(2024, time.March, n, 0, 0, 0, 0, time.UTC)
}

func TestNew(t *testing.T) {
	t.Parallel()

	start, end := day(1), day(5)

	tests := []struct {
		name      string
		giveStart *time.Time
		giveEnd   *time.Time
		wantErr   error
	}{
		{
			name:      "bounded",
			giveStart: &start,
			giveEnd:   &end,
		},
		{
			name:    "unbounded below",
			giveEnd: &end,
		},
		{
			name:      "unbounded above",
			giveStart: &start,
		},
		{
			name: "unbounded both sides",
		},
		{
			name:      "empty",
			giveStart: &start,
			giveEnd:   &start,
		},
		{
			name:      "inverted",
			giveStart: &end,
			giveEnd:   &start,
			wantErr:   ErrInvertedBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			iv, err := New(tt.giveStart, tt.giveEnd)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			gotStart, ok := iv.Start()
			assert.Equal(t, tt.giveStart != nil, ok)
			if tt.giveStart != nil {
				assert.True(t, gotStart.Equal(*tt.giveStart))
			}

			gotEnd, ok := iv.End()
			assert.Equal(t, tt.giveEnd != nil, ok)
			if tt.giveEnd != nil {
				assert.True(t, gotEnd.Equal(*tt.giveEnd))
			}
		})
	}
}

func TestBetween_PanicsOnInvertedBounds(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		Between(day(5), day(1))
	})
}

func TestInterval_Contains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give Interval[time.Time]
		at   time.Time
		want bool
	}{
		{
			name: "inside",
			give: Between(day(1), day(5)),
			at:   day(3),
			want: true,
		},
		{
			name: "start is inclusive",
			give: Between(day(1), day(5)),
			at:   day(1),
			want: true,
		},
		{
			name: "end is exclusive",
			give: Between(day(1), day(5)),
			at:   day(5),
			want: false,
		},
		{
			name: "before start",
			give: Between(day(2), day(5)),
			at:   day(1),
			want: false,
		},
		{
			name: "unbounded below",
			give: Until(day(5)),
			at:   day(1),
			want: true,
		},
		{
			name: "unbounded above",
			give: From(day(5)),
			at:   day(20),
			want: true,
		},
		{
			name: "unbounded both sides",
			give: Unbounded[time.Time](),
			at:   day(12),
			want: true,
		},
		{
			name: "empty contains nothing",
			give: Between(day(3), day(3)),
			at:   day(3),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.give.Contains(tt.at))
		})
	}
}

func TestInterval_Overlaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		give  Interval[time.Time]
		other Interval[time.Time]
		want  bool
	}{
		{
			name:  "partial overlap",
			give:  Between(day(1), day(5)),
			other: Between(day(3), day(8)),
			want:  true,
		},
		{
			name:  "nested",
			give:  Between(day(1), day(10)),
			other: Between(day(3), day(5)),
			want:  true,
		},
		{
			name:  "disjoint",
			give:  Between(day(1), day(3)),
			other: Between(day(5), day(8)),
			want:  false,
		},
		{
			name:  "touching boundaries do not overlap",
			give:  Between(day(1), day(5)),
			other: Between(day(5), day(8)),
			want:  false,
		},
		{
			name:  "open end against open start",
			give:  From(day(5)),
			other: Until(day(6)),
			want:  true,
		},
		{
			name:  "open end against later start",
			give:  Until(day(5)),
			other: From(day(5)),
			want:  false,
		},
		{
			name:  "unbounded overlaps everything non-empty",
			give:  Unbounded[time.Time](),
			other: Between(day(3), day(4)),
			want:  true,
		},
		{
			name:  "empty interval overlaps nothing",
			give:  Between(day(3), day(3)),
			other: Unbounded[time.Time](),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.give.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(tt.give), "overlap must be symmetric")
		})
	}
}

func TestInterval_Intersect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		give   Interval[time.Time]
		other  Interval[time.Time]
		want   Interval[time.Time]
		wantOK bool
	}{
		{
			name:   "partial overlap",
			give:   Between(day(1), day(5)),
			other:  Between(day(3), day(8)),
			want:   Between(day(3), day(5)),
			wantOK: true,
		},
		{
			name:   "nested keeps inner",
			give:   Between(day(1), day(10)),
			other:  Between(day(3), day(5)),
			want:   Between(day(3), day(5)),
			wantOK: true,
		},
		{
			name:   "open ends narrow to the bounded part",
			give:   From(day(3)),
			other:  Until(day(8)),
			want:   Between(day(3), day(8)),
			wantOK: true,
		},
		{
			name:   "both open on the same side",
			give:   From(day(3)),
			other:  From(day(5)),
			want:   From(day(5)),
			wantOK: true,
		},
		{
			name:  "disjoint",
			give:  Between(day(1), day(3)),
			other: Between(day(5), day(8)),
		},
		{
			name:  "touching",
			give:  Between(day(1), day(5)),
			other: Between(day(5), day(8)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tt.give.Intersect(tt.other)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			}
		})
	}
}

func TestInterval_Encloses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		give  Interval[time.Time]
		other Interval[time.Time]
		want  bool
	}{
		{
			name:  "strictly inside",
			give:  Between(day(1), day(10)),
			other: Between(day(3), day(5)),
			want:  true,
		},
		{
			name:  "same bounds",
			give:  Between(day(1), day(10)),
			other: Between(day(1), day(10)),
			want:  true,
		},
		{
			name:  "sticks out on the right",
			give:  Between(day(1), day(10)),
			other: Between(day(5), day(12)),
			want:  false,
		},
		{
			name:  "unbounded encloses bounded",
			give:  Unbounded[time.Time](),
			other: Between(day(1), day(10)),
			want:  true,
		},
		{
			name:  "bounded does not enclose open side",
			give:  Between(day(1), day(10)),
			other: From(day(5)),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.give.Encloses(tt.other))
		})
	}
}

func TestInterval_Abuts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		give  Interval[time.Time]
		other Interval[time.Time]
		want  bool
	}{
		{
			name:  "touching at a boundary",
			give:  Between(day(1), day(5)),
			other: Between(day(5), day(8)),
			want:  true,
		},
		{
			name:  "touching the other way around",
			give:  Between(day(5), day(8)),
			other: Between(day(1), day(5)),
			want:  true,
		},
		{
			name:  "overlapping",
			give:  Between(day(1), day(5)),
			other: Between(day(4), day(8)),
			want:  false,
		},
		{
			name:  "gap between",
			give:  Between(day(1), day(3)),
			other: Between(day(5), day(8)),
			want:  false,
		},
		{
			name:  "empty never abuts",
			give:  Between(day(5), day(5)),
			other: Between(day(5), day(8)),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.give.Abuts(tt.other))
		})
	}
}

func TestInterval_Subtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		give  Interval[time.Time]
		other Interval[time.Time]
		want  []Interval[time.Time]
	}{
		{
			name:  "no overlap keeps receiver",
			give:  Between(day(1), day(5)),
			other: Between(day(8), day(10)),
			want:  []Interval[time.Time]{Between(day(1), day(5))},
		},
		{
			name:  "hole in the middle",
			give:  Between(day(1), day(10)),
			other: Between(day(4), day(6)),
			want: []Interval[time.Time]{
				Between(day(1), day(4)),
				Between(day(6), day(10)),
			},
		},
		{
			name:  "trim left",
			give:  Between(day(1), day(10)),
			other: Between(day(1), day(4)),
			want:  []Interval[time.Time]{Between(day(4), day(10))},
		},
		{
			name:  "trim right",
			give:  Between(day(1), day(10)),
			other: From(day(6)),
			want:  []Interval[time.Time]{Between(day(1), day(6))},
		},
		{
			name:  "subtrahend covers everything",
			give:  Between(day(1), day(10)),
			other: Unbounded[time.Time](),
			want:  []Interval[time.Time]{},
		},
		{
			name:  "hole in an unbounded interval",
			give:  Unbounded[time.Time](),
			other: Between(day(4), day(6)),
			want: []Interval[time.Time]{
				Until(day(4)),
				From(day(6)),
			},
		},
		{
			name:  "empty subtrahend is identity",
			give:  Between(day(1), day(10)),
			other: Between(day(4), day(4)),
			want:  []Interval[time.Time]{Between(day(1), day(10))},
		},
		{
			name:  "empty receiver yields nothing",
			give:  Between(day(4), day(4)),
			other: Between(day(1), day(10)),
			want:  []Interval[time.Time]{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.give.Subtract(tt.other)
			require.Len(t, got, len(tt.want))
			for n := range tt.want {
				assert.True(t, tt.want[n].Equal(got[n]), "piece %d: want %s, got %s", n, tt.want[n], got[n])
			}
		})
	}
}

func TestInterval_Span(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		give  Interval[time.Time]
		other Interval[time.Time]
		want  Interval[time.Time]
	}{
		{
			name:  "disjoint includes the gap",
			give:  Between(day(1), day(3)),
			other: Between(day(6), day(8)),
			want:  Between(day(1), day(8)),
		},
		{
			name:  "open side wins",
			give:  Between(day(1), day(3)),
			other: From(day(2)),
			want:  From(day(1)),
		},
		{
			name:  "empty input does not extend",
			give:  Between(day(1), day(3)),
			other: Between(day(9), day(9)),
			want:  Between(day(1), day(3)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.give.Span(tt.other)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestInterval_Equal(t *testing.T) {
	t.Parallel()

	assert.True(t, Between(day(1), day(5)).Equal(Between(day(1), day(5))))
	assert.False(t, Between(day(1), day(5)).Equal(Between(day(1), day(6))))
	assert.False(t, From(day(1)).Equal(Between(day(1), day(5))))
	assert.True(t, Unbounded[time.Time]().Equal(Unbounded[time.Time]()))
}

func TestInterval_IsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, Between(day(3), day(3)).IsEmpty())
	assert.False(t, Between(day(3), day(4)).IsEmpty())
	assert.False(t, From(day(3)).IsEmpty())
	assert.False(t, Unbounded[time.Time]().IsEmpty())
}

func TestInterval_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"[2024-03-01 00:00:00 +0000 UTC, 2024-03-05 00:00:00 +0000 UTC)",
		Between(day(1), day(5)).String(),
	)
	assert.Equal(t, "[-inf, +inf)", Unbounded[time.Time]().String())
	assert.Equal(t, "[2024-03-01 00:00:00 +0000 UTC, +inf)", From(day(1)).String())
}
