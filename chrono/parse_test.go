package chrono

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    time.Time
		wantErr bool
	}{
		{
			name: "RFC 3339 with zone",
			give: "2024-03-05T13:30:00+02:00",
			want: time.Date(2024, time.March, 5, 13, 30, 0, 0, time.FixedZone("", 2*60*60)),
		},
		{
			name: "RFC 3339 with fractional seconds",
			give: "2024-03-05T13:30:00.25Z",
			want: time.Date(2024, time.March, 5, 13, 30, 0, 250000000, time.UTC),
		},
		{
			name: "datetime without zone is UTC",
			give: "2024-03-05T13:30:00",
			want: time.Date(2024, time.March, 5, 13, 30, 0, 0, time.UTC),
		},
		{
			name: "space-separated datetime",
			give: "2024-03-05 13:30:00",
			want: time.Date(2024, time.March, 5, 13, 30, 0, 0, time.UTC),
		},
		{
			name: "bare date is midnight UTC",
			give: "2024-03-05",
			want: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			give:    "yesterday",
			wantErr: true,
		},
		{
			name:    "empty",
			give:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTime(tt.give)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "want %s, got %s", tt.want, got)
		})
	}
}

func TestMustParseTime_PanicsOnInvalidInput(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		MustParseTime("not a time")
	})
}
