package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
		ok   bool
	}{
		{"2020-01-01", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"2019-12-31 23:59:59", time.Date(2019, 12, 31, 23, 59, 59, 0, time.UTC), true},
		{"2021-06-01T10:00:00Z", time.Date(2021, 6, 1, 10, 0, 0, 0, time.UTC), true},
		{"2021-06-01T12:00:00+02:00", time.Date(2021, 6, 1, 10, 0, 0, 0, time.UTC), true},
		{"2021-06-01 10:00:00.123", time.Date(2021, 6, 1, 10, 0, 0, 123000000, time.UTC), true},
		{"  2021/06/01 ", time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), true},
		{"not a date", time.Time{}, false},
		{"", time.Time{}, false},
		{"2021-13-45", time.Time{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseTimestamp(tt.raw)
		require.Equal(t, tt.ok, ok, "raw %q", tt.raw)
		if tt.ok {
			require.True(t, tt.want.Equal(got), "raw %q: expected %s, got %s", tt.raw, tt.want, got)
		}
	}
}

func TestFormatTimestampRoundTrip(t *testing.T) {
	in := time.Date(2022, 3, 4, 5, 6, 7, 8, time.FixedZone("X", 3600))
	got, ok := ParseTimestamp(FormatTimestamp(in))
	require.True(t, ok)
	require.True(t, in.Equal(got))
}

func TestParseTimestampBeforeCommonEra(t *testing.T) {
	ides := time.Date(-43, 3, 15, 0, 0, 0, 0, time.UTC)

	got, ok := ParseTimestamp(FormatTimestamp(ides))
	require.True(t, ok)
	require.True(t, ides.Equal(got), "got %s", got)

	got, ok = ParseTimestamp("0044-03-15 00:00:00+00 BC")
	require.True(t, ok)
	require.True(t, ides.Equal(got), "got %s", got)

	got, ok = ParseTimestamp("0001-01-01 BC")
	require.True(t, ok)
	require.Equal(t, 0, got.Year())

	_, ok = ParseTimestamp("-not a date")
	require.False(t, ok)
	_, ok = ParseTimestamp("0000-01-01 BC")
	require.False(t, ok)
}
