package importer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		raw   string
		want  string
		valid bool
	}{
		{"2024-03-15", "2024-03-15", true},
		{"3/15/2024", "2024-03-15", true},
		{"03/15/2024", "2024-03-15", true},
		{"3-15-2024", "2024-03-15", true},
		{"12-01-2024", "2024-12-01", true},
		{" 1/2/2024 ", "2024-01-02", true},
		{"15/03/2024", "", false}, // day-month-year is not accepted
		{"15/03/24", "", false},
		{"2024/03/15", "", false},
		{"2024-3-15", "", false},
		{"March 15 2024", "", false},
		{"", "", false},
		{"2024-02-30", "", false}, // syntactically fine, not a real date
		{"2/30/2024", "", false},
		{"2024-02-29", "2024-02-29", true}, // leap day
		{"2/29/2023", "", false},
		{"13/13/2024", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeDate(tc.raw)
		require.Equal(t, tc.valid, ok, "input %q", tc.raw)
		if tc.valid {
			require.Equal(t, tc.want, got, "input %q", tc.raw)
		}
	}
}

func TestNormalizeDateIdempotent(t *testing.T) {
	canonical, ok := NormalizeDate("3/15/2024")
	require.True(t, ok)

	again, ok := NormalizeDate(canonical)
	require.True(t, ok)
	require.Equal(t, canonical, again)
}

func TestNormalizeTime(t *testing.T) {
	cases := []struct {
		raw   string
		want  string
		valid bool
	}{
		{"09:00", "09:00", true},
		{"9:00", "09:00", true},
		{"17:30", "17:30", true},
		{"17:30:45", "17:30", true}, // seconds truncated
		{"8:00 AM", "08:00", true},
		{"8:00am", "08:00", true},
		{"12:00 AM", "00:00", true},
		{"12:00 PM", "12:00", true},
		{"11:59 pm", "23:59", true},
		{"1:05 PM", "13:05", true},
		{"24:00", "", false},
		{"09:60", "", false},
		{"17:30:99", "", false},
		{"13:00 PM", "", false},
		{"0:30 AM", "", false},
		{"9", "", false},
		{"9:5", "", false},
		{"", "", false},
		{"five o'clock", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeTime(tc.raw)
		require.Equal(t, tc.valid, ok, "input %q", tc.raw)
		if tc.valid {
			require.Equal(t, tc.want, got, "input %q", tc.raw)
		}
	}
}

func TestNormalizeTimeIdempotent(t *testing.T) {
	canonical, ok := NormalizeTime("8:00 PM")
	require.True(t, ok)

	again, ok := NormalizeTime(canonical)
	require.True(t, ok)
	require.Equal(t, canonical, again)
}
