package csvio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		input string
	}{
		{"slash YMD", "2024/3/5"},
		{"slash YMD padded", "2024/03/05"},
		{"dash YMD", "2024-3-5"},
		{"dash YMD padded", "2024-03-05"},
		{"slash MDY", "3/5/2024"},
		{"dot YMD", "2024.3.5"},
		{"kanji", "2024年3月5日"},
		{"surrounding spaces", " 2024/03/05 "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseDate(tc.input)
			require.True(t, ok)
			assert.Equal(t, want, got)
		})
	}

	t.Run("rfc3339 fallback", func(t *testing.T) {
		got, ok := ParseDate("2024-03-05T10:30:00Z")
		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, s := range []string{"", "not a date", "2024/13/01", "2024/02/30", "99/99/9999"} {
			_, ok := ParseDate(s)
			assert.False(t, ok, "input %q", s)
		}
	})
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"12000", 12000},
		{"12,000", 12000},
		{"¥12,000", 12000},
		{"￥12,000", 12000},
		{"12000円", 12000},
		{" 1,234,567 ", 1234567},
		{"0", 0},
		{"99.6", 100}, // fractions round
	}
	for _, tc := range cases {
		got, ok := ParseAmount(tc.input)
		require.True(t, ok, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}

	for _, s := range []string{"", "abc", "12a00", "円"} {
		_, ok := ParseAmount(s)
		assert.False(t, ok, "input %q", s)
	}
}

func TestParseCount(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"8", 8},
		{"8人", 8},
		{"1,200", 1200},
		{"8.9", 8}, // fractions truncate
		{"0", 0},
	}
	for _, tc := range cases {
		got, ok := ParseCount(tc.input)
		require.True(t, ok, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}

	for _, s := range []string{"", "人", "eight"} {
		_, ok := ParseCount(s)
		assert.False(t, ok, "input %q", s)
	}
}
