package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		month string
		start string
		end   string
	}{
		{"2024-01", "2024-01-01", "2024-02-01"}, // 31 days
		{"2024-04", "2024-04-01", "2024-05-01"}, // 30 days
		{"2024-02", "2024-02-01", "2024-03-01"}, // leap February
		{"2023-02", "2023-02-01", "2023-03-01"}, // regular February
		{"2023-12", "2023-12-01", "2024-01-01"}, // December rolls to next year
	}
	for _, tt := range tests {
		r, err := ParseMonth(tt.month)
		require.NoError(t, err, tt.month)
		assert.Equal(t, tt.start, r.Start.Format("2006-01-02"), tt.month)
		assert.Equal(t, tt.end, r.End.Format("2006-01-02"), tt.month)
		// End is always exactly one calendar month after start.
		assert.Equal(t, r.Start.AddDate(0, 1, 0), r.End, tt.month)
	}
}

func TestParseMonthInvalid(t *testing.T) {
	for _, month := range []string{"", "2024", "2024-13", "2024-1", "12-2024", "garbage", "2024-02-01"} {
		_, err := ParseMonth(month)
		assert.Error(t, err, month)
	}
}

func TestMonthRangeContains(t *testing.T) {
	r, err := ParseMonth("2024-02")
	require.NoError(t, err)

	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}

	assert.True(t, r.Contains(day("2024-02-01")), "start is inclusive")
	assert.True(t, r.Contains(day("2024-02-29")), "leap day belongs to February")
	assert.False(t, r.Contains(day("2024-03-01")), "end is exclusive")
	assert.False(t, r.Contains(day("2024-01-31")))
}
