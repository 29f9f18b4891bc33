package db

import (
	"fmt"
	"time"
)

// MonthRange is a half-open [Start, End) date interval covering one
// calendar month.
type MonthRange struct {
	Start time.Time
	End   time.Time
}

// ParseMonth derives the range for a "YYYY-MM" string. End is the first day
// of the following month, so December rolls over to January of the next year
// and month lengths of 28-31 days need no special casing.
func ParseMonth(month string) (MonthRange, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return MonthRange{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	return MonthRange{Start: start, End: start.AddDate(0, 1, 0)}, nil
}

// Contains reports whether d falls inside the range.
func (r MonthRange) Contains(d time.Time) bool {
	return !d.Before(r.Start) && d.Before(r.End)
}
