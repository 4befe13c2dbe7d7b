package repository

import (
	"fmt"
	"time"
)

// timeFormat is how timestamps are stored in sqlite.
const timeFormat = time.RFC3339

// ParseTime parses a date string in "2006-01-02" or RFC3339 format.
// Note: mirrors validation.ParseTime — both are intentionally kept local to avoid cross-layer imports.
func ParseTime(str string) (time.Time, error) {
	returnTime, err := time.Parse("2006-01-02", str)
	if err != nil {
		returnTime, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
		}
	}
	return returnTime.UTC(), nil
}

// FormatTime renders a timestamp in the stored format.
func FormatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}
