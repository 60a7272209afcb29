package utils

import (
	"fmt"
	"time"
)

// TimestampLayout is how every timestamp in the library document is written.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in UTC with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp attempts to parse a string using various common ISO 8601 and RFC 3339 formats.
func ParseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05Z07:00", // Basic ISO 8601
		"2006-01-02 15:04:05",       // Common DB format
		"2006-01-02T15:04:05",       // ISO 8601 without offset (assume UTC)
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("failed to parse timestamp %q with any supported format", s)
}

// TimestampMillis parses s and returns Unix milliseconds, or 0 when s is empty or unparseable.
func TimestampMillis(s string) int64 {
	if s == "" {
		return 0
	}
	t, err := ParseTimestamp(s)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}
