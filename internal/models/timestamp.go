package models

import "time"

const (
	isoSeconds = "2006-01-02T15:04:05-07:00"
	isoMicros  = "2006-01-02T15:04:05.000000-07:00"
)

// FormatTimestamp renders t the way the API writes created_at values:
// ISO 8601 with a numeric offset, and microseconds only when non-zero.
func FormatTimestamp(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(isoSeconds)
	}
	return t.Truncate(time.Microsecond).Format(isoMicros)
}

// ParseTimestamp reads a created_at value written by FormatTimestamp or the API.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
