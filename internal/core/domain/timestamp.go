package domain

import "time"

// TimestampLayout is the fixed wire format for every date-bearing field.
// The trailing Z is a literal, values are always UTC.
const TimestampLayout = "2006-01-02 15:04:05Z"

func ParseTimestamp(value string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, value, time.UTC)
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
