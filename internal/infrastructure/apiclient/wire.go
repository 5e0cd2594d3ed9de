package apiclient

import (
	"strconv"
	"time"
)

// Backend timestamps are either RFC 3339 or zone-less local date-times.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp returns the zero time for empty or unrecognised input.
func parseTimestamp(raw string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

func idParam(id int64) string {
	return strconv.FormatInt(id, 10)
}

// dateParam formats the date-only query values the booking service expects.
func dateParam(t time.Time) string {
	return t.Format("2006-01-02")
}
