package utils

import "time"

const dateLayout = "2006-01-02"

// Calendar-date helpers for trip and stop date columns. Trips store
// plain dates; clock times on activities stay free text.

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// AddDays shifts a calendar date without touching the clock component.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

func NowUnixSeconds() int64 { return time.Now().Unix() }
