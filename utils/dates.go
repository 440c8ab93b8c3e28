package utils

import (
	"time"
)

const isoDateLayout = "2006-01-02"

// TodayISO returns the current date as YYYY-MM-DD.
func TodayISO() string {
	return time.Now().Format(isoDateLayout)
}

// AddDays shifts an ISO date by a signed number of calendar days. The empty
// string is returned for an unparseable input.
func AddDays(iso string, days int) string {
	t, err := time.Parse(isoDateLayout, iso)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, days).Format(isoDateLayout)
}

// ValidISODate reports whether s parses as YYYY-MM-DD.
func ValidISODate(s string) bool {
	_, err := time.Parse(isoDateLayout, s)
	return err == nil
}
