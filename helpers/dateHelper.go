package helpers

import (
	"fmt"
	"time"
)

// DayLayout is the canonical day key, e.g. "2024-03-05".
const DayLayout = "2006-01-02"

// MonthLayout names a calendar month, e.g. "2024-03".
const MonthLayout = "2006-01"

// Today returns the current day key in the given location.
func Today(loc *time.Location) string {
	return time.Now().In(loc).Format(DayLayout)
}

// ParseDay validates a YYYY-MM-DD day key.
func ParseDay(value string) (time.Time, error) {
	day, err := time.Parse(DayLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return day, nil
}

// MonthBounds returns the first and last day keys of the month containing day.
func MonthBounds(day time.Time) (string, string) {
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(DayLayout), last.Format(DayLayout)
}

// ParseMonth validates a YYYY-MM month key and returns its first day.
func ParseMonth(value string) (time.Time, error) {
	month, err := time.Parse(MonthLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", value)
	}
	return month, nil
}

// DaysOfMonth lists every day key of the month containing day, in order.
func DaysOfMonth(day time.Time) []string {
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	var days []string
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DayLayout))
	}
	return days
}
