package utils

import (
	"time"

	"emberday/internal/constants"
)

// Today returns the current calendar day as a YYYY-MM-DD string.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// DayOf formats a timestamp as its calendar day.
func DayOf(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a YYYY-MM-DD date string.
func ParseDay(day string) (time.Time, error) {
	return time.Parse(constants.DateFormat, day)
}

// YesterdayOf returns the calendar day before the given day. Invalid input
// returns an empty string, which never matches a stored date.
func YesterdayOf(day string) string {
	t, err := ParseDay(day)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(constants.DateFormat)
}

// IsYesterday reports whether candidate is exactly the calendar day before day.
func IsYesterday(candidate, day string) bool {
	return candidate != "" && candidate == YesterdayOf(day)
}

// ValidateDay reports whether the string is a valid YYYY-MM-DD date.
func ValidateDay(day string) bool {
	_, err := ParseDay(day)
	return err == nil
}
