// Package calendar maps between a challenge's relative day numbers and
// absolute calendar dates. Every function is pure: "today" is always an
// explicit parameter and nothing here reads the system clock.
package calendar

import (
	"time"

	"github.com/learntrack/learntrack/internal/constants"
)

// DayClass classifies a calendar date relative to a reference day. Exactly
// one class holds for any given date.
type DayClass int

const (
	DayPast DayClass = iota
	DayToday
	DayFuture
)

func (c DayClass) String() string {
	switch c {
	case DayPast:
		return "past"
	case DayToday:
		return "today"
	case DayFuture:
		return "future"
	default:
		return "unknown"
	}
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD) into a
// midnight-UTC time. Keeping all dates in this timezone-less calendar-day
// representation makes day arithmetic exact across DST transitions.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// FormatDate renders a time as a date string in the standard format.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Today renders the calendar day of now. Callers supply the clock value at
// the boundary so everything downstream stays deterministic.
func Today(now time.Time) string {
	return now.Format(constants.DateFormat)
}

// DateForDay returns the calendar date of the 1-indexed dayNumber for a
// challenge starting at startDate: day 1 is the start date itself.
func DateForDay(startDate string, dayNumber int) (string, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return "", err
	}
	return FormatDate(start.AddDate(0, 0, dayNumber-1)), nil
}

// DayNumberForDate is the inverse of DateForDay: the 1-indexed day number
// whose date equals date. Both dates are normalized calendar days, so the
// difference is always a whole number of days.
func DayNumberForDate(startDate, date string) (int, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, err
	}
	target, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return int(target.Sub(start).Hours()/24) + 1, nil
}

// Classify compares calendar dates only, independent of wall-clock time.
func Classify(date, today string) (DayClass, error) {
	d, err := ParseDate(date)
	if err != nil {
		return DayPast, err
	}
	t, err := ParseDate(today)
	if err != nil {
		return DayPast, err
	}
	switch {
	case d.Before(t):
		return DayPast, nil
	case d.After(t):
		return DayFuture, nil
	default:
		return DayToday, nil
	}
}

// ValidateDate checks whether the string is a well-formed date in the
// standard format.
func ValidateDate(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}
