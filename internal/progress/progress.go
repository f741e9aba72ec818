// Package progress derives per-day status and aggregate statistics from a
// challenge record. Everything here is a pure function of the record and an
// explicit "today"; all mutation lives in the store.
package progress

import (
	"math"
	"sort"

	"github.com/learntrack/learntrack/internal/calendar"
	"github.com/learntrack/learntrack/internal/models"
)

// DayStatus is the display state of a single challenge day.
type DayStatus string

const (
	StatusCompleted DayStatus = "completed"
	StatusToday     DayStatus = "today"
	StatusMissed    DayStatus = "missed"
	StatusUpcoming  DayStatus = "upcoming"
)

// CompletedDays returns the number of days with a logged entry.
func CompletedDays(c models.Challenge) int {
	return len(c.Entries)
}

// Percentage returns the completion percentage rounded to the nearest
// integer. It is deliberately not clamped to 100: entries logged past the
// nominal range push it above 100, reporting the stored data rather than
// hiding it.
func Percentage(c models.Challenge) int {
	if c.TotalDays <= 0 {
		return 0
	}
	return int(math.Round(float64(len(c.Entries)) / float64(c.TotalDays) * 100))
}

// CurrentStreak returns the length of the consecutive run of logged days
// ending at the most recently logged day. The run does not have to reach
// today: a user who stops logging keeps their last streak.
func CurrentStreak(c models.Challenge) int {
	if len(c.Entries) == 0 {
		return 0
	}

	days := make([]int, 0, len(c.Entries))
	for day := range c.Entries {
		days = append(days, day)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(days)))

	streak := 1
	for i := 1; i < len(days); i++ {
		if days[i-1]-days[i] != 1 {
			break
		}
		streak++
	}
	return streak
}

// Status returns the display state of one day. A logged entry always wins
// over the date classification.
func Status(c models.Challenge, dayNumber int, today string) (DayStatus, error) {
	if _, ok := c.Entries[dayNumber]; ok {
		return StatusCompleted, nil
	}

	date, err := calendar.DateForDay(c.StartDate, dayNumber)
	if err != nil {
		return "", err
	}
	class, err := calendar.Classify(date, today)
	if err != nil {
		return "", err
	}

	switch class {
	case calendar.DayPast:
		return StatusMissed, nil
	case calendar.DayToday:
		return StatusToday, nil
	default:
		return StatusUpcoming, nil
	}
}

// IsFullyComplete reports whether every nominal day has an entry.
func IsFullyComplete(c models.Challenge) bool {
	return len(c.Entries) >= c.TotalDays
}

// DaysRemaining returns how many of the nominal days are still unlogged.
func DaysRemaining(c models.Challenge) int {
	return c.TotalDays - len(c.Entries)
}
