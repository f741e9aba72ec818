package cli

import (
	"fmt"
	"strings"

	"github.com/learntrack/learntrack/internal/calendar"
	apperrors "github.com/learntrack/learntrack/internal/errors"
	"github.com/learntrack/learntrack/internal/models"
	"github.com/learntrack/learntrack/internal/progress"
)

type LogCmd struct {
	Text      []string `arg:"" help:"Entry text: what you learned that day."`
	Day       int      `help:"Day number to log (default: today's day in the challenge)." default:"0"`
	Challenge string   `help:"Challenge id, unique id prefix, or title (default: active)." default:""`
}

func (c *LogCmd) Run(ctx *Context) error {
	ch, err := ctx.Target(c.Challenge)
	if err != nil {
		return err
	}

	day := c.Day
	if day == 0 {
		day, err = todayDayNumber(ch, ctx.Store.Today())
		if err != nil {
			return err
		}
	}

	text := strings.Join(c.Text, " ")
	if err := ctx.Store.AddEntry(ch.ID, day, text); err != nil {
		return err
	}

	updated, err := ctx.Store.Get(ch.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Logged %s of %q. Progress: %s, streak %d.\n",
		DescribeDay(updated, day), updated.Title, FormatProgress(updated), progress.CurrentStreak(updated))

	if day > updated.TotalDays {
		fmt.Printf("Note: day %d is past the challenge's %d-day length.\n", day, updated.TotalDays)
	}
	return nil
}

type UnlogCmd struct {
	Day       int    `arg:"" help:"Day number to clear."`
	Challenge string `help:"Challenge id, unique id prefix, or title (default: active)." default:""`
}

func (c *UnlogCmd) Run(ctx *Context) error {
	ch, err := ctx.Target(c.Challenge)
	if err != nil {
		return err
	}

	if _, hadEntry := ch.Entries[c.Day]; !hadEntry {
		fmt.Printf("No entry logged for %s of %q.\n", DescribeDay(ch, c.Day), ch.Title)
		return nil
	}
	if err := ctx.Store.DeleteEntry(ch.ID, c.Day); err != nil {
		return err
	}
	fmt.Printf("Removed the entry for %s of %q.\n", DescribeDay(ch, c.Day), ch.Title)
	return nil
}

// todayDayNumber maps today onto a challenge day, rejecting dates outside a
// sensible logging window with a friendly message.
func todayDayNumber(ch models.Challenge, today string) (int, error) {
	day, err := calendar.DayNumberForDate(ch.StartDate, today)
	if err != nil {
		return 0, err
	}
	if day < 1 {
		return 0, apperrors.Validationf("%q has not started yet: day 1 is %s", ch.Title, ch.StartDate)
	}
	return day, nil
}
