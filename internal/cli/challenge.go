package cli

import (
	"fmt"

	"github.com/learntrack/learntrack/internal/calendar"
	"github.com/learntrack/learntrack/internal/progress"
)

type NewCmd struct {
	Title       string `arg:"" help:"Challenge title."`
	Days        int    `help:"Challenge length in days." default:"30"`
	Start       string `help:"Start date in YYYY-MM-DD format (default: today)." default:""`
	Description string `help:"Optional description of the goal." default:""`
}

func (c *NewCmd) Run(ctx *Context) error {
	ch, err := ctx.Store.CreateChallenge(c.Title, c.Days, c.Description, c.Start)
	if err != nil {
		return err
	}

	end, err := calendar.DateForDay(ch.StartDate, ch.TotalDays)
	if err != nil {
		return err
	}
	fmt.Printf("Started challenge %q: day 1 is %s, day %d is %s\n", ch.Title, ch.StartDate, ch.TotalDays, end)
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *Context) error {
	challenges := ctx.Store.Challenges()
	if len(challenges) == 0 {
		fmt.Println("No challenges yet. Start one with 'learntrack new'.")
		return nil
	}

	active, hasActive := ctx.Store.Active()
	completed := 0
	for _, ch := range challenges {
		marker := " "
		if hasActive && ch.ID == active.ID {
			marker = "*"
		}
		status := ""
		if ch.Completed {
			status = " [completed]"
			completed++
		}
		fmt.Printf("%s %s  %s%s\n", marker, shortID(ch.ID), ch.Title, status)
		fmt.Printf("    started %s, %s, streak %d\n", ch.StartDate, FormatProgress(ch), progress.CurrentStreak(ch))
	}

	fmt.Printf("\n%d challenge(s): %d completed, %d active\n", len(challenges), completed, len(challenges)-completed)
	return nil
}

type UseCmd struct {
	Challenge string `arg:"" help:"Challenge id, unique id prefix, or title."`
}

func (c *UseCmd) Run(ctx *Context) error {
	ch, err := ctx.Store.Resolve(c.Challenge)
	if err != nil {
		return err
	}
	if err := ctx.Store.SelectActive(ch.ID); err != nil {
		return err
	}
	fmt.Printf("Now tracking: %s\n", ch.Title)
	return nil
}

type CompleteCmd struct {
	Challenge string `arg:"" optional:"" help:"Challenge to mark complete (default: active)."`
}

func (c *CompleteCmd) Run(ctx *Context) error {
	ch, err := ctx.Target(c.Challenge)
	if err != nil {
		return err
	}
	if ch.Completed {
		fmt.Printf("%q is already marked complete.\n", ch.Title)
		return nil
	}
	if err := ctx.Store.MarkComplete(ch.ID); err != nil {
		return err
	}
	if progress.IsFullyComplete(ch) {
		fmt.Printf("Marked %q complete. All %d days logged!\n", ch.Title, ch.TotalDays)
	} else {
		fmt.Printf("Marked %q complete with %s logged.\n", ch.Title, FormatProgress(ch))
	}
	return nil
}

type DeleteCmd struct {
	Challenge string `arg:"" help:"Challenge id, unique id prefix, or title."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	ch, err := ctx.Store.Resolve(c.Challenge)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteChallenge(ch.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted challenge: %s\n", ch.Title)

	if next, ok := ctx.Store.Active(); ok && next.ID != ch.ID {
		fmt.Printf("Now tracking: %s\n", next.Title)
	}
	return nil
}

// shortID truncates a uuid to its first group for display; list output stays
// readable and any unique prefix works as a reference.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
