package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/learntrack/learntrack/internal/models"
	"github.com/learntrack/learntrack/internal/progress"
)

var (
	statusTitleStyle = lipgloss.NewStyle().Bold(true)

	statusFadedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	cellCompletedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("42"))

	cellTodayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("33")).
			Bold(true)

	cellMissedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	cellUpcomingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))
)

type StatusCmd struct {
	Challenge string `arg:"" optional:"" help:"Challenge id, unique id prefix, or title (default: active)."`
}

func (c *StatusCmd) Run(ctx *Context) error {
	ch, err := ctx.Target(c.Challenge)
	if err != nil {
		return err
	}
	today := ctx.Store.Today()

	fmt.Println(statusTitleStyle.Render(ch.Title))
	if ch.Description != "" {
		fmt.Println(statusFadedStyle.Render(ch.Description))
	}
	fmt.Printf("Started %s", ch.StartDate)
	if ch.Completed {
		fmt.Print("  [completed]")
	}
	fmt.Println()
	fmt.Println()

	fmt.Printf("Progress: %s   Streak: %d   Days left: %d\n\n",
		FormatProgress(ch), progress.CurrentStreak(ch), progress.DaysRemaining(ch))

	grid, err := renderGrid(ch, today)
	if err != nil {
		return err
	}
	fmt.Println(grid)
	fmt.Println()
	fmt.Println(renderLegend())

	if !ch.Completed && progress.Percentage(ch) >= 100 {
		fmt.Println("\nAll days logged! Mark it done with 'learntrack complete'.")
	}
	return nil
}

// renderGrid draws the challenge as a 7-column calendar of day numbers, each
// styled by its status.
func renderGrid(ch models.Challenge, today string) (string, error) {
	var rows []string
	var row []string

	for day := 1; day <= ch.TotalDays; day++ {
		status, err := progress.Status(ch, day, today)
		if err != nil {
			return "", err
		}

		cell := fmt.Sprintf(" %3d ", day)
		row = append(row, cellStyle(status).Render(cell))

		if len(row) == 7 {
			rows = append(rows, strings.Join(row, " "))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}

	return strings.Join(rows, "\n"), nil
}

// renderLegend draws the status color key shown under the grid.
func renderLegend() string {
	parts := []string{
		cellCompletedStyle.Render(" ■ ") + " completed",
		cellTodayStyle.Render(" ■ ") + " today",
		cellMissedStyle.Render(" ■ ") + " missed",
		cellUpcomingStyle.Render(" ■ ") + " upcoming",
	}
	return strings.Join(parts, "   ")
}

func cellStyle(status progress.DayStatus) lipgloss.Style {
	switch status {
	case progress.StatusCompleted:
		return cellCompletedStyle
	case progress.StatusToday:
		return cellTodayStyle
	case progress.StatusMissed:
		return cellMissedStyle
	default:
		return cellUpcomingStyle
	}
}
