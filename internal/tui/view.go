package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/learntrack/learntrack/internal/calendar"
	"github.com/learntrack/learntrack/internal/models"
	"github.com/learntrack/learntrack/internal/progress"
)

const gridColumns = 7

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateEntry:
		content = m.viewEntry()
	case StateNewChallenge:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	default:
		content = m.viewGrid()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		docStyle.Render(content),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	challenges := m.store.Challenges()
	if len(challenges) == 0 {
		return inactiveTabStyle.Render("learntrack")
	}

	active, _ := m.store.Active()
	var tabs []string
	for _, ch := range challenges {
		title := ch.Title
		if ch.Completed {
			title += " ✓"
		}
		if ch.ID == active.ID {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewGrid() string {
	ch, ok := m.store.Active()
	if !ok {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("No challenges yet"),
			"",
			"Press n to start one, or q to quit.",
		)
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(ch.Title))
	b.WriteString("\n")
	if ch.Description != "" {
		b.WriteString(fadedStyle.Render(ch.Description))
		b.WriteString("\n")
	}
	b.WriteString(fadedStyle.Render(fmt.Sprintf("Started %s · %d days", ch.StartDate, ch.TotalDays)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Progress: %d%% (%d/%d days)   Streak: %d 🔥\n\n",
		progress.Percentage(ch),
		progress.CompletedDays(ch),
		ch.TotalDays,
		progress.CurrentStreak(ch)))

	b.WriteString(m.renderGrid(ch))
	b.WriteString("\n")
	b.WriteString(renderLegend())
	b.WriteString("\n\n")
	b.WriteString(m.renderCursorDay(ch))

	if !ch.Completed && progress.Percentage(ch) >= 100 {
		b.WriteString("\n\n")
		b.WriteString(statusMsgStyle.Render("All days logged! Press c to mark the challenge complete."))
	}

	if m.statusMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(statusMsgStyle.Render(m.statusMsg))
	}

	return b.String()
}

func (m Model) renderGrid(ch models.Challenge) string {
	var rows []string
	var row []string
	for day := 1; day <= ch.TotalDays; day++ {
		status, err := progress.Status(ch, day, m.today)
		if err != nil {
			status = progress.StatusUpcoming
		}
		style := cellStyle(status)
		if day == m.cursor {
			style = style.Reverse(true)
		}
		row = append(row, style.Render(fmt.Sprintf(" %3d ", day)))
		if len(row) == gridColumns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderCursorDay(ch models.Challenge) string {
	date, err := calendar.DateForDay(ch.StartDate, m.cursor)
	if err != nil {
		date = "?"
	}

	head := fmt.Sprintf("Day %d · %s", m.cursor, date)
	text, logged := ch.Entries[m.cursor]
	if !logged {
		return head + "\n" + fadedStyle.Render("No entry. Press enter to log this day.")
	}
	return head + "\n" + text
}

func (m Model) viewEntry() string {
	ch, ok := m.store.Active()
	if !ok {
		return ""
	}
	date, err := calendar.DateForDay(ch.StartDate, m.cursor)
	if err != nil {
		date = "?"
	}

	parts := []string{
		titleStyle.Render(fmt.Sprintf("Day %d · %s", m.cursor, date)),
		"",
		m.entry.View(),
	}
	if m.statusMsg != "" {
		parts = append(parts, "", dangerStyle.Render(m.statusMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewConfirmDelete() string {
	ch, ok := m.store.Active()
	if !ok {
		return ""
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q and all its entries?", ch.Title)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
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

func renderLegend() string {
	return strings.Join([]string{
		cellCompletedStyle.Render(" logged "),
		cellTodayStyle.Render(" today "),
		cellMissedStyle.Render(" missed "),
		cellUpcomingStyle.Render(" upcoming "),
	}, " ")
}
