package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/learntrack/learntrack/internal/constants"
	"github.com/learntrack/learntrack/internal/progress"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.entry.SetWidth(min(msg.Width-4, 72))
	}

	switch m.state {
	case StateEntry:
		return m.updateEntry(msg)
	case StateNewChallenge:
		return m.updateNewChallenge(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m.updateGrid(msg)
}

func (m Model) updateGrid(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	ch, hasActive := m.store.Active()

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.New):
		m.formModel = &ChallengeFormModel{Days: constants.DefaultTotalDays}
		m.form = newChallengeForm(m.formModel)
		m.state = StateNewChallenge
		m.statusMsg = ""
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.Tab):
		m.cycleActive(1)

	case key.Matches(keyMsg, m.keys.ShiftTab):
		m.cycleActive(-1)

	case key.Matches(keyMsg, m.keys.Left):
		if hasActive {
			m.moveCursor(-1, ch.TotalDays)
		}

	case key.Matches(keyMsg, m.keys.Right):
		if hasActive {
			m.moveCursor(1, ch.TotalDays)
		}

	case key.Matches(keyMsg, m.keys.Up):
		if hasActive {
			m.moveCursor(-gridColumns, ch.TotalDays)
		}

	case key.Matches(keyMsg, m.keys.Down):
		if hasActive {
			m.moveCursor(gridColumns, ch.TotalDays)
		}

	case key.Matches(keyMsg, m.keys.Enter):
		if !hasActive {
			return m, nil
		}
		m.entry.SetValue(ch.Entries[m.cursor])
		m.entry.Focus()
		m.state = StateEntry
		m.statusMsg = ""

	case key.Matches(keyMsg, m.keys.Unlog):
		if !hasActive {
			return m, nil
		}
		if _, logged := ch.Entries[m.cursor]; logged {
			if err := m.store.DeleteEntry(ch.ID, m.cursor); err == nil {
				m.statusMsg = fmt.Sprintf("Removed entry for day %d", m.cursor)
			}
		}

	case key.Matches(keyMsg, m.keys.Delete):
		if hasActive {
			m.state = StateConfirmDelete
		}

	case key.Matches(keyMsg, m.keys.Complete):
		if !hasActive || ch.Completed {
			return m, nil
		}
		if progress.Percentage(ch) < 100 {
			m.statusMsg = "Log every day before marking the challenge complete"
			return m, nil
		}
		if err := m.store.MarkComplete(ch.ID); err == nil {
			m.statusMsg = fmt.Sprintf("%q marked complete 🎉", ch.Title)
		}
	}

	return m, nil
}

func (m Model) updateEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			m.entry.Blur()
			m.state = StateGrid
			return m, nil

		case key.Matches(keyMsg, m.keys.Save):
			ch, hasActive := m.store.Active()
			if !hasActive {
				m.state = StateGrid
				return m, nil
			}
			text := strings.TrimSpace(m.entry.Value())
			if text == "" {
				m.statusMsg = "Entry text cannot be empty"
				return m, nil
			}
			if err := m.store.AddEntry(ch.ID, m.cursor, text); err != nil {
				m.statusMsg = err.Error()
				return m, nil
			}
			m.entry.Blur()
			m.state = StateGrid
			m.statusMsg = fmt.Sprintf("Logged day %d", m.cursor)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	return m, cmd
}

func (m Model) updateNewChallenge(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = StateGrid
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		fm := m.formModel
		created, err := m.store.CreateChallenge(
			fm.Title,
			fm.Days,
			strings.TrimSpace(fm.Description),
			strings.TrimSpace(fm.StartDate),
		)
		if err != nil {
			m.statusMsg = err.Error()
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}
		m.state = StateGrid
		m.statusMsg = fmt.Sprintf("Started %q", created.Title)
		m.resetCursor()
	case huh.StateAborted:
		m.state = StateGrid
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if ch, hasActive := m.store.Active(); hasActive {
			if err := m.store.DeleteChallenge(ch.ID); err == nil {
				m.statusMsg = fmt.Sprintf("Deleted %q", ch.Title)
			}
		}
		m.state = StateGrid
		m.resetCursor()
	case "n", "N", "esc", "q":
		m.state = StateGrid
	}

	return m, nil
}

func (m *Model) moveCursor(delta, totalDays int) {
	next := m.cursor + delta
	if next < 1 || next > totalDays {
		return
	}
	m.cursor = next
}

func (m *Model) cycleActive(step int) {
	challenges := m.store.Challenges()
	if len(challenges) < 2 {
		return
	}
	active, ok := m.store.Active()
	if !ok {
		return
	}
	idx := 0
	for i, c := range challenges {
		if c.ID == active.ID {
			idx = i
			break
		}
	}
	next := challenges[(idx+step+len(challenges))%len(challenges)]
	if err := m.store.SelectActive(next.ID); err == nil {
		m.statusMsg = ""
		m.resetCursor()
	}
}
