package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/learntrack/learntrack/internal/calendar"
	"github.com/learntrack/learntrack/internal/constants"
	"github.com/learntrack/learntrack/internal/store"
)

type SessionState int

const (
	StateGrid SessionState = iota
	StateEntry
	StateNewChallenge
	StateConfirmDelete
)

type ChallengeFormModel struct {
	Title       string
	Days        int
	StartDate   string
	Description string
}

type Model struct {
	store     *store.Store
	state     SessionState
	keys      KeyMap
	help      help.Model
	entry     textarea.Model
	form      *huh.Form
	formModel *ChallengeFormModel
	cursor    int // day number under the cursor, 1-indexed
	today     string
	statusMsg string
	quitting  bool
	width     int
	height    int
}

func NewModel(s *store.Store) Model {
	ta := textarea.New()
	ta.Placeholder = "What did you learn today?"
	ta.CharLimit = 0
	ta.SetHeight(5)

	m := Model{
		store: s,
		state: StateGrid,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		entry: ta,
		today: s.Today(),
	}
	m.resetCursor()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case StateEntry:
		return []key.Binding{m.keys.Save, m.keys.Cancel}
	case StateConfirmDelete:
		return nil
	}
	return []key.Binding{m.keys.Enter, m.keys.New, m.keys.Tab, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	if m.state == StateEntry {
		return [][]key.Binding{{m.keys.Save, m.keys.Cancel}}
	}
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return nil
}

// resetCursor points the cursor at today's day number when today falls
// inside the active challenge, otherwise at day 1.
func (m *Model) resetCursor() {
	m.cursor = 1
	ch, ok := m.store.Active()
	if !ok {
		return
	}
	day, err := calendar.DayNumberForDate(ch.StartDate, m.today)
	if err == nil && day >= 1 && day <= ch.TotalDays {
		m.cursor = day
	}
}

func newChallengeForm(fm *ChallengeFormModel) *huh.Form {
	var options []huh.Option[int]
	for _, d := range constants.DurationChoices {
		options = append(options, huh.NewOption(fmt.Sprintf("%d days", d), d))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewSelect[int]().
				Title("Duration").
				Options(options...).
				Value(&fm.Days),
			huh.NewInput().
				Title("Start date").
				Description("YYYY-MM-DD, empty for today").
				Value(&fm.StartDate).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if !calendar.ValidateDate(strings.TrimSpace(s)) {
						return fmt.Errorf("expected YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewText().
				Title("Description").
				Lines(3).
				Value(&fm.Description),
		),
	).WithTheme(huh.ThemeDracula())
}
