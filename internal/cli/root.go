package cli

import (
	"fmt"

	"github.com/learntrack/learntrack/internal/calendar"
	apperrors "github.com/learntrack/learntrack/internal/errors"
	"github.com/learntrack/learntrack/internal/models"
	"github.com/learntrack/learntrack/internal/progress"
	"github.com/learntrack/learntrack/internal/store"
	"github.com/learntrack/learntrack/internal/storage"
)

// Context carries the shared dependencies into every command's Run method.
type Context struct {
	Store   *store.Store
	Gateway storage.Gateway
	Debug   bool
}

// Target resolves a challenge reference, falling back to the active
// challenge when ref is empty.
func (c *Context) Target(ref string) (models.Challenge, error) {
	if ref != "" {
		return c.Store.Resolve(ref)
	}
	active, ok := c.Store.Active()
	if !ok {
		return models.Challenge{}, apperrors.Validationf("no active challenge; create one with 'learntrack new' or pass --challenge")
	}
	return active, nil
}

// FormatProgress renders the one-line progress summary used by list and
// status output.
func FormatProgress(ch models.Challenge) string {
	return fmt.Sprintf("%d/%d days (%d%%)", progress.CompletedDays(ch), ch.TotalDays, progress.Percentage(ch))
}

// DescribeDay renders "day N (YYYY-MM-DD)" for messages about a specific
// challenge day.
func DescribeDay(ch models.Challenge, day int) string {
	date, err := calendar.DateForDay(ch.StartDate, day)
	if err != nil {
		return fmt.Sprintf("day %d", day)
	}
	return fmt.Sprintf("day %d (%s)", day, date)
}
