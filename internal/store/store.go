// Package store owns the in-memory challenge collection and the active
// selection. It is the only component that mutates challenge records; derived
// values come from the progress and calendar packages. Every successful
// mutation persists the collection fire-and-forget and notifies subscribers.
package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/learntrack/learntrack/internal/calendar"
	"github.com/learntrack/learntrack/internal/constants"
	apperrors "github.com/learntrack/learntrack/internal/errors"
	"github.com/learntrack/learntrack/internal/logger"
	"github.com/learntrack/learntrack/internal/models"
	"github.com/learntrack/learntrack/internal/storage"
)

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store is the stateful container for all challenges. Operations are
// synchronous and total: none leaves the collection violating its
// invariants, and persistence failures never fail a mutation.
type Store struct {
	gateway    storage.Gateway
	now        func() time.Time
	challenges []models.Challenge
	activeID   string
	listeners  []func()
}

func New(gw storage.Gateway, opts ...Option) *Store {
	s := &Store{
		gateway: gw,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to run after every mutation. The presentation layer
// uses this to re-render on change.
func (s *Store) Subscribe(fn func()) {
	s.listeners = append(s.listeners, fn)
}

// Load pulls the stored snapshot into memory. Absent or malformed data means
// an empty collection; a read failure is logged and likewise treated as
// empty, so the session always starts.
func (s *Store) Load() {
	snap, ok, err := s.gateway.Load()
	if err != nil {
		logger.Warn("Loading stored data failed, starting empty", "error", err)
	}
	if !ok {
		s.challenges = nil
		s.activeID = ""
		return
	}
	s.challenges = snap.Challenges
	s.activeID = deriveActive(s.challenges)
}

// CreateChallenge validates the input, appends a new challenge, and makes it
// active. startDate defaults to today when empty.
func (s *Store) CreateChallenge(title string, totalDays int, description, startDate string) (models.Challenge, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Challenge{}, apperrors.Validationf("title must not be empty")
	}
	if totalDays <= 0 {
		return models.Challenge{}, apperrors.Validationf("total days must be a positive number, got %d", totalDays)
	}

	now := s.now()
	if startDate == "" {
		startDate = calendar.Today(now)
	} else if !calendar.ValidateDate(startDate) {
		return models.Challenge{}, apperrors.Validationf("invalid start date %q (expected YYYY-MM-DD)", startDate)
	}

	c := models.Challenge{
		ID:          uuid.New().String(),
		Title:       title,
		Description: strings.TrimSpace(description),
		TotalDays:   totalDays,
		StartDate:   startDate,
		Entries:     make(map[int]string),
		CreatedAt:   now,
	}

	s.challenges = append(s.challenges, c)
	s.activeID = c.ID
	s.commit()
	return c.Clone(), nil
}

// AddEntry inserts or overwrites the note for one day. Overwriting an
// existing day is an edit-in-place and does not change the completed count.
func (s *Store) AddEntry(id string, day int, text string) error {
	i := s.indexOf(id)
	if i < 0 {
		return apperrors.NotFound(id)
	}
	if day < 1 {
		return apperrors.Validationf("day number must be at least 1, got %d", day)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return apperrors.Validationf("entry text must not be empty")
	}

	if s.challenges[i].Entries == nil {
		s.challenges[i].Entries = make(map[int]string)
	}
	s.challenges[i].Entries[day] = text
	s.commit()
	return nil
}

// DeleteEntry removes the note for one day. Removing a day that was never
// logged is a no-op, not an error.
func (s *Store) DeleteEntry(id string, day int) error {
	i := s.indexOf(id)
	if i < 0 {
		return apperrors.NotFound(id)
	}
	if _, ok := s.challenges[i].Entries[day]; !ok {
		return nil
	}
	delete(s.challenges[i].Entries, day)
	s.commit()
	return nil
}

// DeleteChallenge removes a challenge. When the active challenge is deleted
// the most recently created remaining one becomes active, or none if the
// collection is now empty.
func (s *Store) DeleteChallenge(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return apperrors.NotFound(id)
	}
	s.challenges = append(s.challenges[:i], s.challenges[i+1:]...)
	if s.activeID == id {
		if n := len(s.challenges); n > 0 {
			s.activeID = s.challenges[n-1].ID
		} else {
			s.activeID = ""
		}
	}
	s.commit()
	return nil
}

// MarkComplete flags a challenge as completed and stamps the completion
// time. It does not require every day to be logged; gating early completion
// is a presentation decision. Completion is monotonic, so marking an
// already-completed challenge changes nothing.
func (s *Store) MarkComplete(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return apperrors.NotFound(id)
	}
	if s.challenges[i].Completed {
		return nil
	}
	s.challenges[i].Completed = true
	s.challenges[i].CompletedDate = s.now().Format(time.RFC3339)
	s.commit()
	return nil
}

// SelectActive switches the active challenge reference.
func (s *Store) SelectActive(id string) error {
	if s.indexOf(id) < 0 {
		return apperrors.NotFound(id)
	}
	s.activeID = id
	s.commit()
	return nil
}

// ReplaceAll wholesale-replaces the collection, used by import. The active
// challenge is re-derived: first incomplete, else the last one, else none.
// No structural validation happens here beyond what deserialization already
// guaranteed.
func (s *Store) ReplaceAll(challenges []models.Challenge) {
	s.challenges = challenges
	s.activeID = deriveActive(challenges)
	s.commit()
}

// Clear removes every challenge and deletes the stored snapshot.
func (s *Store) Clear() error {
	if err := s.gateway.Clear(); err != nil {
		return err
	}
	s.challenges = nil
	s.activeID = ""
	s.notify()
	return nil
}

// Challenges returns a copy of the collection in creation order.
func (s *Store) Challenges() []models.Challenge {
	out := make([]models.Challenge, len(s.challenges))
	for i, c := range s.challenges {
		out[i] = c.Clone()
	}
	return out
}

// Get returns the challenge with the given id.
func (s *Store) Get(id string) (models.Challenge, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Challenge{}, apperrors.NotFound(id)
	}
	return s.challenges[i].Clone(), nil
}

// Active returns the currently selected challenge, if any.
func (s *Store) Active() (models.Challenge, bool) {
	i := s.indexOf(s.activeID)
	if i < 0 {
		return models.Challenge{}, false
	}
	return s.challenges[i].Clone(), true
}

// Resolve finds a challenge by exact id, exact title, or unique id prefix,
// in that order. It lets commands address challenges the way a user would
// type them.
func (s *Store) Resolve(ref string) (models.Challenge, error) {
	if i := s.indexOf(ref); i >= 0 {
		return s.challenges[i].Clone(), nil
	}
	for i := range s.challenges {
		if s.challenges[i].Title == ref {
			return s.challenges[i].Clone(), nil
		}
	}
	match := -1
	for i := range s.challenges {
		if strings.HasPrefix(s.challenges[i].ID, ref) {
			if match >= 0 {
				return models.Challenge{}, apperrors.Validationf("%q matches more than one challenge, use a longer id prefix", ref)
			}
			match = i
		}
	}
	if match < 0 {
		return models.Challenge{}, apperrors.NotFound(ref)
	}
	return s.challenges[match].Clone(), nil
}

// Snapshot returns the serialized representation of the collection, as saved
// and exported.
func (s *Store) Snapshot() models.Snapshot {
	return models.Snapshot{
		Challenges:  s.Challenges(),
		LastUpdated: s.now(),
		Version:     constants.SnapshotVersion,
	}
}

// Today renders the current calendar day from the store's clock.
func (s *Store) Today() string {
	return calendar.Today(s.now())
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.challenges {
		if s.challenges[i].ID == id {
			return i
		}
	}
	return -1
}

// commit persists the collection and notifies listeners. A failed save is
// logged, never propagated: the in-memory state stays the source of truth
// for the running session.
func (s *Store) commit() {
	if err := s.gateway.Save(s.Snapshot()); err != nil {
		logger.Warn("Saving data failed", "error", err)
	}
	s.notify()
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}

// deriveActive applies the load/import selection policy: the first
// incomplete challenge, else the last one, else none.
func deriveActive(challenges []models.Challenge) string {
	for i := range challenges {
		if !challenges[i].Completed {
			return challenges[i].ID
		}
	}
	if n := len(challenges); n > 0 {
		return challenges[n-1].ID
	}
	return ""
}
