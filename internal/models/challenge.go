package models

import "time"

// Challenge is a fixed-length learning goal tracked against real calendar
// dates. TotalDays and StartDate are fixed at creation; day 1 falls on
// StartDate and day N on StartDate + (N-1) days.
type Challenge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	TotalDays   int    `json:"totalDays"`
	StartDate   string `json:"startDate"` // YYYY-MM-DD format

	// Entries maps a 1-indexed day number to the note logged for that day.
	// Notes are always stored trimmed and never empty. Day numbers past
	// TotalDays are tolerated; ordering is derived by sorting day numbers,
	// never by insertion order.
	Entries map[int]string `json:"entries"`

	// Completed is monotonic: once true it never reverts. CompletedDate is
	// stamped exactly once, on the transition.
	Completed     bool   `json:"completed"`
	CompletedDate string `json:"completedDate,omitempty"` // RFC3339 timestamp

	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a copy of the challenge with its own entries map, so callers
// holding a returned record cannot mutate the store's state through it.
func (c Challenge) Clone() Challenge {
	out := c
	if c.Entries != nil {
		out.Entries = make(map[int]string, len(c.Entries))
		for day, note := range c.Entries {
			out.Entries[day] = note
		}
	}
	return out
}

// Snapshot is the full serialized representation of all challenges plus
// metadata, as persisted and exported. The JSON field names match the backup
// files produced by earlier releases, so old exports import cleanly.
type Snapshot struct {
	Challenges  []Challenge `json:"challenges"`
	LastUpdated time.Time   `json:"lastUpdated"`
	Version     string      `json:"version"`
}
