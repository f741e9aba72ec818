package storage

import "github.com/learntrack/learntrack/internal/models"

// MemoryGateway is an in-memory Gateway for tests.
type MemoryGateway struct {
	// SaveErr, when set, is returned from Save to exercise the store's
	// fire-and-forget persistence.
	SaveErr error

	// SaveCount tracks how many times Save was called.
	SaveCount int

	snap   models.Snapshot
	stored bool
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{}
}

// Seed pre-populates the gateway, as if a previous session had saved snap.
func (g *MemoryGateway) Seed(snap models.Snapshot) {
	g.snap = snap
	g.stored = true
}

func (g *MemoryGateway) Path() string { return "memory" }

func (g *MemoryGateway) Init() error { return nil }

func (g *MemoryGateway) Save(snap models.Snapshot) error {
	g.SaveCount++
	if g.SaveErr != nil {
		return g.SaveErr
	}
	g.snap = snap
	g.stored = true
	return nil
}

func (g *MemoryGateway) Load() (models.Snapshot, bool, error) {
	if !g.stored {
		return models.Snapshot{}, false, nil
	}
	return g.snap, true, nil
}

func (g *MemoryGateway) Clear() error {
	g.snap = models.Snapshot{}
	g.stored = false
	return nil
}

func (g *MemoryGateway) Close() error { return nil }
