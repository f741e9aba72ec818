package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/learntrack/learntrack/internal/models"
)

func testSnapshot() models.Snapshot {
	return models.Snapshot{
		Challenges: []models.Challenge{
			{
				ID:        "c1",
				Title:     "Daily Practice",
				TotalDays: 7,
				StartDate: "2024-03-01",
				Entries:   map[int]string{1: "learned about interfaces", 2: "wrote tests"},
				CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
			},
		},
		LastUpdated: time.Date(2024, 3, 2, 18, 30, 0, 0, time.UTC),
		Version:     "1.0",
	}
}

func TestFileGatewayRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "learntrack.json")
	gw := NewFileGateway(path)

	if err := gw.Save(testSnapshot()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	snap, ok, err := gw.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !ok {
		t.Fatal("Load() reported nothing stored after a save")
	}
	if len(snap.Challenges) != 1 {
		t.Fatalf("loaded %d challenges, want 1", len(snap.Challenges))
	}
	c := snap.Challenges[0]
	if c.Title != "Daily Practice" || c.Entries[2] != "wrote tests" {
		t.Errorf("loaded challenge does not match saved data: %+v", c)
	}
	if snap.Version != "1.0" {
		t.Errorf("version = %q, want 1.0", snap.Version)
	}
}

func TestFileGatewayLoadNothingStored(t *testing.T) {
	gw := NewFileGateway(filepath.Join(t.TempDir(), "learntrack.json"))

	_, ok, err := gw.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ok {
		t.Error("Load() reported stored data for a missing file")
	}
}

func TestFileGatewayMalformedDataFailsClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "learntrack.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	gw := NewFileGateway(path)

	_, ok, err := gw.Load()
	if err != nil {
		t.Errorf("Load() of malformed data returned error %v, want absent result", err)
	}
	if ok {
		t.Error("Load() of malformed data reported stored data")
	}
}

func TestFileGatewayClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "learntrack.json")
	gw := NewFileGateway(path)

	if err := gw.Save(testSnapshot()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := gw.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, ok, _ := gw.Load(); ok {
		t.Error("data survived Clear")
	}

	// Clearing again is fine.
	if err := gw.Clear(); err != nil {
		t.Errorf("Clear() on empty store error = %v", err)
	}
}

func TestFileGatewaySaveCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "learntrack.json")
	gw := NewFileGateway(path)

	if err := gw.Save(testSnapshot()); err != nil {
		t.Fatalf("Save() into a missing directory error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}
