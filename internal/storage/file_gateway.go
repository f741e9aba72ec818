package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/learntrack/learntrack/internal/errors"
	"github.com/learntrack/learntrack/internal/logger"
	"github.com/learntrack/learntrack/internal/models"
)

// FileGateway stores the snapshot as one pretty-printed JSON file. The file
// is human-readable and has the same shape as an exported backup.
type FileGateway struct {
	path string
}

func NewFileGateway(path string) *FileGateway {
	return &FileGateway{path: path}
}

func (g *FileGateway) Path() string { return g.path }

func (g *FileGateway) Init() error {
	if err := os.MkdirAll(filepath.Dir(g.path), 0700); err != nil {
		return apperrors.Persistence("init", fmt.Errorf("failed to create config directory: %w", err))
	}
	return nil
}

func (g *FileGateway) Save(snap models.Snapshot) error {
	if err := g.Init(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return apperrors.Persistence("encode", err)
	}
	if err := os.WriteFile(g.path, data, 0600); err != nil {
		return apperrors.Persistence("write", err)
	}
	return nil
}

func (g *FileGateway) Load() (models.Snapshot, bool, error) {
	data, err := os.ReadFile(g.path)
	if os.IsNotExist(err) {
		return models.Snapshot{}, false, nil
	}
	if err != nil {
		return models.Snapshot{}, false, apperrors.Persistence("read", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// Fails closed: corrupt stored data behaves like no data at all.
		logger.Warn("Stored snapshot is malformed, treating as empty", "error", err)
		return models.Snapshot{}, false, nil
	}
	return snap, true, nil
}

func (g *FileGateway) Clear() error {
	err := os.Remove(g.path)
	if err != nil && !os.IsNotExist(err) {
		return apperrors.Persistence("clear", err)
	}
	return nil
}

func (g *FileGateway) Close() error { return nil }
