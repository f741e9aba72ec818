package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/learntrack/learntrack/internal/constants"
	apperrors "github.com/learntrack/learntrack/internal/errors"
	"github.com/learntrack/learntrack/internal/logger"
	"github.com/learntrack/learntrack/internal/models"
)

// ExportSnapshot writes a pretty-printed backup of the snapshot into dir and
// returns the path. The file is named learning-tracker-backup-<date>.json.
func ExportSnapshot(snap models.Snapshot, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", apperrors.Persistence("export", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", apperrors.Persistence("encode", err)
	}

	name := fmt.Sprintf("%s%s%s", constants.BackupFilePrefix, now.Format(constants.DateFormat), constants.BackupFileSuffix)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", apperrors.Persistence("write", err)
	}
	return path, nil
}

// ImportSnapshot reads a backup file, persists it through the gateway, and
// returns the parsed snapshot. A file that is not valid snapshot data yields
// an ImportFormatError and nothing is persisted; a failed save after a
// successful parse is logged but does not fail the import, since the caller
// replaces the in-memory collection either way.
func ImportSnapshot(path string, gw Gateway) (models.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Snapshot{}, apperrors.Persistence("read", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.Snapshot{}, apperrors.ImportFormat(err)
	}
	if snap.Challenges == nil {
		return models.Snapshot{}, apperrors.ImportFormat(errors.New("no challenges field in file"))
	}

	if err := gw.Save(snap); err != nil {
		logger.Warn("Saving imported data failed", "error", err)
	}
	return snap, nil
}
