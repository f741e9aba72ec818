package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/learntrack/learntrack/internal/constants"
	apperrors "github.com/learntrack/learntrack/internal/errors"
	"github.com/learntrack/learntrack/internal/logger"
	"github.com/learntrack/learntrack/internal/models"
)

// SQLiteGateway stores the snapshot as a single row in a key/value table,
// keyed by constants.StorageKey.
type SQLiteGateway struct {
	path string
	db   *sql.DB
}

func NewSQLiteGateway(path string) *SQLiteGateway {
	return &SQLiteGateway{path: path}
}

func (g *SQLiteGateway) Path() string { return g.path }

func (g *SQLiteGateway) Init() error {
	if err := g.ensure(); err != nil {
		return err
	}
	return nil
}

// ensure opens the database and creates the schema if needed. Save and Load
// call it lazily so the gateway works without an explicit init step.
func (g *SQLiteGateway) ensure() error {
	if g.db != nil {
		return nil
	}

	dir := filepath.Dir(g.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return apperrors.Persistence("init", fmt.Errorf("failed to create config directory: %w", err))
	}

	db, err := sql.Open("sqlite", g.path)
	if err != nil {
		return apperrors.Persistence("open", fmt.Errorf("failed to open database: %w", err))
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS store (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return apperrors.Persistence("init", fmt.Errorf("failed to create schema: %w", err))
	}

	g.db = db
	return nil
}

func (g *SQLiteGateway) Save(snap models.Snapshot) error {
	if err := g.ensure(); err != nil {
		return err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return apperrors.Persistence("encode", err)
	}

	_, err = g.db.Exec(
		`INSERT INTO store (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		constants.StorageKey, string(data),
	)
	if err != nil {
		return apperrors.Persistence("write", err)
	}
	return nil
}

func (g *SQLiteGateway) Load() (models.Snapshot, bool, error) {
	if _, err := os.Stat(g.path); os.IsNotExist(err) {
		return models.Snapshot{}, false, nil
	}
	if err := g.ensure(); err != nil {
		return models.Snapshot{}, false, err
	}

	var raw string
	err := g.db.QueryRow(`SELECT value FROM store WHERE key = ?`, constants.StorageKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Snapshot{}, false, nil
	}
	if err != nil {
		return models.Snapshot{}, false, apperrors.Persistence("read", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		// Fails closed: corrupt stored data behaves like no data at all.
		logger.Warn("Stored snapshot is malformed, treating as empty", "error", err)
		return models.Snapshot{}, false, nil
	}
	return snap, true, nil
}

func (g *SQLiteGateway) Clear() error {
	if _, err := os.Stat(g.path); os.IsNotExist(err) {
		return nil
	}
	if err := g.ensure(); err != nil {
		return err
	}
	if _, err := g.db.Exec(`DELETE FROM store WHERE key = ?`, constants.StorageKey); err != nil {
		return apperrors.Persistence("clear", err)
	}
	return nil
}

func (g *SQLiteGateway) Close() error {
	if g.db != nil {
		err := g.db.Close()
		g.db = nil
		return err
	}
	return nil
}
