// Package storage persists the full challenge snapshot under a single
// well-known key and implements backup export/import. The store treats every
// gateway failure as non-fatal: the in-memory collection is the source of
// truth for a running session.
package storage

import (
	"strings"

	"github.com/learntrack/learntrack/internal/models"
)

// Gateway loads and saves the snapshot as one serialized blob.
type Gateway interface {
	// Init prepares the backing store (directories, schema). It is safe to
	// call on an already-initialized store.
	Init() error

	// Save overwrites the stored snapshot.
	Save(models.Snapshot) error

	// Load returns the stored snapshot. ok is false when nothing is stored;
	// malformed stored data fails closed: it is logged and reported as
	// absent, never as a parse error.
	Load() (snap models.Snapshot, ok bool, err error)

	// Clear deletes the stored snapshot entirely.
	Clear() error

	// Path returns the location of the backing store, for display and
	// diagnostics.
	Path() string

	Close() error
}

// ForPath picks a gateway for the given data path: a plain JSON file when the
// path ends in .json, SQLite otherwise.
func ForPath(path string) Gateway {
	if strings.HasSuffix(path, ".json") {
		return NewFileGateway(path)
	}
	return NewSQLiteGateway(path)
}
