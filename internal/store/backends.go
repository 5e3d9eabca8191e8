package store

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/rpggio/artvault/internal/codec"
	"github.com/rpggio/artvault/internal/repository"
	"github.com/rpggio/artvault/internal/sqlite"
)

// BackendByName returns the persistence backend registered under name:
// csv, json, yaml or sqlite.
func BackendByName(name string) (repository.Backend, error) {
	switch strings.ToLower(name) {
	case "sqlite", "db":
		return sqlite.NewSnapshotBackend(), nil
	default:
		c, err := codec.ByFormat(name)
		if err != nil {
			return nil, err
		}
		return codec.NewFileBackend(c), nil
	}
}

// BackendForPath picks a backend from the extension of path. .db and
// .sqlite select the SQLite snapshot backend.
func BackendForPath(path string) (repository.Backend, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".db", ".sqlite":
		return sqlite.NewSnapshotBackend(), nil
	default:
		return codec.NewFileBackendForPath(path)
	}
}

// Open returns the repository for a configured backend name. The memory
// backend has no path; every other backend is file-backed.
func Open(backend string, logger *slog.Logger) (repository.Repository, error) {
	if backend == "memory" {
		return NewMemory(), nil
	}
	b, err := BackendByName(backend)
	if err != nil {
		return nil, err
	}
	return NewFile(b, logger), nil
}
