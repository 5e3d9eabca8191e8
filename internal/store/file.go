package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rpggio/artvault/internal/repository"
)

// FileRepository keeps records in memory and persists them through a
// backend. CRUD behaves exactly like MemoryRepository.
type FileRepository struct {
	slots
	backend repository.Backend
	logger  *slog.Logger
}

// NewFile creates an empty repository persisted by backend.
func NewFile(backend repository.Backend, logger *slog.Logger) *FileRepository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FileRepository{backend: backend, logger: logger}
}

// Backend returns the backend name.
func (r *FileRepository) Backend() string {
	return r.backend.Name()
}

// LoadFromFile replaces all records with the set read from path. The
// current records are kept when the backend fails.
func (r *FileRepository) LoadFromFile(ctx context.Context, path string) error {
	records, err := r.backend.Load(ctx, path)
	if err != nil {
		r.logger.Warn("catalog load failed", "backend", r.backend.Name(), "path", path, "error", err)
		return fmt.Errorf("%w: load %s: %w", repository.ErrPersistence, path, err)
	}
	r.replace(records)
	r.logger.Info("catalog loaded", "backend", r.backend.Name(), "path", path, "records", len(records))
	return nil
}

// SaveToFile writes the current records, in order, to path.
func (r *FileRepository) SaveToFile(ctx context.Context, path string) error {
	records := r.snapshot()
	if err := r.backend.Save(ctx, path, records); err != nil {
		r.logger.Warn("catalog save failed", "backend", r.backend.Name(), "path", path, "error", err)
		return fmt.Errorf("%w: save %s: %w", repository.ErrPersistence, path, err)
	}
	r.logger.Info("catalog saved", "backend", r.backend.Name(), "path", path, "records", len(records))
	return nil
}

var _ repository.Repository = (*FileRepository)(nil)
