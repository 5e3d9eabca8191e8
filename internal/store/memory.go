package store

import (
	"context"

	"github.com/rpggio/artvault/internal/repository"
)

// MemoryRepository keeps records in memory only. It has no backing store:
// LoadFromFile and SaveToFile always fail with repository.ErrUnsupported.
type MemoryRepository struct {
	slots
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *MemoryRepository {
	return &MemoryRepository{}
}

// Backend names the storage in use.
func (r *MemoryRepository) Backend() string {
	return "memory"
}

func (r *MemoryRepository) LoadFromFile(_ context.Context, _ string) error {
	return repository.ErrUnsupported
}

func (r *MemoryRepository) SaveToFile(_ context.Context, _ string) error {
	return repository.ErrUnsupported
}

var _ repository.Repository = (*MemoryRepository)(nil)
