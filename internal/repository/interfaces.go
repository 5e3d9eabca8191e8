package repository

import (
	"context"

	"github.com/rpggio/artvault/internal/domain/art"
)

// Repository is an ordered, index-addressed collection of art records.
// Indices are zero-based and shift down by one after a removal. Get, Update
// and Remove report failure for any index outside [0, Size()) without
// changing state.
type Repository interface {
	// Add appends rec at the end.
	Add(rec *art.Record)
	// Update replaces the record at index.
	Update(index int, rec *art.Record) bool
	// Remove erases the record at index, shifting later records left.
	Remove(index int) bool
	// Get returns the record at index, or nil.
	Get(index int) *art.Record
	Size() int
	Clear()

	// LoadFromFile replaces the whole collection with the contents of path.
	// On failure the collection is left as it was.
	LoadFromFile(ctx context.Context, path string) error
	// SaveToFile writes the collection, in order, to path.
	SaveToFile(ctx context.Context, path string) error
}

// Backend reads and writes a complete ordered record set at a location.
type Backend interface {
	Name() string
	Load(ctx context.Context, path string) ([]*art.Record, error)
	Save(ctx context.Context, path string, records []*art.Record) error
}

// Records returns the repository contents in index order.
func Records(repo Repository) []*art.Record {
	out := make([]*art.Record, 0, repo.Size())
	for i := 0; i < repo.Size(); i++ {
		out = append(out, repo.Get(i))
	}
	return out
}

// IndexOf returns the index holding exactly rec (pointer identity), or -1.
func IndexOf(repo Repository, rec *art.Record) int {
	for i := 0; i < repo.Size(); i++ {
		if repo.Get(i) == rec {
			return i
		}
	}
	return -1
}
