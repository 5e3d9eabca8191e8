package codec

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rpggio/artvault/internal/domain/art"
	"github.com/rpggio/artvault/internal/repository"
)

// FileBackend persists a catalog to a single file through a Codec.
type FileBackend struct {
	codec Codec
}

var _ repository.Backend = (*FileBackend)(nil)

// NewFileBackend creates a backend that reads and writes files with codec.
func NewFileBackend(codec Codec) *FileBackend {
	return &FileBackend{codec: codec}
}

// NewFileBackendForPath picks the codec from the extension of path.
func NewFileBackendForPath(path string) (*FileBackend, error) {
	c, err := ForPath(path)
	if err != nil {
		return nil, err
	}
	return NewFileBackend(c), nil
}

// Name returns the codec format.
func (b *FileBackend) Name() string {
	return b.codec.Format()
}

// Load decodes the file at path. A missing file wraps os.ErrNotExist.
func (b *FileBackend) Load(ctx context.Context, path string) ([]*art.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	records, err := b.codec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", b.codec.Format(), err)
	}
	return records, nil
}

// Save encodes records into a temporary file next to path and renames it
// over path, so a failed save leaves the previous file intact.
func (b *FileBackend) Save(ctx context.Context, path string, records []*art.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if err := b.codec.Encode(tmp, records); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("failed to encode %s: %w", b.codec.Format(), err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("failed to replace catalog: %w", err)
	}
	return nil
}
