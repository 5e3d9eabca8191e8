package store_test

import (
	"context"
	"testing"

	"github.com/rpggio/artvault/internal/domain/art"
	"github.com/rpggio/artvault/internal/repository"
	"github.com/rpggio/artvault/internal/store"
	"github.com/stretchr/testify/require"
)

func piece(name string) *art.Record {
	return art.NewPainting(art.Base{Name: name, Price: 1}, "Canvas")
}

func TestMemoryRepository_CRUD(t *testing.T) {
	repo := store.NewMemory()
	require.Equal(t, 0, repo.Size())

	a, b, c := piece("A"), piece("B"), piece("C")
	repo.Add(a)
	repo.Add(b)
	repo.Add(c)
	require.Equal(t, 3, repo.Size())
	require.Same(t, b, repo.Get(1))

	replacement := piece("B2")
	require.True(t, repo.Update(1, replacement))
	require.Same(t, replacement, repo.Get(1))

	require.True(t, repo.Remove(0))
	require.Equal(t, 2, repo.Size())
	require.Same(t, replacement, repo.Get(0))
	require.Same(t, c, repo.Get(1))

	repo.Clear()
	require.Equal(t, 0, repo.Size())
	require.Nil(t, repo.Get(0))
}

func TestMemoryRepository_OutOfRange(t *testing.T) {
	repo := store.NewMemory()
	repo.Add(piece("only"))

	size := repo.Size()
	require.Nil(t, repo.Get(size))
	require.False(t, repo.Update(size, piece("x")))
	require.False(t, repo.Remove(size))
	require.Nil(t, repo.Get(-1))
	require.False(t, repo.Update(-1, piece("x")))
	require.False(t, repo.Remove(-1))

	require.Equal(t, 1, repo.Size())
	require.Equal(t, "only", repo.Get(0).Name)
}

func TestMemoryRepository_PersistenceUnsupported(t *testing.T) {
	repo := store.NewMemory()
	ctx := context.Background()
	require.ErrorIs(t, repo.LoadFromFile(ctx, "catalog.json"), repository.ErrUnsupported)
	require.ErrorIs(t, repo.SaveToFile(ctx, "catalog.json"), repository.ErrUnsupported)
}

func TestRecordsAndIndexOf(t *testing.T) {
	repo := store.NewMemory()
	a, twin := piece("Same"), piece("Same")
	repo.Add(a)
	repo.Add(twin)

	require.Equal(t, []*art.Record{a, twin}, repository.Records(repo))
	require.Equal(t, 1, repository.IndexOf(repo, twin))
	require.Equal(t, -1, repository.IndexOf(repo, piece("Same")))
}
