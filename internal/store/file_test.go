package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/artvault/internal/domain/art"
	"github.com/rpggio/artvault/internal/repository"
	"github.com/rpggio/artvault/internal/repository/mocks"
	"github.com/rpggio/artvault/internal/store"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFileRepository_LoadReplacesContents(t *testing.T) {
	ctx := context.Background()
	backend := &mocks.Backend{}
	backend.On("Name").Return("mock")
	loaded := []*art.Record{piece("X"), piece("Y")}
	backend.On("Load", ctx, "cat.json").Return(loaded, nil)

	repo := store.NewFile(backend, nil)
	repo.Add(piece("stale"))

	require.NoError(t, repo.LoadFromFile(ctx, "cat.json"))
	require.Equal(t, 2, repo.Size())
	require.Same(t, loaded[0], repo.Get(0))
	require.Same(t, loaded[1], repo.Get(1))
}

func TestFileRepository_LoadFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	backend := &mocks.Backend{}
	backend.On("Name").Return("mock")
	backend.On("Load", ctx, "bad.json").Return(nil, repository.ErrMalformed)

	repo := store.NewFile(backend, nil)
	keep := piece("keep")
	repo.Add(keep)

	err := repo.LoadFromFile(ctx, "bad.json")
	require.ErrorIs(t, err, repository.ErrPersistence)
	require.ErrorIs(t, err, repository.ErrMalformed)
	require.Equal(t, 1, repo.Size())
	require.Same(t, keep, repo.Get(0))
}

func TestFileRepository_SavePassesOrderedSnapshot(t *testing.T) {
	ctx := context.Background()
	backend := &mocks.Backend{}
	backend.On("Name").Return("mock")

	a, b := piece("A"), piece("B")
	backend.On("Save", ctx, "out.csv", []*art.Record{a, b}).Return(nil)

	repo := store.NewFile(backend, nil)
	repo.Add(a)
	repo.Add(b)
	require.NoError(t, repo.SaveToFile(ctx, "out.csv"))
	backend.AssertExpectations(t)
}

func TestFileRepository_SaveFailure(t *testing.T) {
	ctx := context.Background()
	backend := &mocks.Backend{}
	backend.On("Name").Return("mock")
	backend.On("Save", ctx, "ro.csv", mock.Anything).Return(errors.New("read-only"))

	repo := store.NewFile(backend, nil)
	require.ErrorIs(t, repo.SaveToFile(ctx, "ro.csv"), repository.ErrPersistence)
	require.Equal(t, "mock", repo.Backend())
}
