package catalog_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rpggio/artvault/internal/codec"
	"github.com/rpggio/artvault/internal/domain/activity"
	"github.com/rpggio/artvault/internal/domain/art"
	"github.com/rpggio/artvault/internal/domain/catalog"
	"github.com/rpggio/artvault/internal/metrics"
	"github.com/rpggio/artvault/internal/repository"
	"github.com/rpggio/artvault/internal/repository/mocks"
	"github.com/rpggio/artvault/internal/store"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingActivities returns an activity service backed by a mock that
// remembers every logged type.
func recordingActivities(t *testing.T) (*activity.Service, *[]activity.Type) {
	t.Helper()
	var logged []activity.Type
	repo := &mocks.ActivityRepository{}
	repo.On("Log", mock.Anything, mock.AnythingOfType("*activity.Entry")).
		Run(func(args mock.Arguments) {
			logged = append(logged, args.Get(1).(*activity.Entry).Type)
		}).
		Return(nil)
	return activity.NewService(repo, nil), &logged
}

func painting(name string, price float64) catalog.RecordInput {
	return catalog.RecordInput{Kind: "Painting", Name: name, Price: price, Location: "Hall", CanvasType: "Linen"}
}

func TestService_AddEditRemoveWithHistory(t *testing.T) {
	ctx := context.Background()
	activities, logged := recordingActivities(t)
	svc := catalog.NewService(store.NewMemory(), catalog.Options{Activities: activities})

	a, err := svc.Add(ctx, painting("A", 10))
	require.NoError(t, err)
	_, err = svc.Add(ctx, painting("B", 20))
	require.NoError(t, err)

	edited, err := svc.Edit(ctx, 0, catalog.RecordInput{Kind: "Sculpture", Name: "A2", Price: 11, Material: "Clay"})
	require.NoError(t, err)
	got, err := svc.Get(ctx, 0)
	require.NoError(t, err)
	require.Same(t, edited, got)

	removed, err := svc.Remove(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "B", removed.Name)

	st := svc.Status(ctx)
	require.Equal(t, 1, st.Size)
	require.Equal(t, 4, st.UndoDepth)
	require.True(t, st.CanUndo)
	require.False(t, st.CanRedo)
	require.Equal(t, `remove #1 "B"`, st.NextUndo)
	require.Equal(t, "memory", st.Backend)

	ok, err := svc.Undo(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = svc.Undo(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	got, err = svc.Get(ctx, 0)
	require.NoError(t, err)
	require.Same(t, a, got)

	ok, err = svc.Redo(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, svc.Status(ctx).RedoDepth)
	require.True(t, svc.Status(ctx).CanRedo)

	require.Equal(t, []activity.Type{
		activity.TypeRecordAdded,
		activity.TypeRecordAdded,
		activity.TypeRecordEdited,
		activity.TypeRecordRemoved,
		activity.TypeUndo,
		activity.TypeUndo,
		activity.TypeRedo,
	}, *logged)
}

func TestService_UndoRedoOnEmptyHistory(t *testing.T) {
	ctx := context.Background()
	svc := catalog.NewService(store.NewMemory(), catalog.Options{})

	ok, err := svc.Undo(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = svc.Redo(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestService_OutOfRangeAndInvalidInput(t *testing.T) {
	ctx := context.Background()
	svc := catalog.NewService(store.NewMemory(), catalog.Options{})
	_, err := svc.Add(ctx, painting("Only", 1))
	require.NoError(t, err)

	_, err = svc.Get(ctx, 1)
	require.ErrorIs(t, err, catalog.ErrRecordNotFound)
	_, err = svc.Edit(ctx, 1, painting("X", 1))
	require.ErrorIs(t, err, catalog.ErrRecordNotFound)
	_, err = svc.Remove(ctx, -1)
	require.ErrorIs(t, err, catalog.ErrRecordNotFound)

	_, err = svc.Add(ctx, catalog.RecordInput{Kind: "Painting", Price: 1})
	require.ErrorIs(t, err, catalog.ErrInvalidInput)
	require.ErrorIs(t, err, art.ErrInvalidInput)

	_, err = svc.Add(ctx, catalog.RecordInput{Kind: "Tapestry", Name: "Bayeux"})
	require.ErrorIs(t, err, catalog.ErrInvalidInput)
	require.ErrorIs(t, err, art.ErrUnknownKind)

	_, err = svc.Add(ctx, catalog.RecordInput{Name: "Neg", Price: -5})
	require.ErrorIs(t, err, catalog.ErrInvalidInput)

	require.Equal(t, 1, svc.Status(ctx).Size)
	require.Equal(t, 1, svc.Status(ctx).UndoDepth)
}

func TestService_ListAppliesFilter(t *testing.T) {
	ctx := context.Background()
	svc := catalog.NewService(store.NewMemory(), catalog.Options{})
	for _, in := range []catalog.RecordInput{painting("Cheap", 5), painting("Mid", 50), painting("Dear", 500)} {
		_, err := svc.Add(ctx, in)
		require.NoError(t, err)
	}

	all := svc.List(ctx, art.Filter{})
	require.Len(t, all.Entries, 3)
	require.Equal(t, 3, all.Total)

	listing := svc.List(ctx, art.Filter{Name: "  mid "})
	require.Len(t, listing.Entries, 1)
	require.Equal(t, 3, listing.Total)
	entries := listing.Entries
	require.Equal(t, 1, entries[0].Index)

	lo := 10.0
	entries = svc.List(ctx, art.Filter{MinPrice: &lo}).Entries
	require.Len(t, entries, 2)
	require.Equal(t, 1, entries[0].Index)
	require.Equal(t, 2, entries[1].Index)
}

func TestService_SaveLoadResetsHistory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.json")
	activities, logged := recordingActivities(t)
	m, err := metrics.New()
	require.NoError(t, err)

	repo := store.NewFile(codec.NewFileBackend(codec.NewJSONCodec()), nil)
	svc := catalog.NewService(repo, catalog.Options{Activities: activities, Metrics: m, DefaultPath: path})

	_, err = svc.Add(ctx, painting("Kept", 1))
	require.NoError(t, err)
	saved, err := svc.Save(ctx, "")
	require.NoError(t, err)
	require.Equal(t, path, saved)

	_, err = svc.Add(ctx, painting("Unsaved", 2))
	require.NoError(t, err)

	_, err = svc.Load(ctx, path)
	require.NoError(t, err)

	st := svc.Status(ctx)
	require.Equal(t, 1, st.Size)
	require.Zero(t, st.UndoDepth)
	require.False(t, st.CanUndo)
	require.Equal(t, "json", st.Backend)

	ok, err := svc.Undo(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	require.Contains(t, *logged, activity.TypeCatalogSaved)
	require.Contains(t, *logged, activity.TypeCatalogLoaded)
}

func TestService_LoadFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	repo := store.NewFile(codec.NewFileBackend(codec.NewJSONCodec()), nil)
	svc := catalog.NewService(repo, catalog.Options{})
	_, err := svc.Add(ctx, painting("Stay", 1))
	require.NoError(t, err)

	_, err = svc.Load(ctx, filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, repository.ErrPersistence)
	require.Equal(t, 1, svc.Status(ctx).Size)
	require.Equal(t, 1, svc.Status(ctx).UndoDepth)
}

func TestService_MemoryPersistenceIsUnsupported(t *testing.T) {
	ctx := context.Background()
	svc := catalog.NewService(store.NewMemory(), catalog.Options{})

	_, err := svc.Save(ctx, "x.json")
	require.ErrorIs(t, err, repository.ErrUnsupported)
	_, err = svc.Load(ctx, "x.json")
	require.ErrorIs(t, err, repository.ErrUnsupported)

	_, err = svc.Save(ctx, "")
	require.ErrorIs(t, err, catalog.ErrInvalidInput)
}

func TestService_ActivityFailureDoesNotFailAction(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ActivityRepository{}
	repo.On("Log", mock.Anything, mock.Anything).Return(errors.New("disk full"))
	svc := catalog.NewService(store.NewMemory(), catalog.Options{Activities: activity.NewService(repo, nil)})

	_, err := svc.Add(ctx, painting("A", 1))
	require.NoError(t, err)
	require.Equal(t, 1, svc.Status(ctx).Size)
}

func TestRecordInput_RoundTrip(t *testing.T) {
	rec := art.NewDigitalArt(art.Base{Name: "Grid", Price: 3}, "Blender", 800, 600)
	back, err := catalog.InputFrom(rec).Build()
	require.NoError(t, err)
	require.True(t, rec.Equal(back))
	require.NotSame(t, rec, back)
}
