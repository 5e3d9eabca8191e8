package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/artvault/internal/domain/activity"
	"github.com/stretchr/testify/require"
)

func newEntry(typ activity.Type, summary string, at time.Time) *activity.Entry {
	return &activity.Entry{
		ID:        uuid.NewString(),
		Type:      typ,
		Summary:   summary,
		CreatedAt: at,
	}
}

func TestActivityRepository_LogList(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewActivityRepository(db)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	index := 2
	entry1 := newEntry(activity.TypeRecordAdded, "Added Mona", base)
	entry1.Index = &index
	entry1.RecordName = "Mona"
	entry2 := newEntry(activity.TypeUndo, "Undid add", base.Add(time.Second))

	require.NoError(t, repo.Log(ctx, entry1))
	require.NoError(t, repo.Log(ctx, entry2))

	entries, err := repo.List(ctx, activity.ListOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, entry2.ID, entries[0].ID)
	require.Nil(t, entries[0].Index)

	require.Equal(t, entry1.ID, entries[1].ID)
	require.Equal(t, activity.TypeRecordAdded, entries[1].Type)
	require.NotNil(t, entries[1].Index)
	require.Equal(t, 2, *entries[1].Index)
	require.Equal(t, "Mona", entries[1].RecordName)
	require.True(t, base.Equal(entries[1].CreatedAt))
}

func TestActivityRepository_FiltersAndPaging(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewActivityRepository(db)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		typ := activity.TypeRecordAdded
		if i%2 == 1 {
			typ = activity.TypeCatalogSaved
		}
		require.NoError(t, repo.Log(ctx, newEntry(typ, "entry", base.Add(time.Duration(i)*time.Second))))
	}

	saved := activity.TypeCatalogSaved
	entries, err := repo.List(ctx, activity.ListOptions{Type: &saved})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		require.Equal(t, activity.TypeCatalogSaved, e.Type)
	}

	entries, err = repo.List(ctx, activity.ListOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	entries, err = repo.List(ctx, activity.ListOptions{Offset: 3})
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestActivityRepository_StampsMissingTime(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActivityRepository(db)

	entry := &activity.Entry{ID: uuid.NewString(), Type: activity.TypeRedo, Summary: "redo"}
	require.NoError(t, repo.Log(context.Background(), entry))
	require.False(t, entry.CreatedAt.IsZero())
}
