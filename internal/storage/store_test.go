package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *NoteDatabase {
	t.Helper()

	store, err := OpenNoteDatabase(context.Background(), filepath.Join(t.TempDir(), "NoteDB.db"), ModeEphemeral)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

func TestNoteDatabase_KnowledgeBaseRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	kb := &KnowledgeBase{Name: "Math"}
	ok, err := store.AddKnowledgeBase(ctx, kb)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := store.FetchKnowledgeBase(ctx, "Math")
	require.NoError(t, err)
	assert.True(t, got.Found())
	assert.True(t, got.Value.EqualsByNaturalKey(*kb))

	t.Run("duplicate add is a soft failure", func(t *testing.T) {
		ok, err := store.AddKnowledgeBase(ctx, &KnowledgeBase{Name: "Math"})
		require.NoError(t, err)
		assert.False(t, ok)

		all, err := store.FetchAllKnowledgeBases(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("invalid and missing names", func(t *testing.T) {
		empty, err := store.FetchKnowledgeBase(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, InvalidInput, empty.Status)

		missing, err := store.FetchKnowledgeBase(ctx, "nonexistent")
		require.NoError(t, err)
		assert.Equal(t, NotFound, missing.Status)
		assert.Equal(t, VoidKnowledgeBase, missing.Value)
	})

	t.Run("delete missing is a no-op", func(t *testing.T) {
		deleted, err := store.DeleteKnowledgeBase(ctx, "nonexistent")
		require.NoError(t, err)
		assert.True(t, deleted.IsVoid())
	})
}

func TestNoteDatabase_FetchAllKnowledgeBases_Empty(t *testing.T) {
	store := setupTestStore(t)

	all, err := store.FetchAllKnowledgeBases(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestNoteDatabase_FetchNotesByDirectory(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	directories := []string{"Math", "Physics", "History"}
	want := make(map[string]map[NoteKey]Note)

	for _, dir := range directories {
		ok, err := store.AddKnowledgeBase(ctx, &KnowledgeBase{Name: dir})
		require.NoError(t, err)
		require.True(t, ok)

		want[dir] = make(map[NoteKey]Note)
		for i := 0; i < 4; i++ {
			note := &Note{
				Title:     fmt.Sprintf("%s note %d", dir, i),
				Content:   fmt.Sprintf("content %d", i),
				Directory: dir,
			}
			ok, err := store.AddNote(ctx, note)
			require.NoError(t, err)
			require.True(t, ok)
			want[dir][note.Key()] = *note
		}
	}

	for _, dir := range directories {
		notes, err := store.FetchNotes(ctx, dir)
		require.NoError(t, err)

		got := make(map[NoteKey]Note, len(notes))
		for _, n := range notes {
			got[n.Key()] = n
		}
		assert.Equal(t, want[dir], got, "notes in %s", dir)
	}
}

func TestNoteDatabase_TriangleScenario(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	ok, err := store.AddKnowledgeBase(ctx, &KnowledgeBase{Name: "Math"})
	require.NoError(t, err)
	require.True(t, ok)

	triangle := &Note{Title: "Triangle", Content: "", Directory: "Math"}
	ok, err = store.AddNote(ctx, triangle)
	require.NoError(t, err)
	require.True(t, ok)

	fetched, err := store.FetchNote(ctx, "Math", "Triangle")
	require.NoError(t, err)
	require.True(t, fetched.Found())
	assert.True(t, fetched.Value.EqualsByNaturalKey(*triangle))

	_, err = store.AddNote(ctx, &Note{Title: "Triangle", Directory: "Math"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	deleted, err := store.DeleteNote(ctx, "Math", "Triangle")
	require.NoError(t, err)
	assert.Equal(t, fetched.Value, deleted)

	after, err := store.FetchNote(ctx, "Math", "Triangle")
	require.NoError(t, err)
	assert.Equal(t, NotFound, after.Status)
	assert.Equal(t, VoidNote, after.Value)
}

func TestNoteDatabase_OrphanNotes(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	ok, err := store.AddKnowledgeBase(ctx, &KnowledgeBase{Name: "Math"})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.AddNote(ctx, &Note{Title: "Triangle", Directory: "Math"})
	require.NoError(t, err)
	require.True(t, ok)

	// A note may point at a knowledge base that never existed
	ok, err = store.AddNote(ctx, &Note{Title: "Lost", Directory: "Nowhere"})
	require.NoError(t, err)
	require.True(t, ok)

	_, err = store.DeleteKnowledgeBase(ctx, "Math")
	require.NoError(t, err)

	notes, err := store.FetchNotes(ctx, "Math")
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	lost, err := store.FetchNote(ctx, "Nowhere", "Lost")
	require.NoError(t, err)
	assert.True(t, lost.Found())
}

func TestNoteDatabase_Ping(t *testing.T) {
	store := setupTestStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}
