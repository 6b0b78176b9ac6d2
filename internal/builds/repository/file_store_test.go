package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeapk/apk-builder-backend/internal/builds/domain"
	"github.com/forgeapk/apk-builder-backend/internal/catalog"
	"github.com/forgeapk/apk-builder-backend/internal/classify"
)

func testRecord(id string) *domain.ProjectRecord {
	return domain.NewProjectRecord(id, "todo list with dark mode", classify.Classification{
		Archetype:   catalog.ArchetypeTodo,
		Features:    []catalog.Feature{catalog.FeatureDarkMode},
		PackageName: "com.forge.todo.list.with",
	})
}

func TestFileStore_PutGet(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	record := testRecord("abc12345")
	require.NoError(t, store.Put(ctx, record))

	got, err := store.Get(ctx, "abc12345")
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, domain.StatusReceived, got.Status)
	assert.Equal(t, catalog.ArchetypeTodo, got.Archetype)
	assert.Equal(t, record.Features, got.Features)
}

func TestFileStore_GetUnknown(t *testing.T) {
	store := NewFileStore(t.TempDir())

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestFileStore_PutReplaces(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	record := testRecord("abc12345")
	require.NoError(t, store.Put(ctx, record))

	record.Status = domain.StatusGenerated
	record.Progress = 50
	require.NoError(t, store.Put(ctx, record))

	got, err := store.Get(ctx, "abc12345")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusGenerated, got.Status)
	assert.Equal(t, 50, got.Progress)

	// no temp files are left behind by the atomic replace
	entries, err := os.ReadDir(store.ProjectDir("abc12345"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "metadata.json", entries[0].Name())
}

func TestFileStore_List(t *testing.T) {
	root := t.TempDir()
	store := NewFileStore(root)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, testRecord("one00001")))
	require.NoError(t, store.Put(ctx, testRecord("two00002")))

	// directories without a record are ignored
	require.NoError(t, os.MkdirAll(filepath.Join(root, "junk"), 0o755))

	summaries, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, summaries, 2)
	for _, s := range summaries {
		assert.Contains(t, []string{"one00001", "two00002"}, s.ID)
		assert.Equal(t, domain.StatusReceived, s.Status)
	}
}

func TestFileStore_ListEmptyRoot(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "does-not-exist"))

	summaries, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
