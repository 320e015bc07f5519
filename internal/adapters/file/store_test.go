package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/akuroiwa/mcts-gen/internal/adapters/file"
	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/akuroiwa/mcts-gen/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunJournalStoreContract(t, store)
}

func TestFileStore_Layout(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "alpha", &domain.Record{SessionID: "alpha"}))
	_, err := os.Stat(filepath.Join(dir, "alpha.json"))
	assert.NoError(t, err)

	// Stray files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tmp-beta-1.json"), []byte("{}"), 0644))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha"}, ids)
}

func TestFileStore_InvalidIDs(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	for _, id := range []string{"", "../escape", "a/b"} {
		assert.Error(t, store.Save(ctx, id, &domain.Record{}), id)
		_, err := store.Load(ctx, id)
		assert.Error(t, err, id)
	}
}

func TestFileStore_ListMissingDir(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "missing"))
	ids, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}
