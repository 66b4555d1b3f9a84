package disk_test

import (
	"clip-share/internal/adapters/storage/disk"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndSize(t *testing.T) {
	// Arrange
	root := t.TempDir()
	store, err := disk.NewStore(root)
	require.NoError(t, err)

	content := "fake video bytes"

	// Act
	path, written, err := store.Save(context.Background(), "clip.mp4", strings.NewReader(content))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "clip.mp4"), path)
	assert.Equal(t, int64(len(content)), written)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(onDisk))

	size, err := store.Size(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), size)
}

func TestStore_NewStoreCreatesRoot(t *testing.T) {
	// Arrange
	root := filepath.Join(t.TempDir(), "nested", "store")

	// Act
	_, err := disk.NewStore(root)

	// Assert
	require.NoError(t, err)
	info, statErr := os.Stat(root)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}

func TestStore_PromoteReplacesDestination(t *testing.T) {
	// Arrange
	root := t.TempDir()
	store, err := disk.NewStore(root)
	require.NoError(t, err)

	ctx := context.Background()
	dstPath, _, err := store.Save(ctx, "clip.mp4", strings.NewReader("original bytes"))
	require.NoError(t, err)

	scratchPath := store.Scratch("clip.mp4")
	require.NoError(t, os.WriteFile(scratchPath, []byte("trimmed bytes"), 0o644))

	// Act
	err = store.Promote(ctx, scratchPath, dstPath)

	// Assert
	require.NoError(t, err)
	onDisk, readErr := os.ReadFile(dstPath)
	require.NoError(t, readErr)
	assert.Equal(t, "trimmed bytes", string(onDisk))
	assert.NoFileExists(t, scratchPath)
}

func TestStore_ScratchLivesInsideRoot(t *testing.T) {
	// Arrange
	root := t.TempDir()
	store, err := disk.NewStore(root)
	require.NoError(t, err)

	// Act
	scratchPath := store.Scratch("clip.mp4")

	// Assert
	rel, relErr := filepath.Rel(root, scratchPath)
	require.NoError(t, relErr)
	assert.False(t, strings.HasPrefix(rel, ".."))
}

func TestStore_RemoveMissingFileIsNoError(t *testing.T) {
	// Arrange
	store, err := disk.NewStore(t.TempDir())
	require.NoError(t, err)

	// Act
	err = store.Remove(context.Background(), store.Allocate("never-written.mp4"))

	// Assert
	assert.NoError(t, err)
}

func TestStore_SaveRespectsCancelledContext(t *testing.T) {
	// Arrange
	store, err := disk.NewStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	path, _, err := store.Save(ctx, "clip.mp4", strings.NewReader("bytes"))

	// Assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, path)
}
