package postgres_test

import (
	"clip-share/internal/adapters/repository/postgres"
	"clip-share/internal/core/domain"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVideo() domain.Video {
	id := uuid.New()
	return domain.Video{
		ID:              id,
		Title:           "clip.mp4",
		DurationSeconds: 120,
		SizeMegabytes:   5.25,
		FilePath:        "store/" + id.String() + ".mp4",
		UploadedAt:      time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC),
		Trimmed:         false,
	}
}

func TestSqlVideoRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()

	repo := postgres.NewSqlVideoRepository(dbConnection)
	ctx := context.Background()

	t.Run("create and find video", func(t *testing.T) {
		truncate()

		video := newVideo()
		err := repo.Create(ctx, video)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, video.ID)
		require.NoError(t, err)
		assert.Equal(t, video.ID, found.ID)
		assert.Equal(t, video.Title, found.Title)
		assert.Equal(t, video.DurationSeconds, found.DurationSeconds)
		assert.InDelta(t, video.SizeMegabytes, found.SizeMegabytes, 0.0001)
		assert.Equal(t, video.FilePath, found.FilePath)
		assert.True(t, video.UploadedAt.Equal(found.UploadedAt))
		assert.Equal(t, time.UTC, found.UploadedAt.Location())
		assert.False(t, found.Trimmed)
	})

	t.Run("create duplicate id returns already exists", func(t *testing.T) {
		truncate()

		video := newVideo()
		require.NoError(t, repo.Create(ctx, video))

		duplicate := video
		duplicate.FilePath = "store/other.mp4"
		err := repo.Create(ctx, duplicate)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("find missing video returns not found", func(t *testing.T) {
		truncate()

		found, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrVideoNotFound)
		assert.Nil(t, found)
	})

	t.Run("exists", func(t *testing.T) {
		truncate()

		video := newVideo()
		require.NoError(t, repo.Create(ctx, video))

		exists, err := repo.Exists(ctx, video.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.Exists(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("update media", func(t *testing.T) {
		truncate()

		video := newVideo()
		require.NoError(t, repo.Create(ctx, video))

		err := repo.UpdateMedia(ctx, video.ID, 30, 1.5, true)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, video.ID)
		require.NoError(t, err)
		assert.Equal(t, 30, found.DurationSeconds)
		assert.InDelta(t, 1.5, found.SizeMegabytes, 0.0001)
		assert.True(t, found.Trimmed)
		assert.Equal(t, video.FilePath, found.FilePath)
	})

	t.Run("update media on missing video returns not found", func(t *testing.T) {
		truncate()

		err := repo.UpdateMedia(ctx, uuid.New(), 30, 1.5, true)
		assert.ErrorIs(t, err, domain.ErrVideoNotFound)
	})
}
