package postgres_test

import (
	"clip-share/internal/adapters/repository/postgres"
	"clip-share/internal/core/domain"
	"clip-share/internal/core/port"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqlUnitOfWork_Execute(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	// Arrange
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()

	ctx := context.Background()
	uow := postgres.NewUnitOfWork(dbConnection)
	videoRepo := postgres.NewSqlVideoRepository(dbConnection)
	linkRepo := postgres.NewSqlLinkRepository(dbConnection)

	t.Run("Should commit when no error", func(t *testing.T) {
		defer truncate()

		video := newVideo()
		link := domain.Link{
			ID:         uuid.New(),
			VideoID:    video.ID,
			ExpiryTime: time.Now().Add(time.Hour),
		}

		// Act
		err := uow.Execute(ctx, func(u port.UnitOfWork) error {
			if err := u.VideoRepo().Create(ctx, video); err != nil {
				return err
			}
			return u.LinkRepo().Create(ctx, link)
		})

		// Assert
		require.NoError(t, err)
		found, err := videoRepo.FindByID(ctx, video.ID)
		require.NoError(t, err)
		require.Equal(t, video.ID, found.ID)
		foundLink, err := linkRepo.FindByID(ctx, link.ID)
		require.NoError(t, err)
		require.Equal(t, link.ID, foundLink.ID)
	})

	t.Run("Should rollback when error occurs", func(t *testing.T) {
		defer truncate()

		video := newVideo()

		// Act
		err := uow.Execute(ctx, func(u port.UnitOfWork) error {
			if err := u.VideoRepo().Create(ctx, video); err != nil {
				return err
			}
			return assert.AnError
		})

		// Assert
		require.ErrorIs(t, err, assert.AnError)
		_, err = videoRepo.FindByID(ctx, video.ID)
		require.ErrorIs(t, err, domain.ErrVideoNotFound)
	})
}
