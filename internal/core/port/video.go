package port

import (
	"clip-share/internal/core/domain"
	"context"
	"io"

	"github.com/google/uuid"
)

// VideoRepository is an interface to define video repository interactions
type VideoRepository interface {
	Create(ctx context.Context, video domain.Video) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// UpdateMedia refreshes the metadata describing a video's bytes. It is
	// the single write path used after an in-place byte replacement so that
	// duration and size can never be updated separately.
	UpdateMedia(ctx context.Context, id uuid.UUID, durationSeconds int, sizeMegabytes float64, trimmed bool) error
}

// VideoService is an interface to define the video lifecycle service
type VideoService interface {
	Upload(ctx context.Context, src io.Reader, originalFilename string) (*domain.Video, error)
	Trim(ctx context.Context, videoID uuid.UUID, startSeconds, endSeconds int, saveAsNew bool) (*domain.Video, error)
	Merge(ctx context.Context, videoID1, videoID2 uuid.UUID) (*domain.Video, error)
}
