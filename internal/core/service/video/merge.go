package video

import (
	"clip-share/internal/core/domain"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

func (v *videoService) Merge(ctx context.Context, videoID1, videoID2 uuid.UUID) (*domain.Video, error) {

	first, err := v.findForMerge(ctx, videoID1)
	if err != nil {
		return nil, err
	}
	second, err := v.findForMerge(ctx, videoID2)
	if err != nil {
		return nil, err
	}

	newID := uuid.New()
	dst := v.store.Allocate(mediaName(newID, first.FilePath))

	if err := v.transform.Concat(ctx, first.FilePath, second.FilePath, dst); err != nil {
		v.discard(ctx, dst)
		return nil, fmt.Errorf("%w: %w", domain.ErrTransformFailed, err)
	}

	merged, err := v.measure(ctx, dst)
	if err != nil {
		v.discard(ctx, dst)
		return nil, err
	}

	video := domain.Video{
		ID:              newID,
		Title:           fmt.Sprintf("%s_merged_%s", first.Title, second.Title),
		DurationSeconds: merged.seconds,
		SizeMegabytes:   merged.megabytes,
		FilePath:        dst,
		UploadedAt:      v.clock.Now().UTC(),
		Trimmed:         false,
	}

	if err := v.uow.VideoRepo().Create(ctx, video); err != nil {
		v.discard(ctx, dst)
		return nil, fmt.Errorf("could not create video record: %w", err)
	}

	v.publish(ctx, domain.EventTypeVideoMerged, video)
	return &video, nil
}

// findForMerge annotates a not-found error with the id that failed to
// resolve, since merge takes two
func (v *videoService) findForMerge(ctx context.Context, videoID uuid.UUID) (*domain.Video, error) {
	video, err := v.uow.VideoRepo().FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			return nil, fmt.Errorf("%s: %w", videoID, err)
		}
		return nil, err
	}
	return video, nil
}
