package video

import (
	"clip-share/internal/core/domain"
	"context"
	"fmt"

	"github.com/google/uuid"
)

func (v *videoService) Trim(ctx context.Context, videoID uuid.UUID, startSeconds, endSeconds int, saveAsNew bool) (*domain.Video, error) {

	if !saveAsNew {
		// concurrent in-place trims on one id must not interleave their
		// read-probe-replace of bytes and metadata
		v.locks.Lock(videoID)
		defer v.locks.Unlock(videoID)
	}

	source, err := v.uow.VideoRepo().FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	// validate against the bytes, not the stored metadata, to guard against drift
	actual, err := v.transform.Probe(ctx, source.FilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransformFailed, err)
	}
	actualSeconds := roundSeconds(actual)

	if startSeconds < 0 || startSeconds >= endSeconds || endSeconds > actualSeconds {
		return nil, fmt.Errorf("%w: [%d, %d) against a %ds video",
			domain.ErrInvalidRange, startSeconds, endSeconds, actualSeconds)
	}

	if saveAsNew {
		return v.trimToNew(ctx, source, startSeconds, endSeconds)
	}
	return v.trimInPlace(ctx, source, startSeconds, endSeconds)
}

// trimToNew forks the source into an independent video record, leaving the
// source bytes and metadata untouched
func (v *videoService) trimToNew(ctx context.Context, source *domain.Video, startSeconds, endSeconds int) (*domain.Video, error) {

	newID := uuid.New()
	dst := v.store.Allocate(mediaName(newID, source.FilePath))

	if err := v.transform.Trim(ctx, source.FilePath, dst, startSeconds, endSeconds); err != nil {
		v.discard(ctx, dst)
		return nil, fmt.Errorf("%w: %w", domain.ErrTransformFailed, err)
	}

	trimmed, err := v.measure(ctx, dst)
	if err != nil {
		v.discard(ctx, dst)
		return nil, err
	}

	video := domain.Video{
		ID:              newID,
		Title:           source.Title,
		DurationSeconds: trimmed.seconds,
		SizeMegabytes:   trimmed.megabytes,
		FilePath:        dst,
		UploadedAt:      v.clock.Now().UTC(),
		Trimmed:         true,
	}

	if err := v.uow.VideoRepo().Create(ctx, video); err != nil {
		v.discard(ctx, dst)
		return nil, fmt.Errorf("could not create video record: %w", err)
	}

	v.publish(ctx, domain.EventTypeVideoTrimmed, video)
	return &video, nil
}

// trimInPlace writes the trimmed output to a scratch path and swaps it over
// the source atomically before touching the record, so a failure partway
// leaves the source video fully intact
func (v *videoService) trimInPlace(ctx context.Context, source *domain.Video, startSeconds, endSeconds int) (*domain.Video, error) {

	scratch := v.store.Scratch(mediaName(source.ID, source.FilePath))

	if err := v.transform.Trim(ctx, source.FilePath, scratch, startSeconds, endSeconds); err != nil {
		v.discard(ctx, scratch)
		return nil, fmt.Errorf("%w: %w", domain.ErrTransformFailed, err)
	}

	trimmed, err := v.measure(ctx, scratch)
	if err != nil {
		v.discard(ctx, scratch)
		return nil, err
	}

	if err := v.store.Promote(ctx, scratch, source.FilePath); err != nil {
		v.discard(ctx, scratch)
		return nil, fmt.Errorf("could not replace media bytes: %w", err)
	}

	if err := v.uow.VideoRepo().UpdateMedia(ctx, source.ID, trimmed.seconds, trimmed.megabytes, true); err != nil {
		return nil, fmt.Errorf("could not update video record: %w", err)
	}

	updated := *source
	updated.DurationSeconds = trimmed.seconds
	updated.SizeMegabytes = trimmed.megabytes
	updated.Trimmed = true

	v.publish(ctx, domain.EventTypeVideoTrimmed, updated)
	return &updated, nil
}

type measurement struct {
	seconds   int
	megabytes float64
}

// measure probes duration and size of a freshly produced media file
func (v *videoService) measure(ctx context.Context, path string) (*measurement, error) {
	duration, err := v.transform.Probe(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransformFailed, err)
	}
	sizeBytes, err := v.store.Size(path)
	if err != nil {
		return nil, fmt.Errorf("could not stat media file: %w", err)
	}
	return &measurement{seconds: roundSeconds(duration), megabytes: toMegabytes(sizeBytes)}, nil
}
