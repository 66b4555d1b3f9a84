package video

import (
	"clip-share/internal/core/domain"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
)

func (v *videoService) Upload(ctx context.Context, src io.Reader, originalFilename string) (*domain.Video, error) {

	if originalFilename == "" {
		return nil, fmt.Errorf("%w: missing filename", domain.ErrInvalidInput)
	}

	videoID := uuid.New()
	maxBytes := int64(v.mediaCfg.MaxVideoSizeMB * (1 << 20))

	// one extra byte so an oversized stream is detectable without buffering it
	path, sizeBytes, err := v.store.Save(ctx, mediaName(videoID, originalFilename), io.LimitReader(src, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("could not persist upload: %w", err)
	}

	if sizeBytes > maxBytes {
		v.discard(ctx, path)
		return nil, fmt.Errorf("%w: limit is %.1f MB", domain.ErrVideoTooLarge, v.mediaCfg.MaxVideoSizeMB)
	}

	duration, err := v.transform.Probe(ctx, path)
	if err != nil {
		v.discard(ctx, path)
		return nil, fmt.Errorf("%w: %w", domain.ErrTransformFailed, err)
	}

	seconds := roundSeconds(duration)
	if seconds < v.mediaCfg.MinVideoDurationSec || seconds > v.mediaCfg.MaxVideoDurationSec {
		v.discard(ctx, path)
		return nil, fmt.Errorf("%w: got %ds, allowed [%d, %d]",
			domain.ErrDurationOutOfPolicy, seconds, v.mediaCfg.MinVideoDurationSec, v.mediaCfg.MaxVideoDurationSec)
	}

	video := domain.Video{
		ID:              videoID,
		Title:           originalFilename,
		DurationSeconds: seconds,
		SizeMegabytes:   toMegabytes(sizeBytes),
		FilePath:        path,
		UploadedAt:      v.clock.Now().UTC(),
		Trimmed:         false,
	}

	if err := v.uow.VideoRepo().Create(ctx, video); err != nil {
		v.discard(ctx, path)
		return nil, fmt.Errorf("could not create video record: %w", err)
	}

	v.publish(ctx, domain.EventTypeVideoUploaded, video)
	return &video, nil
}

// discard removes bytes written for a rejected operation so no orphan files
// outlive the request
func (v *videoService) discard(ctx context.Context, path string) {
	if err := v.store.Remove(ctx, path); err != nil {
		v.logger.Error("failed to remove rejected media file", "path", path, "error", err)
	}
}
