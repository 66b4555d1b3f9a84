package link

import (
	"clip-share/internal/core/domain"
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Resolve checks a link against its expiry and returns a handle to the
// underlying video's bytes. It never mutates state.
func (l *linkService) Resolve(ctx context.Context, linkID uuid.UUID) (*domain.MediaHandle, error) {

	issued, err := l.uow.LinkRepo().FindByID(ctx, linkID)
	if err != nil {
		return nil, err
	}

	if !issued.Live(l.clock.Now()) {
		return nil, fmt.Errorf("%s: %w", linkID, domain.ErrLinkExpired)
	}

	// videos are not protected from deletion by other actors, so a live
	// link can still dangle
	video, err := l.uow.VideoRepo().FindByID(ctx, issued.VideoID)
	if err != nil {
		return nil, err
	}

	return &domain.MediaHandle{
		Path:        video.FilePath,
		ContentType: "video/mp4",
		Filename:    video.Title,
	}, nil
}
