package link

import (
	"clip-share/internal/core/domain"
	"clip-share/internal/core/port"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func (l *linkService) Issue(ctx context.Context, videoID uuid.UUID) (*domain.Link, error) {

	var issued domain.Link

	// existence check and insert run in one transaction so a link can never
	// be committed for a video whose row vanished in between
	err := l.uow.Execute(ctx, func(u port.UnitOfWork) error {
		exists, err := u.VideoRepo().Exists(ctx, videoID)
		if err != nil {
			return fmt.Errorf("could not check video existence: %w", err)
		}
		if !exists {
			return fmt.Errorf("%s: %w", videoID, domain.ErrVideoNotFound)
		}

		// uuid v4 is crypto/rand backed, which keeps the token space too
		// large to enumerate within any sane TTL
		issued = domain.Link{
			ID:         uuid.New(),
			VideoID:    videoID,
			ExpiryTime: l.clock.Now().UTC().Add(time.Duration(l.linkCfg.ExpiryMinutes) * time.Minute),
		}

		if err := u.LinkRepo().Create(ctx, issued); err != nil {
			return fmt.Errorf("could not create link record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &issued, nil
}
