package port

import (
	"clip-share/internal/core/domain"
	"context"
	"time"

	"github.com/google/uuid"
)

// LinkRepository is an interface to define link repository interactions
type LinkRepository interface {
	Create(ctx context.Context, link domain.Link) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Link, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// LinkService is an interface to define link issuance and access control
type LinkService interface {
	Issue(ctx context.Context, videoID uuid.UUID) (*domain.Link, error)
	Resolve(ctx context.Context, linkID uuid.UUID) (*domain.MediaHandle, error)
}
