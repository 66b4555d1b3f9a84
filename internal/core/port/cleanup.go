package port

import (
	"context"
	"time"
)

// CleanupService is service that handles cleanup of expired link rows
type CleanupService interface {
	DeleteExpiredLinks(ctx context.Context, now time.Time) error
}
