package cleanup

import (
	"context"
	"time"
)

// DeleteExpiredLinks removes link rows whose expiry instant has passed.
// Expired links already deny access on resolve; this only keeps the table
// from accumulating dead rows.
func (c *cleanupService) DeleteExpiredLinks(ctx context.Context, now time.Time) error {

	deleted, err := c.uow.LinkRepo().DeleteExpired(ctx, now.UTC())
	if err != nil {
		return err
	}

	c.logger.Info("expired link cleanup completed", "deleted", deleted)
	return nil
}
