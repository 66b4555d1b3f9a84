package port

import (
	"clip-share/internal/core/domain"
	"context"
)

// EventPublisher is an interface to define a lifecycle event publisher
// (nats, kafka, ...). Publishing is best effort: lifecycle operations do not
// fail because the broker is down.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.VideoEvent) error
	Close() error
}
