package noop

import (
	"clip-share/internal/core/domain"
	"clip-share/internal/core/port"
	"context"
)

// Publisher drops all events. Used when no broker is configured.
type Publisher struct{}

// NewPublisher creates a new no-op publisher
func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Publish(_ context.Context, _ domain.VideoEvent) error {
	return nil
}

func (p *Publisher) Close() error {
	return nil
}

var _ port.EventPublisher = (*Publisher)(nil)
