package cleanup

import (
	"clip-share/internal/core/port"
	"log/slog"
)

type cleanupService struct {
	uow    port.UnitOfWork
	logger *slog.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(uow port.UnitOfWork, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		uow:    uow,
		logger: logger,
	}
}
