package link

import (
	"clip-share/internal/core/port"
	"log/slog"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 share link routes
type HandlerV1 struct {
	linkService port.LinkService
	logger      *slog.Logger
}

// NewLinkHandlerV1 creates HandlerV1
func NewLinkHandlerV1(service port.LinkService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		linkService: service,
		logger:      logger,
	}
}

// Register attaches handler routes
func (h *HandlerV1) Register(router chi.Router) {
	router.Post("/generate_link", h.GenerateLinkV1)
	router.Get("/access_video/{linkID}", h.AccessVideoV1)
}
