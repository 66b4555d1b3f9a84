package video

import (
	"clip-share/internal/core/port"
	"log/slog"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 video lifecycle routes
type HandlerV1 struct {
	videoService port.VideoService
	logger       *slog.Logger
}

// NewVideoHandlerV1 creates HandlerV1
func NewVideoHandlerV1(service port.VideoService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		videoService: service,
		logger:       logger,
	}
}

// Register attaches handler routes
func (h *HandlerV1) Register(router chi.Router) {
	router.Post("/video/upload", h.UploadVideoV1)
	router.Post("/video/trim", h.TrimVideoV1)
	router.Post("/videos/merge", h.MergeVideosV1)
}
