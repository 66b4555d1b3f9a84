package video

import (
	"clip-share/internal/config"
	"clip-share/internal/core/domain"
	"clip-share/internal/core/port"
	"context"
	"log/slog"
	"math"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

type videoService struct {
	uow       port.UnitOfWork
	store     port.MediaStore
	transform port.MediaTransformer
	events    port.EventPublisher
	clock     port.Clock
	mediaCfg  config.MediaConfig
	logger    *slog.Logger
	locks     *keyedMutex
}

// NewVideoService creates a new video lifecycle service
func NewVideoService(
	uow port.UnitOfWork,
	store port.MediaStore,
	transform port.MediaTransformer,
	events port.EventPublisher,
	clock port.Clock,
	cfg config.MediaConfig,
	logger *slog.Logger,
) port.VideoService {
	return &videoService{
		uow:       uow,
		store:     store,
		transform: transform,
		events:    events,
		clock:     clock,
		mediaCfg:  cfg,
		logger:    logger,
		locks:     newKeyedMutex(),
	}
}

// mediaName builds the stored filename for a video id, keeping the source
// extension so ffmpeg can pick the right muxer
func mediaName(id uuid.UUID, reference string) string {
	ext := filepath.Ext(reference)
	if ext == "" {
		ext = ".mp4"
	}
	return id.String() + ext
}

func toMegabytes(sizeBytes int64) float64 {
	return float64(sizeBytes) / (1 << 20)
}

func roundSeconds(duration float64) int {
	return int(math.Round(duration))
}

func (v *videoService) publish(ctx context.Context, eventType domain.EventType, video domain.Video) {
	event := domain.VideoEvent{
		Type:            eventType,
		VideoID:         video.ID,
		Title:           video.Title,
		DurationSeconds: video.DurationSeconds,
		SizeMegabytes:   video.SizeMegabytes,
		OccurredAt:      v.clock.Now().UTC(),
	}
	// fire and forget: a down broker must not fail the lifecycle operation
	if err := v.events.Publish(ctx, event); err != nil {
		v.logger.Warn("failed to publish video event", "type", eventType, "video_id", video.ID, "error", err)
	}
}

// keyedMutex serializes byte-mutating operations per video id. Entries are
// reference counted so the map does not grow with every id ever trimmed.
type keyedMutex struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{entries: make(map[uuid.UUID]*lockEntry)}
}

func (k *keyedMutex) Lock(id uuid.UUID) {
	k.mu.Lock()
	entry, ok := k.entries[id]
	if !ok {
		entry = &lockEntry{}
		k.entries[id] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()
}

func (k *keyedMutex) Unlock(id uuid.UUID) {
	k.mu.Lock()
	entry := k.entries[id]
	entry.refs--
	if entry.refs == 0 {
		delete(k.entries, id)
	}
	k.mu.Unlock()

	entry.mu.Unlock()
}
