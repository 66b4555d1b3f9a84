package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType is a type that represents the type of a lifecycle event
type EventType string

const (
	EventTypeVideoUploaded EventType = "video.uploaded"
	EventTypeVideoTrimmed  EventType = "video.trimmed"
	EventTypeVideoMerged   EventType = "video.merged"
)

// VideoEvent is published after a successful lifecycle operation
type VideoEvent struct {
	Type            EventType `json:"type"`
	VideoID         uuid.UUID `json:"video_id"`
	Title           string    `json:"title"`
	DurationSeconds int       `json:"duration_seconds"`
	SizeMegabytes   float64   `json:"size_megabytes"`
	OccurredAt      time.Time `json:"occurred_at"`
}
