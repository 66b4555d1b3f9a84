package domain

import (
	"time"

	"github.com/google/uuid"
)

// Video represents a stored video and the metadata describing its bytes.
// DurationSeconds and SizeMegabytes always describe the bytes at FilePath;
// both are refreshed together whenever the bytes are replaced.
type Video struct {
	ID              uuid.UUID
	Title           string
	DurationSeconds int
	SizeMegabytes   float64
	FilePath        string
	UploadedAt      time.Time
	Trimmed         bool
}

// MediaHandle is what a resolved share link hands back to the transport
// layer for streaming.
type MediaHandle struct {
	Path        string
	ContentType string
	Filename    string
}
