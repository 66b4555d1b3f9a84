package port

import (
	"context"
	"io"
)

// MediaTransformer is an interface to define media transform interactions
// (measure, trim, concatenate). Implementations report durations as measured
// from the actual bytes, not from stored metadata.
type MediaTransformer interface {
	Probe(ctx context.Context, path string) (durationSeconds float64, err error)
	Trim(ctx context.Context, srcPath, dstPath string, startSeconds, endSeconds int) error
	Concat(ctx context.Context, firstPath, secondPath, dstPath string) error
}

// MediaStore is an interface to define durable media byte storage.
// Allocate and Scratch hand out paths inside the store; Promote moves a
// finished scratch file over a destination atomically so readers never see
// a half-written file.
type MediaStore interface {
	Save(ctx context.Context, name string, src io.Reader) (path string, sizeBytes int64, err error)
	Allocate(name string) string
	Scratch(name string) string
	Promote(ctx context.Context, scratchPath, dstPath string) error
	Remove(ctx context.Context, path string) error
	Size(path string) (int64, error)
}
