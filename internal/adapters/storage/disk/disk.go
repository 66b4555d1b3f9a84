package disk

import (
	"clip-share/internal/core/port"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// scratch files live inside the store root so Promote's rename never
// crosses a filesystem boundary and stays atomic
const scratchDir = ".scratch"

// Store is a media byte store rooted at a fixed directory, one uuid-named
// file per logical video version
type Store struct {
	root string
}

// NewStore creates the root and scratch directories if needed
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(root, scratchDir), 0o755); err != nil {
		return nil, fmt.Errorf("could not create media store at %s: %w", root, err)
	}
	return &Store{root: root}, nil
}

// Save streams src into a new file under the store root and reports the
// number of bytes written. A partial file left by a failed copy is removed.
func (s *Store) Save(ctx context.Context, name string, src io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	path := s.Allocate(name)
	out, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("could not create media file: %w", err)
	}

	written, err := io.Copy(out, src)
	if err != nil {
		out.Close()
		os.Remove(path)
		return "", 0, fmt.Errorf("could not write media file: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return "", 0, fmt.Errorf("could not close media file: %w", err)
	}

	return path, written, nil
}

// Allocate returns the path a new media file should be written to
func (s *Store) Allocate(name string) string {
	return filepath.Join(s.root, name)
}

// Scratch returns a path in the scratch area for in-flight transform output
func (s *Store) Scratch(name string) string {
	return filepath.Join(s.root, scratchDir, name)
}

// Promote atomically replaces dstPath with the finished file at scratchPath
func (s *Store) Promote(ctx context.Context, scratchPath, dstPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Rename(scratchPath, dstPath); err != nil {
		return fmt.Errorf("could not promote %s: %w", scratchPath, err)
	}
	return nil
}

// Remove deletes a media file; a missing file is not an error
func (s *Store) Remove(_ context.Context, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not remove %s: %w", path, err)
	}
	return nil
}

// Size reports the byte size of a stored file
func (s *Store) Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Ensure Store implements port.MediaStore
var _ port.MediaStore = (*Store)(nil)
