package ffmpeg

import (
	"clip-share/internal/core/port"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// CommandRunner defines the interface for running external commands
// This allows mocking exec.Command in tests
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecCommandRunner is the production implementation using os/exec
type ExecCommandRunner struct{}

// Run executes a command and returns any error
func (r *ExecCommandRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Output executes a command and returns its output
func (r *ExecCommandRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Output()
}

// Transformer implements port.MediaTransformer using ffmpeg and ffprobe
type Transformer struct {
	ffmpegPath  string
	ffprobePath string
	runner      CommandRunner
}

// TransformerOption is a functional option for configuring Transformer
type TransformerOption func(*Transformer)

// WithFFmpegPath sets a custom ffmpeg executable path
func WithFFmpegPath(path string) TransformerOption {
	return func(t *Transformer) {
		t.ffmpegPath = path
	}
}

// WithFFprobePath sets a custom ffprobe executable path
func WithFFprobePath(path string) TransformerOption {
	return func(t *Transformer) {
		t.ffprobePath = path
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner CommandRunner) TransformerOption {
	return func(t *Transformer) {
		t.runner = runner
	}
}

// NewTransformer creates a new ffmpeg-based transformer
func NewTransformer(opts ...TransformerOption) *Transformer {
	t := &Transformer{
		ffmpegPath:  "ffmpeg",
		ffprobePath: "ffprobe",
		runner:      &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Probe measures the duration of the media file at path, in seconds
func (t *Transformer) Probe(ctx context.Context, path string) (float64, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	out, err := t.runner.Output(ctx, t.ffprobePath, args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected ffprobe output %q: %w", string(out), err)
	}

	return duration, nil
}

// Trim writes the [start, end) sub-range of srcPath to dstPath
func (t *Transformer) Trim(ctx context.Context, srcPath, dstPath string, startSeconds, endSeconds int) error {
	args := []string{
		"-i", srcPath,
		"-ss", strconv.Itoa(startSeconds),
		"-to", strconv.Itoa(endSeconds),
		"-c", "copy",
		"-y", // Overwrite output file if it exists
		dstPath,
	}

	if err := t.runner.Run(ctx, t.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg trim failed: %w", err)
	}

	return nil
}

// Concat concatenates firstPath and secondPath, in that order, into dstPath.
// Uses the concat demuxer, which wants its inputs listed in a file.
func (t *Transformer) Concat(ctx context.Context, firstPath, secondPath, dstPath string) error {
	list, err := os.CreateTemp("", "concat-*.txt")
	if err != nil {
		return fmt.Errorf("could not create concat list: %w", err)
	}
	defer os.Remove(list.Name())

	entries := fmt.Sprintf("file '%s'\nfile '%s'\n", absOrSame(firstPath), absOrSame(secondPath))
	if _, err := list.WriteString(entries); err != nil {
		list.Close()
		return fmt.Errorf("could not write concat list: %w", err)
	}
	if err := list.Close(); err != nil {
		return fmt.Errorf("could not close concat list: %w", err)
	}

	args := []string{
		"-f", "concat",
		"-safe", "0",
		"-i", list.Name(),
		"-c", "copy",
		"-y",
		dstPath,
	}

	if err := t.runner.Run(ctx, t.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg concat failed: %w", err)
	}

	return nil
}

// VerifyInstalled checks that ffmpeg and ffprobe are available
func (t *Transformer) VerifyInstalled(ctx context.Context) error {
	if _, err := t.runner.Output(ctx, t.ffmpegPath, "-version"); err != nil {
		return fmt.Errorf("ffmpeg not found or not executable: %w", err)
	}
	if _, err := t.runner.Output(ctx, t.ffprobePath, "-version"); err != nil {
		return fmt.Errorf("ffprobe not found or not executable: %w", err)
	}
	return nil
}

// the concat list file lives outside the store, so relative input paths
// would resolve against the wrong directory
func absOrSame(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// Ensure Transformer implements port.MediaTransformer
var _ port.MediaTransformer = (*Transformer)(nil)
