package ffmpeg_test

import (
	"clip-share/internal/adapters/media/ffmpeg"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records invocations instead of executing anything
type fakeRunner struct {
	runCalls    [][]string
	outputCalls [][]string
	runErr      error
	output      []byte
	outputErr   error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	f.runCalls = append(f.runCalls, append([]string{name}, args...))
	return f.runErr
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	f.outputCalls = append(f.outputCalls, append([]string{name}, args...))
	return f.output, f.outputErr
}

func TestTransformer_Probe(t *testing.T) {
	// Arrange
	runner := &fakeRunner{output: []byte("123.456000\n")}
	transformer := ffmpeg.NewTransformer(ffmpeg.WithCommandRunner(runner))

	// Act
	duration, err := transformer.Probe(context.Background(), "store/clip.mp4")

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, 123.456, duration, 0.0001)
	require.Len(t, runner.outputCalls, 1)
	call := runner.outputCalls[0]
	assert.Equal(t, "ffprobe", call[0])
	assert.Contains(t, call, "format=duration")
	assert.Equal(t, "store/clip.mp4", call[len(call)-1])
}

func TestTransformer_Probe_GarbageOutput(t *testing.T) {
	// Arrange
	runner := &fakeRunner{output: []byte("N/A")}
	transformer := ffmpeg.NewTransformer(ffmpeg.WithCommandRunner(runner))

	// Act
	_, err := transformer.Probe(context.Background(), "store/clip.mp4")

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "N/A")
}

func TestTransformer_Probe_CommandFails(t *testing.T) {
	// Arrange
	runner := &fakeRunner{outputErr: errors.New("exit status 1")}
	transformer := ffmpeg.NewTransformer(ffmpeg.WithCommandRunner(runner))

	// Act
	_, err := transformer.Probe(context.Background(), "store/clip.mp4")

	// Assert
	assert.Error(t, err)
}

func TestTransformer_Trim(t *testing.T) {
	// Arrange
	runner := &fakeRunner{}
	transformer := ffmpeg.NewTransformer(ffmpeg.WithCommandRunner(runner))

	// Act
	err := transformer.Trim(context.Background(), "store/src.mp4", "store/dst.mp4", 5, 35)

	// Assert
	require.NoError(t, err)
	require.Len(t, runner.runCalls, 1)
	call := runner.runCalls[0]
	assert.Equal(t, []string{
		"ffmpeg",
		"-i", "store/src.mp4",
		"-ss", "5",
		"-to", "35",
		"-c", "copy",
		"-y",
		"store/dst.mp4",
	}, call)
}

func TestTransformer_Trim_CommandFails(t *testing.T) {
	// Arrange
	runner := &fakeRunner{runErr: errors.New("exit status 1")}
	transformer := ffmpeg.NewTransformer(ffmpeg.WithCommandRunner(runner))

	// Act
	err := transformer.Trim(context.Background(), "store/src.mp4", "store/dst.mp4", 0, 10)

	// Assert
	assert.Error(t, err)
}

func TestTransformer_Concat(t *testing.T) {
	// Arrange
	runner := &fakeRunner{}
	transformer := ffmpeg.NewTransformer(ffmpeg.WithCommandRunner(runner))

	// Act
	err := transformer.Concat(context.Background(), "store/a.mp4", "store/b.mp4", "store/out.mp4")

	// Assert
	require.NoError(t, err)
	require.Len(t, runner.runCalls, 1)
	call := runner.runCalls[0]
	assert.Equal(t, "ffmpeg", call[0])
	assert.Contains(t, call, "concat")
	assert.Equal(t, "store/out.mp4", call[len(call)-1])

	// the list file handed to ffmpeg is temporary and removed afterwards
	listPath := call[6]
	_, statErr := os.Stat(listPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestTransformer_CustomBinaryPaths(t *testing.T) {
	// Arrange
	runner := &fakeRunner{output: []byte("1.0")}
	transformer := ffmpeg.NewTransformer(
		ffmpeg.WithFFmpegPath("/opt/ffmpeg/bin/ffmpeg"),
		ffmpeg.WithFFprobePath("/opt/ffmpeg/bin/ffprobe"),
		ffmpeg.WithCommandRunner(runner),
	)

	// Act
	_, err := transformer.Probe(context.Background(), "store/clip.mp4")
	require.NoError(t, err)
	require.NoError(t, transformer.Trim(context.Background(), "a", "b", 0, 1))

	// Assert
	assert.Equal(t, "/opt/ffmpeg/bin/ffprobe", runner.outputCalls[0][0])
	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", runner.runCalls[0][0])
}

func TestTransformer_VerifyInstalled(t *testing.T) {
	// Arrange
	runner := &fakeRunner{output: []byte("ffmpeg version 6.0")}
	transformer := ffmpeg.NewTransformer(ffmpeg.WithCommandRunner(runner))

	// Act
	err := transformer.VerifyInstalled(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, runner.outputCalls, 2)

	runner.outputErr = errors.New("executable file not found")
	assert.Error(t, transformer.VerifyInstalled(context.Background()))
}
