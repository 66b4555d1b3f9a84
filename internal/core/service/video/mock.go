package video

import (
	"clip-share/internal/core/domain"
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockVideoService is a mock implementation of VideoService
type MockVideoService struct {
	mock.Mock
}

// NewMockVideoService creates a new MockVideoService
func NewMockVideoService() *MockVideoService {
	return &MockVideoService{}
}

func (m *MockVideoService) Upload(ctx context.Context, src io.Reader, originalFilename string) (*domain.Video, error) {
	args := m.Called(ctx, src, originalFilename)
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoService) Trim(ctx context.Context, videoID uuid.UUID, startSeconds, endSeconds int, saveAsNew bool) (*domain.Video, error) {
	args := m.Called(ctx, videoID, startSeconds, endSeconds, saveAsNew)
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoService) Merge(ctx context.Context, videoID1, videoID2 uuid.UUID) (*domain.Video, error) {
	args := m.Called(ctx, videoID1, videoID2)
	return args.Get(0).(*domain.Video), args.Error(1)
}
