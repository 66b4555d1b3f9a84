package link

import (
	"clip-share/internal/core/domain"
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockLinkService is a mock implementation of LinkService
type MockLinkService struct {
	mock.Mock
}

// NewMockLinkService creates a new MockLinkService
func NewMockLinkService() *MockLinkService {
	return &MockLinkService{}
}

func (m *MockLinkService) Issue(ctx context.Context, videoID uuid.UUID) (*domain.Link, error) {
	args := m.Called(ctx, videoID)
	return args.Get(0).(*domain.Link), args.Error(1)
}

func (m *MockLinkService) Resolve(ctx context.Context, linkID uuid.UUID) (*domain.MediaHandle, error) {
	args := m.Called(ctx, linkID)
	return args.Get(0).(*domain.MediaHandle), args.Error(1)
}
