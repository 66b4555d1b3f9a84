package media

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTransformer is a mock implementation of port.MediaTransformer
type MockTransformer struct {
	mock.Mock
}

// NewMockTransformer creates a new MockTransformer
func NewMockTransformer() *MockTransformer {
	return &MockTransformer{}
}

func (m *MockTransformer) Probe(ctx context.Context, path string) (float64, error) {
	args := m.Called(ctx, path)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockTransformer) Trim(ctx context.Context, srcPath, dstPath string, startSeconds, endSeconds int) error {
	args := m.Called(ctx, srcPath, dstPath, startSeconds, endSeconds)
	return args.Error(0)
}

func (m *MockTransformer) Concat(ctx context.Context, firstPath, secondPath, dstPath string) error {
	args := m.Called(ctx, firstPath, secondPath, dstPath)
	return args.Error(0)
}
