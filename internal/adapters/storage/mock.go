package storage

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockMediaStore is a mock implementation of port.MediaStore
type MockMediaStore struct {
	mock.Mock
}

// NewMockMediaStore creates a new MockMediaStore
func NewMockMediaStore() *MockMediaStore {
	return &MockMediaStore{}
}

func (m *MockMediaStore) Save(ctx context.Context, name string, src io.Reader) (string, int64, error) {
	args := m.Called(ctx, name, src)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockMediaStore) Allocate(name string) string {
	args := m.Called(name)
	return args.String(0)
}

func (m *MockMediaStore) Scratch(name string) string {
	args := m.Called(name)
	return args.String(0)
}

func (m *MockMediaStore) Promote(ctx context.Context, scratchPath, dstPath string) error {
	args := m.Called(ctx, scratchPath, dstPath)
	return args.Error(0)
}

func (m *MockMediaStore) Remove(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockMediaStore) Size(path string) (int64, error) {
	args := m.Called(path)
	return args.Get(0).(int64), args.Error(1)
}
