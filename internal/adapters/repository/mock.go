package repository

import (
	"clip-share/internal/core/domain"
	"clip-share/internal/core/port"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockVideoRepository struct {
	mock.Mock
}

func NewMockVideoRepository() *MockVideoRepository {
	return &MockVideoRepository{}
}

func (m *MockVideoRepository) Create(ctx context.Context, video domain.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoRepository) UpdateMedia(ctx context.Context, id uuid.UUID, durationSeconds int, sizeMegabytes float64, trimmed bool) error {
	args := m.Called(ctx, id, durationSeconds, sizeMegabytes, trimmed)
	return args.Error(0)
}

type MockLinkRepository struct {
	mock.Mock
}

func NewMockLinkRepository() *MockLinkRepository {
	return &MockLinkRepository{}
}

func (m *MockLinkRepository) Create(ctx context.Context, link domain.Link) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Link, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Link), args.Error(1)
}

func (m *MockLinkRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockUnitOfWork struct {
	mock.Mock
	videoRepo *MockVideoRepository
	linkRepo  *MockLinkRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		videoRepo: &MockVideoRepository{},
		linkRepo:  &MockLinkRepository{},
	}
}

func (m *MockUnitOfWork) VideoRepo() port.VideoRepository {
	return m.videoRepo
}

func (m *MockUnitOfWork) LinkRepo() port.LinkRepository {
	return m.linkRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetVideoRepoMock() *MockVideoRepository {
	return m.videoRepo
}

func (m *MockUnitOfWork) GetLinkRepoMock() *MockLinkRepository {
	return m.linkRepo
}
