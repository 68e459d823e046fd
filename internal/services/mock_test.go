package services

import (
	"context"
	"time"

	"gametrack/internal/models"
	"gametrack/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockGameRepository is a mock implementation of repository.GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) List(ctx context.Context, filter repository.GameFilter) ([]models.Game, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Game), args.Error(1)
}

func (m *MockGameRepository) GetByID(ctx context.Context, id string) (*models.Game, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameRepository) Create(ctx context.Context, game *models.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockGameRepository) Update(ctx context.Context, id string, fields map[string]any, updatedAt time.Time) error {
	args := m.Called(ctx, id, fields, updatedAt)
	return args.Error(0)
}

func (m *MockGameRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGameRepository) Stats(ctx context.Context) (*models.LibraryStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LibraryStats), args.Error(1)
}

// MockBacklogRepository is a mock implementation of repository.BacklogRepository
type MockBacklogRepository struct {
	mock.Mock
}

func (m *MockBacklogRepository) List(ctx context.Context, filter repository.BacklogFilter) ([]models.BacklogItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BacklogItem), args.Error(1)
}

func (m *MockBacklogRepository) GetByID(ctx context.Context, id string) (*models.BacklogItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BacklogItem), args.Error(1)
}

func (m *MockBacklogRepository) Create(ctx context.Context, item *models.BacklogItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockBacklogRepository) Update(ctx context.Context, id string, fields map[string]any, updatedAt time.Time) error {
	args := m.Called(ctx, id, fields, updatedAt)
	return args.Error(0)
}

func (m *MockBacklogRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBacklogRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockBacklogRepository) MoveToLibrary(ctx context.Context, game *models.Game, backlogID string) error {
	args := m.Called(ctx, game, backlogID)
	return args.Error(0)
}

// MockPreferencesRepository is a mock implementation of repository.PreferencesRepository
type MockPreferencesRepository struct {
	mock.Mock
}

func (m *MockPreferencesRepository) Get(ctx context.Context) (*models.Preferences, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Preferences), args.Error(1)
}

func (m *MockPreferencesRepository) EnsureDefault(ctx context.Context, prefs *models.Preferences) error {
	args := m.Called(ctx, prefs)
	return args.Error(0)
}

func (m *MockPreferencesRepository) Update(ctx context.Context, fields map[string]any, updatedAt time.Time) error {
	args := m.Called(ctx, fields, updatedAt)
	return args.Error(0)
}
