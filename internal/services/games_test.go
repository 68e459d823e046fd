package services

import (
	"context"
	"testing"
	"time"

	"gametrack/internal/models"
	"gametrack/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func validGameInput() models.CreateGameInput {
	return models.CreateGameInput{
		Title:       "The Witcher 3: Wild Hunt",
		Platform:    "PC",
		Genre:       "RPG",
		Status:      models.StatusCompleted,
		Rating:      9.5,
		Playtime:    120,
		Developer:   "CD Projekt Red",
		ReleaseDate: "2015-05-19",
		Cover:       "https://example.com/witcher3.jpg",
	}
}

func TestCreateGame(t *testing.T) {
	repo := new(MockGameRepository)
	service := NewGameService(repo, nil, testLogger())

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Game")).Return(nil)

	game, err := service.Create(context.Background(), validGameInput())
	require.NoError(t, err)
	assert.NotEmpty(t, game.ID)
	assert.True(t, game.CreatedAt.Equal(game.UpdatedAt))
	assert.Equal(t, "The Witcher 3: Wild Hunt", game.Title)
	assert.Equal(t, models.StatusCompleted, game.Status)

	repo.AssertExpectations(t)
}

func TestCreateGameDistinctIDs(t *testing.T) {
	repo := new(MockGameRepository)
	service := NewGameService(repo, nil, testLogger())

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Game")).Return(nil)

	first, err := service.Create(context.Background(), validGameInput())
	require.NoError(t, err)
	second, err := service.Create(context.Background(), validGameInput())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateGameValidation(t *testing.T) {
	repo := new(MockGameRepository)
	service := NewGameService(repo, nil, testLogger())

	in := validGameInput()
	in.Title = ""

	_, err := service.Create(context.Background(), in)

	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "title", vErr.Field)
	assert.Empty(t, repo.Calls)
}

func TestGetGameNotFound(t *testing.T) {
	repo := new(MockGameRepository)
	service := NewGameService(repo, nil, testLogger())

	repo.On("GetByID", mock.Anything, "missing").Return(nil, models.ErrNotFound)

	_, err := service.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateGameEmptyPayload(t *testing.T) {
	repo := new(MockGameRepository)
	service := NewGameService(repo, nil, testLogger())

	_, err := service.Update(context.Background(), "g1", models.UpdateGameInput{})

	assert.ErrorIs(t, err, models.ErrEmptyUpdate)
	assert.Empty(t, repo.Calls)
}

func TestUpdateGameReturnsPersistedRecord(t *testing.T) {
	repo := new(MockGameRepository)
	service := NewGameService(repo, nil, testLogger())

	before := time.Now().UTC()
	title := "Stray"
	stored := &models.Game{ID: "g1", Title: "Stray", UpdatedAt: before.Add(time.Second)}

	repo.On("Update", mock.Anything, "g1", map[string]any{"title": "Stray"},
		mock.MatchedBy(func(ts time.Time) bool { return !ts.Before(before) })).Return(nil)
	repo.On("GetByID", mock.Anything, "g1").Return(stored, nil)

	got, err := service.Update(context.Background(), "g1", models.UpdateGameInput{Title: &title})
	require.NoError(t, err)
	assert.Same(t, stored, got)

	repo.AssertExpectations(t)
}

func TestUpdateGameNotFound(t *testing.T) {
	repo := new(MockGameRepository)
	service := NewGameService(repo, nil, testLogger())

	title := "Stray"
	repo.On("Update", mock.Anything, "missing", mock.Anything, mock.Anything).Return(models.ErrNotFound)

	_, err := service.Update(context.Background(), "missing", models.UpdateGameInput{Title: &title})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteGameNotFound(t *testing.T) {
	repo := new(MockGameRepository)
	service := NewGameService(repo, nil, testLogger())

	repo.On("Delete", mock.Anything, "missing").Return(models.ErrNotFound)

	err := service.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListGamesPassesFilter(t *testing.T) {
	repo := new(MockGameRepository)
	service := NewGameService(repo, nil, testLogger())

	filter := repository.GameFilter{Platform: "PC", Search: "witcher"}
	repo.On("List", mock.Anything, filter).Return([]models.Game{{ID: "g1"}}, nil)

	games, err := service.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, games, 1)

	repo.AssertExpectations(t)
}
