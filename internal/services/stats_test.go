package services

import (
	"context"
	"testing"

	"gametrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardCombinesLibraryAndBacklog(t *testing.T) {
	games := new(MockGameRepository)
	backlog := new(MockBacklogRepository)
	service := NewStatsService(games, backlog, nil, testLogger())

	games.On("Stats", mock.Anything).Return(&models.LibraryStats{
		TotalGames:    5,
		Completed:     2,
		InProgress:    1,
		TotalPlaytime: 300,
		AvgRating:     8.5,
	}, nil)
	backlog.On("Count", mock.Anything).Return(3, nil)

	stats, err := service.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.Stats{
		TotalGames:    5,
		Completed:     2,
		InProgress:    1,
		TotalPlaytime: 300,
		AvgRating:     8.5,
		BacklogCount:  3,
	}, stats)
}

func TestDashboardEmptyCollections(t *testing.T) {
	games := new(MockGameRepository)
	backlog := new(MockBacklogRepository)
	service := NewStatsService(games, backlog, nil, testLogger())

	games.On("Stats", mock.Anything).Return(&models.LibraryStats{}, nil)
	backlog.On("Count", mock.Anything).Return(0, nil)

	stats, err := service.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalGames)
	assert.Zero(t, stats.AvgRating)
	assert.Zero(t, stats.BacklogCount)
}
