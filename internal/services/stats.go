package services

import (
	"context"
	"encoding/json"
	"errors"

	"gametrack/internal/models"
	"gametrack/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// StatsService computes the dashboard aggregate over the full games and
// backlog collections.
type StatsService struct {
	games   repository.GameRepository
	backlog repository.BacklogRepository
	cache   *redis.Client
	log     *logrus.Logger
}

func NewStatsService(games repository.GameRepository, backlog repository.BacklogRepository, cache *redis.Client, log *logrus.Logger) *StatsService {
	return &StatsService{games: games, backlog: backlog, cache: cache, log: log}
}

func (s *StatsService) Dashboard(ctx context.Context) (*models.Stats, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	library, err := s.games.Stats(ctx)
	if err != nil {
		return nil, err
	}
	backlogCount, err := s.backlog.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.Stats{
		TotalGames:    library.TotalGames,
		Completed:     library.Completed,
		InProgress:    library.InProgress,
		TotalPlaytime: library.TotalPlaytime,
		AvgRating:     library.AvgRating,
		BacklogCount:  backlogCount,
	}

	s.toCache(ctx, stats)
	return stats, nil
}

func (s *StatsService) fromCache(ctx context.Context) *models.Stats {
	if s.cache == nil {
		return nil
	}

	cached, err := s.cache.Get(ctx, statsCacheKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.WithError(err).Warn("Failed to read stats from cache")
		}
		return nil
	}

	var stats models.Stats
	if err := json.Unmarshal([]byte(cached), &stats); err != nil {
		s.log.WithError(err).Warn("Failed to unmarshal cached stats")
		return nil
	}
	return &stats
}

func (s *StatsService) toCache(ctx context.Context, stats *models.Stats) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(stats)
	if err != nil {
		s.log.WithError(err).Warn("Failed to marshal stats for caching")
		return
	}
	if err := s.cache.Set(ctx, statsCacheKey, payload, statsCacheTTL).Err(); err != nil {
		s.log.WithError(err).Warn("Failed to write stats to cache")
	}
}
