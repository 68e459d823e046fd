package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gametrack/internal/models"
	"gametrack/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// PreferencesService manages the singleton preferences record, creating it
// lazily with defaults on first read or write.
type PreferencesService struct {
	repo  repository.PreferencesRepository
	cache *redis.Client
	log   *logrus.Logger
}

func NewPreferencesService(repo repository.PreferencesRepository, cache *redis.Client, log *logrus.Logger) *PreferencesService {
	return &PreferencesService{repo: repo, cache: cache, log: log}
}

func (s *PreferencesService) Get(ctx context.Context) (*models.Preferences, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	prefs, err := s.repo.Get(ctx)
	if errors.Is(err, models.ErrNotFound) {
		if err := s.repo.EnsureDefault(ctx, s.defaultRecord()); err != nil {
			return nil, err
		}
		s.log.Info("Created default preferences")
		// Re-read so concurrent first-reads all return the winning row.
		prefs, err = s.repo.Get(ctx)
	}
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, prefs)
	return prefs, nil
}

func (s *PreferencesService) Update(ctx context.Context, in models.UpdatePreferencesInput) (*models.Preferences, error) {
	fields := in.Fields()
	if len(fields) == 0 {
		return nil, models.ErrEmptyUpdate
	}

	// Make sure the singleton row exists, then apply the partial update to
	// it. For a fresh store this is the "merge onto defaults" path.
	if err := s.repo.EnsureDefault(ctx, s.defaultRecord()); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, fields, time.Now().UTC()); err != nil {
		return nil, err
	}

	invalidateCache(ctx, s.cache, s.log, prefsCacheKey)
	return s.repo.Get(ctx)
}

func (s *PreferencesService) defaultRecord() *models.Preferences {
	now := time.Now().UTC()
	return &models.Preferences{
		ID:        uuid.NewString(),
		Language:  models.DefaultLanguage,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *PreferencesService) fromCache(ctx context.Context) *models.Preferences {
	if s.cache == nil {
		return nil
	}

	cached, err := s.cache.Get(ctx, prefsCacheKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.WithError(err).Warn("Failed to read preferences from cache")
		}
		return nil
	}

	var prefs models.Preferences
	if err := json.Unmarshal([]byte(cached), &prefs); err != nil {
		s.log.WithError(err).Warn("Failed to unmarshal cached preferences")
		return nil
	}
	return &prefs
}

func (s *PreferencesService) toCache(ctx context.Context, prefs *models.Preferences) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(prefs)
	if err != nil {
		s.log.WithError(err).Warn("Failed to marshal preferences for caching")
		return
	}
	if err := s.cache.Set(ctx, prefsCacheKey, payload, prefsCacheTTL).Err(); err != nil {
		s.log.WithError(err).Warn("Failed to write preferences to cache")
	}
}
