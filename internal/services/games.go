package services

import (
	"context"
	"time"

	"gametrack/internal/models"
	"gametrack/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// GameService implements the games collection operations. It owns id and
// timestamp generation; the repository only moves records.
type GameService struct {
	repo  repository.GameRepository
	cache *redis.Client
	log   *logrus.Logger
}

func NewGameService(repo repository.GameRepository, cache *redis.Client, log *logrus.Logger) *GameService {
	return &GameService{repo: repo, cache: cache, log: log}
}

func (s *GameService) List(ctx context.Context, filter repository.GameFilter) ([]models.Game, error) {
	return s.repo.List(ctx, filter)
}

func (s *GameService) Create(ctx context.Context, in models.CreateGameInput) (*models.Game, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	game := &models.Game{
		ID:             uuid.NewString(),
		Title:          in.Title,
		Platform:       in.Platform,
		Genre:          in.Genre,
		Status:         in.Status,
		Rating:         in.Rating,
		Playtime:       in.Playtime,
		Developer:      in.Developer,
		ReleaseDate:    in.ReleaseDate,
		StartDate:      in.StartDate,
		CompletionDate: in.CompletionDate,
		Cover:          in.Cover,
		Progress:       in.Progress,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, game); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"game_id": game.ID,
		"title":   game.Title,
	}).Info("Game created")

	invalidateCache(ctx, s.cache, s.log, statsCacheKey)
	return game, nil
}

func (s *GameService) Get(ctx context.Context, id string) (*models.Game, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies the non-nil fields of the partial payload and re-reads the
// record, so the response reflects persisted state.
func (s *GameService) Update(ctx context.Context, id string, in models.UpdateGameInput) (*models.Game, error) {
	fields := in.Fields()
	if len(fields) == 0 {
		return nil, models.ErrEmptyUpdate
	}

	if err := s.repo.Update(ctx, id, fields, time.Now().UTC()); err != nil {
		return nil, err
	}

	invalidateCache(ctx, s.cache, s.log, statsCacheKey)
	return s.repo.GetByID(ctx, id)
}

func (s *GameService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.WithField("game_id", id).Info("Game deleted")

	invalidateCache(ctx, s.cache, s.log, statsCacheKey)
	return nil
}
