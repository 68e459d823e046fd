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

// BacklogService implements the backlog collection operations, including the
// move to the games library.
type BacklogService struct {
	repo  repository.BacklogRepository
	cache *redis.Client
	log   *logrus.Logger
}

func NewBacklogService(repo repository.BacklogRepository, cache *redis.Client, log *logrus.Logger) *BacklogService {
	return &BacklogService{repo: repo, cache: cache, log: log}
}

func (s *BacklogService) List(ctx context.Context, filter repository.BacklogFilter) ([]models.BacklogItem, error) {
	return s.repo.List(ctx, filter)
}

func (s *BacklogService) Create(ctx context.Context, in models.CreateBacklogInput) (*models.BacklogItem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &models.BacklogItem{
		ID:                uuid.NewString(),
		Title:             in.Title,
		Platform:          in.Platform,
		Genre:             in.Genre,
		Category:          in.Category,
		Priority:          in.Priority,
		Developer:         in.Developer,
		ReleaseDate:       in.ReleaseDate,
		Cover:             in.Cover,
		EstimatedPlaytime: in.EstimatedPlaytime,
		CurrentPrice:      in.CurrentPrice,
		WishlistPrice:     in.WishlistPrice,
		Notes:             in.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"backlog_id": item.ID,
		"title":      item.Title,
	}).Info("Backlog item created")

	invalidateCache(ctx, s.cache, s.log, statsCacheKey)
	return item, nil
}

func (s *BacklogService) Get(ctx context.Context, id string) (*models.BacklogItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BacklogService) Update(ctx context.Context, id string, in models.UpdateBacklogInput) (*models.BacklogItem, error) {
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

func (s *BacklogService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.WithField("backlog_id", id).Info("Backlog item deleted")

	invalidateCache(ctx, s.cache, s.log, statsCacheKey)
	return nil
}

// MoveToLibrary turns a backlog item into a library game. Title, platform,
// genre, developer, releaseDate and cover come from the source item; status,
// rating, playtime, progress and the date fields come from the override
// request. Notes fall back to the source item's notes when the override
// leaves them nil. The new game gets a fresh id and fresh timestamps, and the
// source item is removed in the same transaction as the insert.
func (s *BacklogService) MoveToLibrary(ctx context.Context, id string, req models.MoveToLibraryRequest) (*models.Game, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	notes := req.Notes
	if notes == nil {
		notes = item.Notes
	}

	now := time.Now().UTC()
	game := &models.Game{
		ID:             uuid.NewString(),
		Title:          item.Title,
		Platform:       item.Platform,
		Genre:          item.Genre,
		Status:         req.Status,
		Rating:         req.Rating,
		Playtime:       req.Playtime,
		Developer:      item.Developer,
		ReleaseDate:    item.ReleaseDate,
		StartDate:      req.StartDate,
		CompletionDate: req.CompletionDate,
		Cover:          item.Cover,
		Progress:       req.Progress,
		Notes:          notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.MoveToLibrary(ctx, game, id); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"backlog_id": id,
		"game_id":    game.ID,
		"title":      game.Title,
	}).Info("Backlog item moved to library")

	invalidateCache(ctx, s.cache, s.log, statsCacheKey)
	return game, nil
}
