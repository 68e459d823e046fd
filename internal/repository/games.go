package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gametrack/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GameRepository is the persistence adapter for the games collection.
type GameRepository interface {
	List(ctx context.Context, filter GameFilter) ([]models.Game, error)
	GetByID(ctx context.Context, id string) (*models.Game, error)
	Create(ctx context.Context, game *models.Game) error
	Update(ctx context.Context, id string, fields map[string]any, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*models.LibraryStats, error)
}

type gameRepository struct {
	db *pgxpool.Pool
}

func NewGameRepository(db *pgxpool.Pool) GameRepository {
	return &gameRepository{db: db}
}

const gameColumns = "id, title, platform, genre, status, rating, playtime, developer, release_date, start_date, completion_date, cover, progress, notes, created_at, updated_at"

const insertGameQuery = `
	INSERT INTO games (` + gameColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
`

func gameInsertArgs(g *models.Game) []any {
	return []any{
		g.ID, g.Title, g.Platform, g.Genre, g.Status, g.Rating, g.Playtime,
		g.Developer, g.ReleaseDate, g.StartDate, g.CompletionDate, g.Cover,
		g.Progress, g.Notes, g.CreatedAt, g.UpdatedAt,
	}
}

func scanGame(row pgx.Row) (*models.Game, error) {
	var g models.Game
	err := row.Scan(
		&g.ID, &g.Title, &g.Platform, &g.Genre, &g.Status, &g.Rating,
		&g.Playtime, &g.Developer, &g.ReleaseDate, &g.StartDate,
		&g.CompletionDate, &g.Cover, &g.Progress, &g.Notes,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *gameRepository) List(ctx context.Context, filter GameFilter) ([]models.Game, error) {
	where, args := filter.where()
	query := fmt.Sprintf("SELECT %s FROM games%s LIMIT %d", gameColumns, where, ListLimit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, *g)
	}
	return games, rows.Err()
}

func (r *gameRepository) GetByID(ctx context.Context, id string) (*models.Game, error) {
	query := fmt.Sprintf("SELECT %s FROM games WHERE id = $1", gameColumns)

	g, err := scanGame(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return g, nil
}

func (r *gameRepository) Create(ctx context.Context, game *models.Game) error {
	if _, err := r.db.Exec(ctx, insertGameQuery, gameInsertArgs(game)...); err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

func (r *gameRepository) Update(ctx context.Context, id string, fields map[string]any, updatedAt time.Time) error {
	query, args := buildUpdate("games", fields, updatedAt, "id", id)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *gameRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM games WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Stats aggregates in the store so the numbers stay accurate past the list
// cap. AvgRating is rounded to one decimal and 0 for an empty table.
func (r *gameRepository) Stats(ctx context.Context) (*models.LibraryStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = $1),
		       COUNT(*) FILTER (WHERE status = $2),
		       COALESCE(SUM(playtime), 0),
		       COALESCE(ROUND(AVG(rating)::numeric, 1), 0)
		FROM games
	`

	var s models.LibraryStats
	err := r.db.QueryRow(ctx, query, string(models.StatusCompleted), string(models.StatusInProgress)).
		Scan(&s.TotalGames, &s.Completed, &s.InProgress, &s.TotalPlaytime, &s.AvgRating)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate game stats: %w", err)
	}
	return &s, nil
}
