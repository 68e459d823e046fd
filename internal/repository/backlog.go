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

// BacklogRepository is the persistence adapter for the backlog collection.
type BacklogRepository interface {
	List(ctx context.Context, filter BacklogFilter) ([]models.BacklogItem, error)
	GetByID(ctx context.Context, id string) (*models.BacklogItem, error)
	Create(ctx context.Context, item *models.BacklogItem) error
	Update(ctx context.Context, id string, fields map[string]any, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)

	// MoveToLibrary inserts the game and deletes the source backlog item in
	// one transaction, so a failure between the two steps rolls back instead
	// of leaving the title in both collections.
	MoveToLibrary(ctx context.Context, game *models.Game, backlogID string) error
}

type backlogRepository struct {
	db *pgxpool.Pool
}

func NewBacklogRepository(db *pgxpool.Pool) BacklogRepository {
	return &backlogRepository{db: db}
}

const backlogColumns = "id, title, platform, genre, category, priority, developer, release_date, cover, estimated_playtime, current_price, wishlist_price, notes, created_at, updated_at"

func scanBacklogItem(row pgx.Row) (*models.BacklogItem, error) {
	var b models.BacklogItem
	err := row.Scan(
		&b.ID, &b.Title, &b.Platform, &b.Genre, &b.Category, &b.Priority,
		&b.Developer, &b.ReleaseDate, &b.Cover, &b.EstimatedPlaytime,
		&b.CurrentPrice, &b.WishlistPrice, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *backlogRepository) List(ctx context.Context, filter BacklogFilter) ([]models.BacklogItem, error) {
	where, args := filter.where()
	query := fmt.Sprintf("SELECT %s FROM backlog%s LIMIT %d", backlogColumns, where, ListLimit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list backlog: %w", err)
	}
	defer rows.Close()

	items := make([]models.BacklogItem, 0)
	for rows.Next() {
		b, err := scanBacklogItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan backlog item: %w", err)
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

func (r *backlogRepository) GetByID(ctx context.Context, id string) (*models.BacklogItem, error) {
	query := fmt.Sprintf("SELECT %s FROM backlog WHERE id = $1", backlogColumns)

	b, err := scanBacklogItem(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get backlog item: %w", err)
	}
	return b, nil
}

func (r *backlogRepository) Create(ctx context.Context, item *models.BacklogItem) error {
	query := `
		INSERT INTO backlog (` + backlogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.db.Exec(ctx, query,
		item.ID, item.Title, item.Platform, item.Genre, item.Category,
		item.Priority, item.Developer, item.ReleaseDate, item.Cover,
		item.EstimatedPlaytime, item.CurrentPrice, item.WishlistPrice,
		item.Notes, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create backlog item: %w", err)
	}
	return nil
}

func (r *backlogRepository) Update(ctx context.Context, id string, fields map[string]any, updatedAt time.Time) error {
	query, args := buildUpdate("backlog", fields, updatedAt, "id", id)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update backlog item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *backlogRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM backlog WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete backlog item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *backlogRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM backlog").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count backlog: %w", err)
	}
	return count, nil
}

func (r *backlogRepository) MoveToLibrary(ctx context.Context, game *models.Game, backlogID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin move transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, insertGameQuery, gameInsertArgs(game)...); err != nil {
		return fmt.Errorf("failed to insert moved game: %w", err)
	}

	tag, err := tx.Exec(ctx, "DELETE FROM backlog WHERE id = $1", backlogID)
	if err != nil {
		return fmt.Errorf("failed to delete moved backlog item: %w", err)
	}
	// The source vanished between the caller's read and this transaction.
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit move transaction: %w", err)
	}
	return nil
}
