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

// preferencesSlot is the fixed key of the singleton row. Keeping it a primary
// key makes concurrent first-reads converge on one record.
const preferencesSlot = "default"

// PreferencesRepository is the persistence adapter for the singleton
// preferences record.
type PreferencesRepository interface {
	Get(ctx context.Context) (*models.Preferences, error)
	EnsureDefault(ctx context.Context, prefs *models.Preferences) error
	Update(ctx context.Context, fields map[string]any, updatedAt time.Time) error
}

type preferencesRepository struct {
	db *pgxpool.Pool
}

func NewPreferencesRepository(db *pgxpool.Pool) PreferencesRepository {
	return &preferencesRepository{db: db}
}

func (r *preferencesRepository) Get(ctx context.Context) (*models.Preferences, error) {
	query := "SELECT id, language, created_at, updated_at FROM preferences WHERE slot = $1"

	var p models.Preferences
	err := r.db.QueryRow(ctx, query, preferencesSlot).
		Scan(&p.ID, &p.Language, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return &p, nil
}

// EnsureDefault inserts the given record unless the singleton row already
// exists. Losing the conflict is not an error; the caller re-reads the winner.
func (r *preferencesRepository) EnsureDefault(ctx context.Context, prefs *models.Preferences) error {
	query := `
		INSERT INTO preferences (slot, id, language, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slot) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, preferencesSlot, prefs.ID, prefs.Language, prefs.CreatedAt, prefs.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create default preferences: %w", err)
	}
	return nil
}

func (r *preferencesRepository) Update(ctx context.Context, fields map[string]any, updatedAt time.Time) error {
	query, args := buildUpdate("preferences", fields, updatedAt, "slot", preferencesSlot)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
