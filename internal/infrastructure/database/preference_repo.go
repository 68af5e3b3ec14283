package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"codediffdemo/internal/domain"
	"codediffdemo/internal/ports/output"
)

var _ output.PreferenceStore = (*PreferenceRepository)(nil)

// querier is the subset of *pgxpool.Pool the repository needs.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PreferenceRepository implements output.PreferenceStore on PostgreSQL.
type PreferenceRepository struct {
	db querier
}

// NewPreferenceRepository creates a PreferenceRepository; db is usually a
// *pgxpool.Pool.
func NewPreferenceRepository(db querier) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

const (
	selectPreference = `SELECT value FROM preferences WHERE key = $1`
	upsertPreference = `INSERT INTO preferences (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	deletePreference = `DELETE FROM preferences WHERE key = $1`
)

func (r *PreferenceRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, domain.ErrEmptyKey
	}
	var value string
	err := r.db.QueryRow(ctx, selectPreference, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %q: %w", key, err)
	}
	return value, true, nil
}

func (r *PreferenceRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return domain.ErrEmptyKey
	}
	if _, err := r.db.Exec(ctx, upsertPreference, key, value); err != nil {
		return fmt.Errorf("set preference %q: %w", key, err)
	}
	return nil
}

func (r *PreferenceRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return domain.ErrEmptyKey
	}
	if _, err := r.db.Exec(ctx, deletePreference, key); err != nil {
		return fmt.Errorf("delete preference %q: %w", key, err)
	}
	return nil
}
