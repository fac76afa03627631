// Package category implements the category reference-data repository.
package category

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres"
	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

type categoryRow struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
	Icon string    `db:"icon"`
}

// Repo reads categories.
type Repo struct {
	q postgres.Querier
}

// New creates a new category repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// List returns all categories ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	var rows []categoryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows,
		`SELECT id, name, icon FROM categories ORDER BY name`); err != nil {
		return nil, postgres.MapError(err, "category", uuid.Nil)
	}
	out := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Category{ID: row.ID, Name: row.Name, IconKey: row.Icon})
	}
	return out, nil
}

// GetByID returns a single category.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var row categoryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row,
		`SELECT id, name, icon FROM categories WHERE id = $1`, id); err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return &domain.Category{ID: row.ID, Name: row.Name, IconKey: row.Icon}, nil
}

// Create inserts a category, ignoring a name that already exists.
func (r *Repo) Create(ctx context.Context, name, icon string) error {
	_, err := postgres.QuerierFromCtx(ctx, r.q).Exec(ctx,
		`INSERT INTO categories (name, icon) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
		name, icon)
	return postgres.MapError(err, "category", uuid.Nil)
}
