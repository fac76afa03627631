// Package comment implements the append-only item comment log.
package comment

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres"
	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new comment repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Create appends a comment. A missing item yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	var out domain.Comment
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &out, `
WITH ins AS (
    INSERT INTO comments (id, item_id, user_id, content, created_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, item_id, user_id, content, created_at
)
SELECT ins.id, ins.item_id, ins.user_id AS author_id, p.username AS author_username,
       ins.content, ins.created_at
FROM ins
JOIN profiles p ON p.id = ins.user_id`,
		c.ID, c.ItemID, c.AuthorID, c.Content, c.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "comment", c.ItemID)
	}
	return &out, nil
}

// ListByItem returns the comments of an item, oldest first.
func (r *Repo) ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.Comment, error) {
	var out []domain.Comment
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &out, `
SELECT c.id, c.item_id, c.user_id AS author_id, p.username AS author_username,
       c.content, c.created_at
FROM comments c
JOIN profiles p ON p.id = c.user_id
WHERE c.item_id = $1
ORDER BY c.created_at, c.id`, itemID)
	if err != nil {
		return nil, postgres.MapError(err, "comment", itemID)
	}
	if out == nil {
		out = []domain.Comment{}
	}
	return out, nil
}
