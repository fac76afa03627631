// Package token implements the RefreshToken repository using PostgreSQL.
package token

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres"
	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

const tokenColumns = `id, user_id, token_hash, expires_at, created_at, revoked_at`

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new token repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &t,
		`INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
		 VALUES ($1, $2, $3)
		 RETURNING `+tokenColumns,
		userID, tokenHash, expiresAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", userID)
	}
	return &t, nil
}

// GetByHash returns an active (non-revoked, non-expired) refresh token by its hash.
// Returns domain.ErrNotFound if the token does not exist, is revoked, or is expired.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &t,
		`SELECT `+tokenColumns+`
		 FROM refresh_tokens
		 WHERE token_hash = $1 AND revoked_at IS NULL AND expires_at > now()`,
		tokenHash,
	)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return &t, nil
}

// RevokeByID sets revoked_at. Revoking an already-revoked token is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	_, err := postgres.QuerierFromCtx(ctx, r.q).Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = now() WHERE id = $1 AND revoked_at IS NULL`,
		id,
	)
	return postgres.MapError(err, "refresh_token", id)
}

// RevokeAllByUser revokes all active refresh tokens for the given user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := postgres.QuerierFromCtx(ctx, r.q).Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = now() WHERE user_id = $1 AND revoked_at IS NULL`,
		userID,
	)
	return postgres.MapError(err, "refresh_token", userID)
}

// DeleteExpired removes all expired or revoked tokens and returns how many
// rows were deleted. It runs outside any transaction.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	tag, err := r.q.Exec(ctx,
		`DELETE FROM refresh_tokens WHERE expires_at <= now() OR revoked_at IS NOT NULL`,
	)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}
