// Package authmethod implements the AuthMethod repository using PostgreSQL.
package authmethod

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres"
	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

const authMethodColumns = `id, user_id, method, password_hash, created_at, updated_at`

// Repo provides auth method persistence.
type Repo struct {
	q postgres.Querier
}

// New creates a new auth method repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// GetByUserAndMethod returns the auth method of the given type for a user.
func (r *Repo) GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error) {
	var am domain.AuthMethod
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &am,
		`SELECT `+authMethodColumns+` FROM auth_methods WHERE user_id = $1 AND method = $2`,
		userID, string(method),
	)
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", userID)
	}
	return &am, nil
}

// Create inserts an auth method. A second method of the same type for the
// same user yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, am *domain.AuthMethod) (*domain.AuthMethod, error) {
	var out domain.AuthMethod
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &out,
		`INSERT INTO auth_methods (user_id, method, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING `+authMethodColumns,
		am.UserID, string(am.Method), am.PasswordHash,
	)
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", am.UserID)
	}
	return &out, nil
}
