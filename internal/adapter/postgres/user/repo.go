// Package user implements the identity (users table) repository.
package user

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres"
	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

const userColumns = `id, email, created_at, updated_at`

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new user repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var u domain.User
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &u,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByEmail returns a user by email. Emails are stored lower-cased.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &u,
		`SELECT `+userColumns+` FROM users WHERE email = lower($1)`, email)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return &u, nil
}

// Create inserts a user. A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	var out domain.User
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &out,
		`INSERT INTO users (id, email, created_at, updated_at)
		 VALUES ($1, lower($2), $3, $4)
		 RETURNING `+userColumns,
		u.ID, u.Email, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return &out, nil
}
