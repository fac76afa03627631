// Package profile implements the public profile repository.
package profile

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres"
	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

const profileColumns = `id, username, full_name, phone, location, bio, avatar_url, created_at, updated_at`

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new profile repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// GetByID returns the profile of an identity.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	var p domain.Profile
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &p,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}
	return &p, nil
}

// Create inserts a profile. A taken username yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	var out domain.Profile
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &out,
		`INSERT INTO profiles (id, username, full_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4)
		 RETURNING `+profileColumns,
		p.ID, p.Username, p.FullName, p.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "profile", p.ID)
	}
	return &out, nil
}

// Update overwrites the editable fields of a profile.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, ch domain.ProfileChanges) (*domain.Profile, error) {
	query, args, err := psql.Update("profiles").
		SetMap(map[string]any{
			"username":   ch.Username,
			"full_name":  ch.FullName,
			"phone":      ch.Phone,
			"location":   ch.Location,
			"bio":        ch.Bio,
			"avatar_url": ch.AvatarURL,
			"updated_at": squirrel.Expr("now()"),
		}).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + profileColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profile update: %w", err)
	}

	var out domain.Profile
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}
	return &out, nil
}

// SetPhone stores a contact phone on an existing profile.
func (r *Repo) SetPhone(ctx context.Context, id uuid.UUID, phone string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.q).Exec(ctx,
		`UPDATE profiles SET phone = $2, updated_at = now() WHERE id = $1`, id, phone)
	if err != nil {
		return postgres.MapError(err, "profile", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
