// Package seeder fills a marketplace database with demo categories,
// accounts and listings. Listings are created through the catalog service
// so they pass the same validation as user input.
package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/auth"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/catalog"
)

// CategoryStore creates categories. Create ignores names that already exist.
// Implemented by the postgres category repo.
type CategoryStore interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, name, icon string) error
}

// CacheInvalidator drops cached category lists after new rows are written.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Accounts signs demo sellers up or in. Each success must make the seller
// the current session identity for Listings.
type Accounts interface {
	SignUp(ctx context.Context, input auth.SignUpInput) (*auth.AuthResult, error)
	SignIn(ctx context.Context, input auth.SignInInput) (*auth.AuthResult, error)
}

// Listings creates items as the current session identity.
type Listings interface {
	Create(ctx context.Context, in catalog.ItemInput) (*domain.Item, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Item, error)
}
