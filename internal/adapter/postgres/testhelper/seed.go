package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user together with its profile. The username is unique
// per call.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Email, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO profiles (id, username, created_at, updated_at) VALUES ($1, $2, $3, $3)`,
		user.ID, "user_"+suffix, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert profile: %v", err)
	}

	return user
}

// SeedCategory inserts a category with a unique name derived from base.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, base, icon string) domain.Category {
	t.Helper()

	c := domain.Category{ID: uuid.New(), Name: base + " " + uniqueSuffix(), IconKey: icon}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, name, icon) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.IconKey,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}
	return c
}

// ItemOption customizes SeedItem.
type ItemOption func(*domain.Item)

// WithPrice sets the item price.
func WithPrice(p string) ItemOption {
	return func(i *domain.Item) { i.Price = decimal.RequireFromString(p) }
}

// WithCategory sets the item category.
func WithCategory(id uuid.UUID) ItemOption {
	return func(i *domain.Item) { i.CategoryID = &id }
}

// WithStatus sets the item status.
func WithStatus(s domain.ItemStatus) ItemOption {
	return func(i *domain.Item) { i.Status = s }
}

// WithCreatedAt sets the creation timestamp.
func WithCreatedAt(at time.Time) ItemOption {
	return func(i *domain.Item) { i.CreatedAt = at.UTC().Truncate(time.Microsecond) }
}

// SeedItem inserts an available item owned by ownerID.
func SeedItem(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, title, description string, opts ...ItemOption) domain.Item {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.Item{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Price:       decimal.RequireFromString("100"),
		Location:    "Pune",
		Status:      domain.ItemAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(&item)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO items (id, user_id, title, description, price, location, category_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9, $10)`,
		item.ID, item.OwnerID, item.Title, item.Description, item.Price.String(), item.Location,
		item.CategoryID, string(item.Status), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}
	return item
}

// SeedOrder inserts a pending order for item placed by buyerID.
func SeedOrder(t *testing.T, pool *pgxpool.Pool, item domain.Item, buyerID uuid.UUID) domain.Order {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	o := domain.Order{
		ID:       uuid.New(),
		ItemID:   item.ID,
		BuyerID:  buyerID,
		SellerID: item.OwnerID,
		Status:   domain.OrderPending,
		Buyer: domain.BuyerFields{
			Name:    "Asha Buyer",
			Address: "12 Residency Road, Bengaluru",
			Contact: "+919876543210",
		},
		ItemTitle: item.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO orders (id, item_id, buyer_id, seller_id, status, buyer_name, buyer_address, buyer_contact, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`,
		o.ID, o.ItemID, o.BuyerID, o.SellerID, string(o.Status), o.Buyer.Name, o.Buyer.Address, o.Buyer.Contact, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOrder: %v", err)
	}
	return o
}
