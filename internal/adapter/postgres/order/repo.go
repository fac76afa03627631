// Package order implements the order ledger repository using PostgreSQL.
package order

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres"
	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

const selectOrders = `
SELECT o.id, o.item_id, o.buyer_id, o.seller_id, o.status,
       o.buyer_name, o.buyer_address, o.buyer_contact, o.buyer_message,
       i.title AS item_title, o.created_at, o.updated_at
FROM orders o
JOIN items i ON i.id = o.item_id`

type orderRow struct {
	ID           uuid.UUID `db:"id"`
	ItemID       uuid.UUID `db:"item_id"`
	BuyerID      uuid.UUID `db:"buyer_id"`
	SellerID     uuid.UUID `db:"seller_id"`
	Status       string    `db:"status"`
	BuyerName    string    `db:"buyer_name"`
	BuyerAddress string    `db:"buyer_address"`
	BuyerContact string    `db:"buyer_contact"`
	BuyerMessage *string   `db:"buyer_message"`
	ItemTitle    string    `db:"item_title"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Repo provides order persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new order repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Create inserts an order and returns it with the item title attached.
func (r *Repo) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	var row orderRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, `
WITH ins AS (
    INSERT INTO orders (id, item_id, buyer_id, seller_id, status,
                        buyer_name, buyer_address, buyer_contact, buyer_message,
                        created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
    RETURNING *
)
SELECT o.id, o.item_id, o.buyer_id, o.seller_id, o.status,
       o.buyer_name, o.buyer_address, o.buyer_contact, o.buyer_message,
       i.title AS item_title, o.created_at, o.updated_at
FROM ins o
JOIN items i ON i.id = o.item_id`,
		o.ID, o.ItemID, o.BuyerID, o.SellerID, string(o.Status),
		o.Buyer.Name, o.Buyer.Address, o.Buyer.Contact, o.Buyer.Message,
		o.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "order", o.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// GetByID returns a single order.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var row orderRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row,
		selectOrders+` WHERE o.id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "order", id)
	}
	out := row.toDomain()
	return &out, nil
}

// ListByBuyer returns orders placed by buyerID, newest first.
func (r *Repo) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]domain.Order, error) {
	return r.list(ctx, selectOrders+` WHERE o.buyer_id = $1 ORDER BY o.created_at DESC, o.id DESC`, buyerID)
}

// ListBySeller returns orders received by sellerID, newest first.
func (r *Repo) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.Order, error) {
	return r.list(ctx, selectOrders+` WHERE o.seller_id = $1 ORDER BY o.created_at DESC, o.id DESC`, sellerID)
}

func (r *Repo) list(ctx context.Context, query string, id uuid.UUID) ([]domain.Order, error) {
	var rows []orderRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, query, id); err != nil {
		return nil, postgres.MapError(err, "order", id)
	}
	out := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// UpdateStatus moves an order from one status to another. The update only
// applies while the stored status still equals from; otherwise it returns
// domain.ErrNotFound and writes nothing.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus) (*domain.Order, error) {
	var row orderRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, `
WITH upd AS (
    UPDATE orders SET status = $3, updated_at = now()
    WHERE id = $1 AND status = $2
    RETURNING *
)
SELECT o.id, o.item_id, o.buyer_id, o.seller_id, o.status,
       o.buyer_name, o.buyer_address, o.buyer_contact, o.buyer_message,
       i.title AS item_title, o.created_at, o.updated_at
FROM upd o
JOIN items i ON i.id = o.item_id`,
		id, string(from), string(to),
	)
	if err != nil {
		return nil, postgres.MapError(err, "order", id)
	}
	out := row.toDomain()
	return &out, nil
}

func (row orderRow) toDomain() domain.Order {
	return domain.Order{
		ID:       row.ID,
		ItemID:   row.ItemID,
		BuyerID:  row.BuyerID,
		SellerID: row.SellerID,
		Status:   domain.OrderStatus(row.Status),
		Buyer: domain.BuyerFields{
			Name:    row.BuyerName,
			Address: row.BuyerAddress,
			Contact: row.BuyerContact,
			Message: row.BuyerMessage,
		},
		ItemTitle: row.ItemTitle,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
