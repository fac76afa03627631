package ordering

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/authz"
	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/session"
)

// PlaceOrder records the caller's request to buy itemID. The order starts
// pending and the item status is left unchanged.
func (s *Service) PlaceOrder(ctx context.Context, itemID uuid.UUID, buyer domain.BuyerFields) (*domain.Order, error) {
	id, err := session.Require(ctx, s.sessions)
	if err != nil {
		return nil, err
	}

	if err := ValidateBuyer(buyer); err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if err := authz.BuyDenial(id, item); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order, err := s.orders.Create(ctx, &domain.Order{
		ID:        uuid.New(),
		ItemID:    item.ID,
		BuyerID:   id.ID,
		SellerID:  item.OwnerID,
		Status:    domain.OrderPending,
		Buyer:     normalizeBuyer(buyer),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.metrics.OrderPlaced()
	s.log.InfoContext(ctx, "order placed",
		slog.String("order_id", order.ID.String()),
		slog.String("item_id", item.ID.String()),
		slog.String("buyer_id", id.ID.String()),
		slog.String("seller_id", item.OwnerID.String()),
	)

	return order, nil
}
