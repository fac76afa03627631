package ordering

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/authz"
	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/session"
)

// Advance moves an order one step along the state machine. Only the seller
// may advance. The write is conditional on the status read here, so a
// concurrent advance makes this call fail with ErrInvalidTransition.
func (s *Service) Advance(ctx context.Context, orderID uuid.UUID, target domain.OrderStatus) (*domain.Order, error) {
	id, err := session.Require(ctx, s.sessions)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !id.Is(order.SellerID) {
		return nil, domain.ErrForbidden
	}
	if !authz.CanAdvance(id, order, target) {
		return nil, fmt.Errorf("%s -> %s: %w", order.Status, target, domain.ErrInvalidTransition)
	}

	updated, err := s.orders.UpdateStatus(ctx, orderID, order.Status, target)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%s -> %s: status changed concurrently: %w", order.Status, target, domain.ErrInvalidTransition)
	}
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	s.metrics.OrderTransitioned(order.Status.String(), target.String())
	s.log.InfoContext(ctx, "order advanced",
		slog.String("order_id", orderID.String()),
		slog.String("from", order.Status.String()),
		slog.String("to", target.String()),
		slog.String("seller_id", id.ID.String()),
	)

	return updated, nil
}
