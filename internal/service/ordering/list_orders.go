package ordering

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bhagyarekha373/Reuse-Hub/internal/authz"
	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/session"
)

// Ledger is the caller's purchases and sales side by side.
type Ledger struct {
	Purchases []domain.Order
	Sales     []domain.Order
}

// ListForBuyer returns the caller's purchases, newest first.
func (s *Service) ListForBuyer(ctx context.Context) ([]domain.Order, error) {
	id, err := session.Require(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListByBuyer(ctx, id.ID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return orders, nil
}

// ListForSeller returns orders placed on the caller's items, newest first.
func (s *Service) ListForSeller(ctx context.Context) ([]domain.Order, error) {
	id, err := session.Require(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListBySeller(ctx, id.ID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return orders, nil
}

// ListMine loads purchases and sales concurrently. Either failure fails
// the whole call.
func (s *Service) ListMine(ctx context.Context) (*Ledger, error) {
	id, err := session.Require(ctx, s.sessions)
	if err != nil {
		return nil, err
	}

	var ledger Ledger
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		orders, err := s.orders.ListByBuyer(gctx, id.ID)
		if err != nil {
			return fmt.Errorf("list purchases: %w", err)
		}
		ledger.Purchases = orders
		return nil
	})
	g.Go(func() error {
		orders, err := s.orders.ListBySeller(gctx, id.ID)
		if err != nil {
			return fmt.Errorf("list sales: %w", err)
		}
		ledger.Sales = orders
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ledger, nil
}

// Get returns an order visible to its buyer or seller. Other callers get
// domain.ErrNotFound so order ids do not leak.
func (s *Service) Get(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	id, err := session.Require(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !authz.CanView(id, order) {
		return nil, domain.ErrNotFound
	}
	return order, nil
}
