// Package ordering implements the order ledger: placing orders, the
// seller-driven state machine and the buyer and seller views.
package ordering

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/session"
)

type orderRepo interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]domain.Order, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus) (*domain.Order, error)
}

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
}

type orderRecorder interface {
	OrderPlaced()
	OrderTransitioned(from, to string)
}

// Service implements the order ledger.
type Service struct {
	log      *slog.Logger
	orders   orderRepo
	items    itemRepo
	sessions session.Source
	metrics  orderRecorder
}

// NewService creates an ordering service.
func NewService(
	logger *slog.Logger,
	orders orderRepo,
	items itemRepo,
	sessions session.Source,
	metrics orderRecorder,
) *Service {
	return &Service{
		log:      logger.With("service", "ordering"),
		orders:   orders,
		items:    items,
		sessions: sessions,
		metrics:  metrics,
	}
}

// Viewer returns the caller identity, or nil for anonymous callers.
func (s *Service) Viewer(ctx context.Context) *domain.Identity {
	return s.sessions.Identity(ctx)
}
