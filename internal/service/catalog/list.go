package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

// List returns one page of items matching in, newest first. The page's Next
// cursor is set when more items follow.
func (s *Service) List(ctx context.Context, in ListInput) (*domain.ItemPage, error) {
	if in.Status != nil && !in.Status.IsValid() {
		return nil, domain.NewValidationError("status", MsgInvalidStatus)
	}

	limit := s.clampLimit(in.Limit)
	items, err := s.items.List(ctx, domain.ItemFilter{
		CategoryID: in.CategoryID,
		Search:     domain.TrimPtr(in.Search),
		Status:     in.Status,
		OwnerID:    in.OwnerID,
		After:      in.After,
		Limit:      limit + 1,
	})
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	page := &domain.ItemPage{Items: items}
	if len(items) > limit {
		page.Items = items[:limit]
		next := domain.CursorAt(page.Items[limit-1])
		page.Next = &next
	}
	return page, nil
}

// Featured returns the newest available items for the landing page.
func (s *Service) Featured(ctx context.Context) ([]domain.Item, error) {
	status := domain.ItemAvailable
	limit := s.cfg.FeaturedLimit
	if limit <= 0 {
		limit = 8
	}

	items, err := s.items.List(ctx, domain.ItemFilter{Status: &status, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("list featured items: %w", err)
	}
	return items, nil
}

// ListByOwner returns every listing of ownerID, newest first.
func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Item, error) {
	items, err := s.items.List(ctx, domain.ItemFilter{
		OwnerID: &ownerID,
		Limit:   s.maxLimit(),
	})
	if err != nil {
		return nil, fmt.Errorf("list items by owner: %w", err)
	}
	return items, nil
}

// Get returns an item with its category name and seller contact.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.ItemDetail, error) {
	detail, err := s.items.GetDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return detail, nil
}

func (s *Service) clampLimit(limit int) int {
	if limit <= 0 {
		limit = s.cfg.DefaultPageSize
		if limit <= 0 {
			limit = 50
		}
	}
	return min(limit, s.maxLimit())
}

func (s *Service) maxLimit() int {
	if s.cfg.MaxPageSize <= 0 {
		return 200
	}
	return s.cfg.MaxPageSize
}
