package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/authz"
	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/session"
)

// Update edits an item owned by the caller. The owner may also move the
// item to any valid status.
func (s *Service) Update(ctx context.Context, itemID uuid.UUID, in ItemInput) (*domain.Item, error) {
	id, err := session.Require(ctx, s.sessions)
	if err != nil {
		return nil, err
	}

	current, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if !authz.CanEdit(id, current) {
		return nil, domain.ErrForbidden
	}

	f, err := s.prepare(ctx, id.ID, in)
	if err != nil {
		return nil, err
	}

	ch := domain.ItemChanges{
		Title:       f.title,
		Description: f.description,
		Price:       f.price,
		Location:    f.location,
		CategoryID:  f.categoryID,
		ImageURL:    current.ImageURL,
		Status:      current.Status,
	}
	if f.imageURL != nil {
		ch.ImageURL = f.imageURL
	}
	if in.Status != nil {
		ch.Status = *in.Status
	}

	var updated *domain.Item
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.setPhone(ctx, id.ID, f.phone); err != nil {
			return err
		}
		var err error
		// Ownership is checked again by the WHERE clause; a concurrent
		// mismatch writes nothing and reads as not found.
		updated, err = s.items.Update(ctx, itemID, id.ID, ch)
		return err
	})
	if err != nil {
		s.logOrphanImage(ctx, f, err)
		return nil, fmt.Errorf("update item: %w", err)
	}

	s.metrics.ItemChanged("updated")
	s.log.InfoContext(ctx, "item updated",
		slog.String("user_id", id.ID.String()),
		slog.String("item_id", itemID.String()),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}
