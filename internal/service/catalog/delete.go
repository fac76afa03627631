package catalog

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

// Delete removes an item owned by the caller. Deleting an item that no
// longer exists succeeds.
func (s *Service) Delete(ctx context.Context, itemID uuid.UUID) error {
	id, err := session.Require(ctx, s.sessions)
	if err != nil {
		return err
	}

	current, err := s.items.GetByID(ctx, itemID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}
	if !authz.CanDelete(id, current) {
		return domain.ErrForbidden
	}

	n, err := s.items.Delete(ctx, itemID, id.ID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	if n > 0 {
		s.metrics.ItemChanged("deleted")
		s.log.InfoContext(ctx, "item deleted",
			slog.String("user_id", id.ID.String()),
			slog.String("item_id", itemID.String()),
		)
	}
	return nil
}
