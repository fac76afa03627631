package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/session"
)

// Create lists a new item owned by the caller. New items are available.
func (s *Service) Create(ctx context.Context, in ItemInput) (*domain.Item, error) {
	id, err := session.Require(ctx, s.sessions)
	if err != nil {
		return nil, err
	}

	f, err := s.prepare(ctx, id.ID, in)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &domain.Item{
		ID:          uuid.New(),
		OwnerID:     id.ID,
		Title:       f.title,
		Description: f.description,
		Price:       f.price,
		Location:    f.location,
		CategoryID:  f.categoryID,
		ImageURL:    f.imageURL,
		Status:      domain.ItemAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created *domain.Item
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.setPhone(ctx, id.ID, f.phone); err != nil {
			return err
		}
		var err error
		created, err = s.items.Create(ctx, item)
		if err != nil {
			return categoryErr(err, f.categoryID)
		}
		return nil
	})
	if err != nil {
		s.logOrphanImage(ctx, f, err)
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.metrics.ItemChanged("created")
	s.log.InfoContext(ctx, "item created",
		slog.String("user_id", id.ID.String()),
		slog.String("item_id", created.ID.String()),
		slog.String("price", created.Price.String()),
	)

	return created, nil
}
