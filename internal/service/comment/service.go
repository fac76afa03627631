// Package comment manages the append-only comment log of items.
package comment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/sanitize"
	"github.com/bhagyarekha373/Reuse-Hub/internal/session"
)

const maxContentLen = 1000

// Validation messages shown to users.
const (
	MsgContentRequired = "Comment cannot be empty"
	MsgContentTooLong  = "Comment must be less than 1000 characters"
)

type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.Comment, error)
}

// Service implements comment operations.
type Service struct {
	log      *slog.Logger
	comments commentRepo
	sessions session.Source
}

// NewService creates a comment service.
func NewService(logger *slog.Logger, comments commentRepo, sessions session.Source) *Service {
	return &Service{
		log:      logger.With("service", "comment"),
		comments: comments,
		sessions: sessions,
	}
}

// ValidateContent reports the first violated content rule.
func ValidateContent(content string) error {
	content = strings.TrimSpace(content)
	c := &domain.Check{}
	c.Rule(content != "", "content", MsgContentRequired).
		Rule(domain.Len(content) <= maxContentLen, "content", MsgContentTooLong)
	return c.Err()
}

// Add appends a comment by the caller to itemID.
func (s *Service) Add(ctx context.Context, itemID uuid.UUID, content string) (*domain.Comment, error) {
	id, err := session.Require(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	if err := ValidateContent(content); err != nil {
		return nil, err
	}

	clean := strings.TrimSpace(sanitize.Text(content))
	if clean == "" {
		return nil, domain.NewValidationError("content", MsgContentRequired)
	}

	c, err := s.comments.Create(ctx, &domain.Comment{
		ItemID:   itemID,
		AuthorID: id.ID,
		Content:  clean,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("item_id", itemID.String()),
		slog.String("author_id", id.ID.String()),
	)
	return c, nil
}

// List returns the comments of itemID, oldest first.
func (s *Service) List(ctx context.Context, itemID uuid.UUID) ([]domain.Comment, error) {
	comments, err := s.comments.ListByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
