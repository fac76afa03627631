package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bhagyarekha373/Reuse-Hub/internal/auth"
	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

// Refresh exchanges a refresh token for a new token pair. The presented
// token is revoked in the same transaction that stores its successor, so a
// token works once. Unknown, revoked and expired tokens, and tokens of
// deleted accounts, all yield ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, user, err := s.redeemable(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}

	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.tokens.RevokeByID(ctx, current.ID); err != nil {
			return fmt.Errorf("revoke: %w", err)
		}
		issued, err := s.issueTokens(ctx, user)
		if err != nil {
			return fmt.Errorf("issue: %w", err)
		}
		result = issued
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}
	return result, nil
}

// redeemable resolves a raw refresh token to its row and owner.
func (s *Service) redeemable(ctx context.Context, raw string) (*domain.RefreshToken, *domain.User, error) {
	current, err := s.tokens.GetByHash(ctx, auth.HashToken(raw))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.log.WarnContext(ctx, "refresh with revoked or unknown token")
		return nil, nil, domain.ErrUnauthorized
	case err != nil:
		return nil, nil, fmt.Errorf("auth.Refresh lookup: %w", err)
	case current.IsExpired(time.Now()):
		return nil, nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, current.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.log.WarnContext(ctx, "refresh for deleted account", slog.String("user_id", current.UserID.String()))
		return nil, nil, domain.ErrUnauthorized
	case err != nil:
		return nil, nil, fmt.Errorf("auth.Refresh account: %w", err)
	}
	return current, user, nil
}
