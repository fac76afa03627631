package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/session"
)

// SignOut revokes all refresh tokens of the caller.
func (s *Service) SignOut(ctx context.Context) error {
	id, err := session.Require(ctx, s.sessions)
	if err != nil {
		return err
	}

	if err := s.tokens.RevokeAllByUser(ctx, id.ID); err != nil {
		return fmt.Errorf("auth.SignOut: %w", err)
	}

	s.publish(domain.SessionSignedOut, id)
	s.log.InfoContext(ctx, "user signed out", slog.String("user_id", id.ID.String()))
	return nil
}

// CurrentSession returns the caller identity.
func (s *Service) CurrentSession(ctx context.Context) (*domain.Identity, error) {
	return session.Require(ctx, s.sessions)
}

// ValidateToken validates an access token and returns the user ID and email.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error) {
	userID, email, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return userID, email, nil
}

// CleanupExpiredTokens removes all expired refresh tokens from the database.
// Returns the number of tokens deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	count, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens", slog.Int("count", count))
	}

	return count, nil
}
