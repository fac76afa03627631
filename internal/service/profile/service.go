// Package profile serves the owner's profile and the public seller page.
package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/sanitize"
	"github.com/bhagyarekha373/Reuse-Hub/internal/session"
)

type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, id uuid.UUID, ch domain.ProfileChanges) (*domain.Profile, error)
}

type listingSource interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Item, error)
}

// Service implements profile operations.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	listings listingSource
	sessions session.Source
}

// NewService creates a profile service.
func NewService(logger *slog.Logger, profiles profileRepo, listings listingSource, sessions session.Source) *Service {
	return &Service{
		log:      logger.With("service", "profile"),
		profiles: profiles,
		listings: listings,
		sessions: sessions,
	}
}

// PublicProfile is a seller page: the profile without contact details and
// every listing of its owner.
type PublicProfile struct {
	Profile domain.Profile
	Items   []domain.Item
}

// Me returns the caller's own profile.
func (s *Service) Me(ctx context.Context) (*domain.Profile, error) {
	id, err := session.Require(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	p, err := s.profiles.GetByID(ctx, id.ID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// Update replaces the caller's editable profile fields.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*domain.Profile, error) {
	id, err := session.Require(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ch := domain.ProfileChanges{
		Username:  strings.TrimSpace(in.Username),
		FullName:  domain.TrimPtr(in.FullName),
		Phone:     domain.TrimPtr(in.Phone),
		Location:  domain.TrimPtr(in.Location),
		Bio:       domain.TrimPtr(in.Bio),
		AvatarURL: domain.TrimPtr(in.AvatarURL),
	}
	if ch.Bio != nil {
		bio := sanitize.Text(*ch.Bio)
		ch.Bio = domain.TrimPtr(&bio)
	}

	p, err := s.profiles.Update(ctx, id.ID, ch)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", id.ID.String()))
	return p, nil
}

// Public returns the seller page of id. Anonymous callers are allowed.
func (s *Service) Public(ctx context.Context, id uuid.UUID) (*PublicProfile, error) {
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	items, err := s.listings.ListByOwner(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list profile items: %w", err)
	}

	out := &PublicProfile{Profile: *p, Items: items}
	out.Profile.Phone = nil
	return out, nil
}
