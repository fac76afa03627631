// Package category serves the category reference list.
package category

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

const cacheKey = "categories:all"

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
}

type cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Service lists categories, reading through an optional cache.
type Service struct {
	log   *slog.Logger
	repo  categoryRepo
	cache cache
	ttl   time.Duration
}

// NewService creates a category service. A nil cache reads the store on
// every call.
func NewService(logger *slog.Logger, repo categoryRepo, c cache, ttl time.Duration) *Service {
	return &Service{
		log:   logger.With("service", "category"),
		repo:  repo,
		cache: c,
		ttl:   ttl,
	}
}

type cachedCategory struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Icon string    `json:"icon"`
}

// List returns all categories ordered by name. Cache failures are logged
// and fall back to the store.
func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	if s.cache != nil {
		if cats, ok := s.fromCache(ctx); ok {
			return cats, nil
		}
	}

	cats, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	if s.cache != nil {
		s.store(ctx, cats)
	}
	return cats, nil
}

// Invalidate drops the cached list.
func (s *Service) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		return fmt.Errorf("invalidate categories: %w", err)
	}
	return nil
}

func (s *Service) fromCache(ctx context.Context) ([]domain.Category, bool) {
	raw, ok, err := s.cache.Get(ctx, cacheKey)
	if err != nil {
		s.log.WarnContext(ctx, "category cache read failed", slog.String("error", err.Error()))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var cached []cachedCategory
	if err := json.Unmarshal(raw, &cached); err != nil {
		s.log.WarnContext(ctx, "category cache entry corrupt", slog.String("error", err.Error()))
		return nil, false
	}

	cats := make([]domain.Category, len(cached))
	for i, c := range cached {
		cats[i] = domain.Category{ID: c.ID, Name: c.Name, IconKey: c.Icon}
	}
	return cats, true
}

func (s *Service) store(ctx context.Context, cats []domain.Category) {
	cached := make([]cachedCategory, len(cats))
	for i, c := range cats {
		cached[i] = cachedCategory{ID: c.ID, Name: c.Name, Icon: c.IconKey}
	}
	raw, err := json.Marshal(cached)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey, raw, s.ttl); err != nil {
		s.log.WarnContext(ctx, "category cache write failed", slog.String("error", err.Error()))
	}
}
