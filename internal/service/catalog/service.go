// Package catalog implements item listings: search, detail, create, edit
// and delete.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/config"
	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/media"
	"github.com/bhagyarekha373/Reuse-Hub/internal/session"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type itemRepo interface {
	List(ctx context.Context, f domain.ItemFilter) ([]domain.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*domain.ItemDetail, error)
	Create(ctx context.Context, it *domain.Item) (*domain.Item, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, ch domain.ItemChanges) (*domain.Item, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) (int64, error)
}

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
}

type profileRepo interface {
	SetPhone(ctx context.Context, id uuid.UUID, phone string) error
}

type imageUploader interface {
	UploadFor(ctx context.Context, ownerID uuid.UUID, f media.File) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type changeRecorder interface {
	ItemChanged(op string)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the item catalog.
type Service struct {
	log        *slog.Logger
	items      itemRepo
	categories categoryRepo
	profiles   profileRepo
	images     imageUploader
	tx         txManager
	sessions   session.Source
	metrics    changeRecorder
	cfg        config.MarketConfig
}

// NewService creates a catalog service.
func NewService(
	logger *slog.Logger,
	items itemRepo,
	categories categoryRepo,
	profiles profileRepo,
	images imageUploader,
	tx txManager,
	sessions session.Source,
	metrics changeRecorder,
	cfg config.MarketConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "catalog"),
		items:      items,
		categories: categories,
		profiles:   profiles,
		images:     images,
		tx:         tx,
		sessions:   sessions,
		metrics:    metrics,
		cfg:        cfg,
	}
}

// Viewer returns the caller identity, or nil for anonymous callers. The
// transport uses it to compute per-item actions.
func (s *Service) Viewer(ctx context.Context) *domain.Identity {
	return s.sessions.Identity(ctx)
}
