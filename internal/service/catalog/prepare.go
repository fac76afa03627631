package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/sanitize"
)

// fields are validated, normalised form values ready to be written.
type fields struct {
	title       string
	description string
	price       decimal.Decimal
	location    string
	categoryID  *uuid.UUID
	phone       *string
	imageURL    *string
}

// prepare runs the write pipeline shared by create and update: validation,
// sanitising, the category lookup and the image upload. Nothing is
// written to the database here.
func (s *Service) prepare(ctx context.Context, ownerID uuid.UUID, in ItemInput) (fields, error) {
	if err := in.Validate(); err != nil {
		return fields{}, err
	}

	f := fields{
		title:       strings.TrimSpace(in.Title),
		description: strings.TrimSpace(in.Description),
		price:       in.Price.Round(2),
		location:    strings.TrimSpace(in.Location),
		categoryID:  in.CategoryID,
		phone:       domain.TrimPtr(in.Phone),
	}
	if s.cfg.SanitizeMarkup {
		f.title = sanitize.Text(f.title)
		f.description = sanitize.Text(f.description)
		if f.title == "" {
			return fields{}, domain.NewValidationError("title", MsgTitleRequired)
		}
		if f.description == "" {
			return fields{}, domain.NewValidationError("description", MsgDescriptionRequired)
		}
	}

	if f.categoryID != nil {
		if _, err := s.categories.GetByID(ctx, *f.categoryID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fields{}, domain.NewValidationError("category_id", MsgCategoryNotFound)
			}
			return fields{}, fmt.Errorf("check category: %w", err)
		}
	}

	if in.Image != nil {
		url, err := s.images.UploadFor(ctx, ownerID, *in.Image)
		if err != nil {
			return fields{}, err
		}
		f.imageURL = &url
	}

	return f, nil
}

// setPhone stores the seller phone on the owner profile. Must run inside
// the item write transaction.
func (s *Service) setPhone(ctx context.Context, ownerID uuid.UUID, phone *string) error {
	if phone == nil {
		return nil
	}
	if err := s.profiles.SetPhone(ctx, ownerID, *phone); err != nil {
		return fmt.Errorf("set phone: %w", err)
	}
	return nil
}

// categoryErr turns a foreign key failure on category_id into the form
// error a user can act on.
func categoryErr(err error, categoryID *uuid.UUID) error {
	if categoryID != nil && errors.Is(err, domain.ErrNotFound) {
		return domain.NewValidationError("category_id", MsgCategoryNotFound)
	}
	return err
}

func (s *Service) logOrphanImage(ctx context.Context, f fields, err error) {
	if f.imageURL == nil {
		return
	}
	s.log.WarnContext(ctx, "item write failed after image upload",
		slog.String("image_url", *f.imageURL),
		slog.String("error", err.Error()),
	)
}
