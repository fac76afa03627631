package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

type categoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
}

// CategoryHandler serves the category list.
type CategoryHandler struct {
	svc categoryService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "categories")}
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=60")
	writeJSON(w, http.StatusOK, toCategoryResponses(cats))
}
