package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

type commentService interface {
	Add(ctx context.Context, itemID uuid.UUID, content string) (*domain.Comment, error)
	List(ctx context.Context, itemID uuid.UUID) ([]domain.Comment, error)
}

// CommentHandler serves item comments.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comments")}
}

type addCommentRequest struct {
	Content string `json:"content"`
}

// List handles GET /items/{id}/comments.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	itemID, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	comments, err := h.svc.List(r.Context(), itemID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]commentResponse, len(comments))
	for i := range comments {
		out[i] = toCommentResponse(&comments[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Add handles POST /items/{id}/comments.
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	itemID, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	var req addCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Add(r.Context(), itemID, req.Content)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommentResponse(c))
}
