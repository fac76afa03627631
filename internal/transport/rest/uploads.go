package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/media"
)

type mediaService interface {
	Upload(ctx context.Context, f media.File) (string, error)
}

// UploadHandler accepts standalone image uploads.
type UploadHandler struct {
	svc       mediaService
	log       *slog.Logger
	maxUpload int64
}

// NewUploadHandler creates an UploadHandler.
func NewUploadHandler(svc mediaService, logger *slog.Logger, maxUpload int64) *UploadHandler {
	return &UploadHandler{svc: svc, log: logger.With("handler", "uploads"), maxUpload: maxUpload}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /uploads (multipart, field "image").
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if !readMultipart(h.log, w, r, h.maxUpload) {
		return
	}

	image, done, err := formImage(r)
	if err != nil {
		badRequest(w, "invalid image upload")
		return
	}
	defer done()
	if image == nil {
		handleError(h.log, w, r, &domain.MediaError{Reason: media.MsgEmpty})
		return
	}

	url, err := h.svc.Upload(r.Context(), *image)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, uploadResponse{URL: url})
}
