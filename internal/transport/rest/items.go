package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/catalog"
)

type catalogService interface {
	List(ctx context.Context, in catalog.ListInput) (*domain.ItemPage, error)
	Featured(ctx context.Context) ([]domain.Item, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.ItemDetail, error)
	Create(ctx context.Context, in catalog.ItemInput) (*domain.Item, error)
	Update(ctx context.Context, id uuid.UUID, in catalog.ItemInput) (*domain.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Viewer(ctx context.Context) *domain.Identity
}

// ItemHandler serves item listings.
type ItemHandler struct {
	svc       catalogService
	log       *slog.Logger
	currency  string
	maxUpload int64
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(svc catalogService, logger *slog.Logger, currency string, maxUpload int64) *ItemHandler {
	return &ItemHandler{
		svc:       svc,
		log:       logger.With("handler", "items"),
		currency:  currency,
		maxUpload: maxUpload,
	}
}

func (h *ItemHandler) presenter(r *http.Request) presenter {
	return presenter{currency: h.currency, viewer: h.svc.Viewer(r.Context())}
}

// List handles GET /items?category=&q=&status=&limit=&cursor=. When more
// items follow, the next page's cursor is sent in X-Next-Cursor and a Link
// header; the body stays a plain array.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var in catalog.ListInput

	if raw := q.Get("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(w, "invalid category")
			return
		}
		in.CategoryID = &id
	}
	if raw := q.Get("q"); raw != "" {
		in.Search = &raw
	}
	if raw := strings.TrimSpace(q.Get("status")); raw != "" {
		status := domain.ItemStatus(raw)
		in.Status = &status
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(w, "invalid limit")
			return
		}
		in.Limit = limit
	}
	if raw := q.Get("cursor"); raw != "" {
		cursor, err := domain.ParseItemCursor(raw)
		if err != nil {
			badRequest(w, "invalid cursor")
			return
		}
		in.After = &cursor
	}

	page, err := h.svc.List(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if page.Next != nil {
		token := page.Next.Encode()
		next := *r.URL
		params := next.Query()
		params.Set("cursor", token)
		next.RawQuery = params.Encode()
		w.Header().Set(HeaderNextCursor, token)
		w.Header().Set("Link", "<"+next.RequestURI()+`>; rel="next"`)
	}
	writeJSON(w, http.StatusOK, h.presenter(r).items(page.Items))
}

// Featured handles GET /items/featured.
func (h *ItemHandler) Featured(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Featured(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.presenter(r).items(items))
}

// Get handles GET /items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	detail, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.presenter(r).itemDetail(detail))
}

// Create handles POST /items (multipart).
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, done, ok := h.readForm(w, r)
	if !ok {
		return
	}
	defer done()

	item, err := h.svc.Create(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.presenter(r).item(item))
}

// Update handles PUT /items/{id} (multipart).
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	in, done, ok := h.readForm(w, r)
	if !ok {
		return
	}
	defer done()

	item, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.presenter(r).item(item))
}

// Delete handles DELETE /items/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ItemHandler) readForm(w http.ResponseWriter, r *http.Request) (catalog.ItemInput, func(), bool) {
	if !readMultipart(h.log, w, r, h.maxUpload) {
		return catalog.ItemInput{}, nil, false
	}

	in, err := itemForm(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return in, nil, false
	}

	image, done, err := formImage(r)
	if err != nil {
		badRequest(w, "invalid image upload")
		return in, nil, false
	}
	in.Image = image
	return in, done, true
}
