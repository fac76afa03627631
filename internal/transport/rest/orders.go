package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/ordering"
)

type orderingService interface {
	PlaceOrder(ctx context.Context, itemID uuid.UUID, buyer domain.BuyerFields) (*domain.Order, error)
	ListMine(ctx context.Context) (*ordering.Ledger, error)
	ListForBuyer(ctx context.Context) ([]domain.Order, error)
	ListForSeller(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	Advance(ctx context.Context, orderID uuid.UUID, target domain.OrderStatus) (*domain.Order, error)
	Viewer(ctx context.Context) *domain.Identity
}

// OrderHandler serves the order ledger.
type OrderHandler struct {
	svc orderingService
	log *slog.Logger
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(svc orderingService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, log: logger.With("handler", "orders")}
}

type placeOrderRequest struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Contact string  `json:"contact"`
	Message *string `json:"message"`
}

type advanceRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) presenter(r *http.Request) presenter {
	return presenter{viewer: h.svc.Viewer(r.Context())}
}

// Place handles POST /items/{id}/orders.
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	itemID, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	var req placeOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	order, err := h.svc.PlaceOrder(r.Context(), itemID, domain.BuyerFields{
		Name:    req.Name,
		Address: req.Address,
		Contact: req.Contact,
		Message: req.Message,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.presenter(r).order(order))
}

// ListMine handles GET /orders.
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ledger, err := h.svc.ListMine(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	p := h.presenter(r)
	writeJSON(w, http.StatusOK, ledgerResponse{
		Purchases: p.orders(ledger.Purchases),
		Sales:     p.orders(ledger.Sales),
	})
}

// Purchases handles GET /orders/purchases.
func (h *OrderHandler) Purchases(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListForBuyer(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.presenter(r).orders(orders))
}

// Sales handles GET /orders/sales.
func (h *OrderHandler) Sales(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListForSeller(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.presenter(r).orders(orders))
}

// Get handles GET /orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	order, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.presenter(r).order(order))
}

// Advance handles POST /orders/{id}/advance.
func (h *OrderHandler) Advance(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	var req advanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	order, err := h.svc.Advance(r.Context(), id, domain.OrderStatus(req.Status))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.presenter(r).order(order))
}
