// Package authz decides what an identity may do with an item or an order.
// Every function is pure: no I/O, no clock, no shared state. A nil
// identity is an anonymous caller.
package authz

import (
	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

// Action is a user-visible operation on a resource.
type Action string

const (
	ActionEdit     Action = "edit"
	ActionDelete   Action = "delete"
	ActionBuy      Action = "buy"
	ActionConfirm  Action = "confirm"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
	ActionReview   Action = "review"
)

func (a Action) String() string { return string(a) }

// advanceActions maps an order target status to the action that reaches it.
var advanceActions = map[domain.OrderStatus]Action{
	domain.OrderConfirmed: ActionConfirm,
	domain.OrderCancelled: ActionCancel,
	domain.OrderCompleted: ActionComplete,
}

// ActionFor returns the action that moves an order to target.
func ActionFor(target domain.OrderStatus) (Action, bool) {
	a, ok := advanceActions[target]
	return a, ok
}

// CanEdit reports whether id owns item.
func CanEdit(id *domain.Identity, item *domain.Item) bool {
	return item != nil && id.Is(item.OwnerID)
}

// CanDelete follows the same ownership rule as CanEdit.
func CanDelete(id *domain.Identity, item *domain.Item) bool {
	return CanEdit(id, item)
}

// CanBuy reports whether id may place an order on item.
func CanBuy(id *domain.Identity, item *domain.Item) bool {
	return BuyDenial(id, item) == nil
}

// BuyDenial explains why id may not buy item, or returns nil.
// Owners may not buy their own listings.
func BuyDenial(id *domain.Identity, item *domain.Item) error {
	switch {
	case id == nil:
		return domain.ErrUnauthenticated
	case item == nil:
		return domain.ErrNotFound
	case id.Is(item.OwnerID):
		return domain.ErrForbidden
	case item.Status != domain.ItemAvailable:
		return domain.ErrConflict
	}
	return nil
}

// CanView reports whether id takes part in order.
func CanView(id *domain.Identity, order *domain.Order) bool {
	return order != nil && (id.Is(order.BuyerID) || id.Is(order.SellerID))
}

// CanAdvance reports whether id may move order to target. Only the seller
// advances orders, and only along the state machine.
func CanAdvance(id *domain.Identity, order *domain.Order, target domain.OrderStatus) bool {
	return order != nil && id.Is(order.SellerID) && domain.CanTransition(order.Status, target)
}

// CanReview reports whether id may review a completed purchase.
func CanReview(id *domain.Identity, order *domain.Order) bool {
	return order != nil && id.Is(order.BuyerID) && order.Status == domain.OrderCompleted
}

// ItemActions lists everything id may do with item.
func ItemActions(id *domain.Identity, item *domain.Item) []Action {
	actions := []Action{}
	if CanEdit(id, item) {
		actions = append(actions, ActionEdit)
	}
	if CanDelete(id, item) {
		actions = append(actions, ActionDelete)
	}
	if CanBuy(id, item) {
		actions = append(actions, ActionBuy)
	}
	return actions
}

// OrderActions lists everything id may do with order.
func OrderActions(id *domain.Identity, order *domain.Order) []Action {
	actions := []Action{}
	if order == nil {
		return actions
	}
	for _, next := range domain.NextStatuses(order.Status) {
		if CanAdvance(id, order, next) {
			actions = append(actions, advanceActions[next])
		}
	}
	if CanReview(id, order) {
		actions = append(actions, ActionReview)
	}
	return actions
}
