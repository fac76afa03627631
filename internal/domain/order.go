package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the state of an order. Completed and cancelled are terminal.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// orderTransitions lists every edge of the order state machine. All edges
// are taken by the seller.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderCompleted},
}

// CanTransition reports whether from -> to is an edge of the state machine.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from s in one step.
func NextStatuses(s OrderStatus) []OrderStatus {
	return append([]OrderStatus(nil), orderTransitions[s]...)
}

// BuyerFields are the contact details a buyer submits with an order.
type BuyerFields struct {
	Name    string
	Address string
	Contact string
	Message *string
}

// Order is a buyer's request to acquire an item. SellerID is copied from
// the item owner when the order is placed and never re-derived.
type Order struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	BuyerID   uuid.UUID
	SellerID  uuid.UUID
	Status    OrderStatus
	Buyer     BuyerFields
	ItemTitle string
	CreatedAt time.Time
	UpdatedAt time.Time
}
