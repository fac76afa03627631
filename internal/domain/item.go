package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemStatus is the availability of a listing.
type ItemStatus string

const (
	ItemAvailable ItemStatus = "available"
	ItemSold      ItemStatus = "sold"
	ItemDonated   ItemStatus = "donated"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemAvailable, ItemSold, ItemDonated:
		return true
	}
	return false
}

// Price bounds of a listing.
var (
	MinPrice = decimal.Zero
	MaxPrice = decimal.NewFromInt(1_000_000)
)

// Item is a listing owned exclusively by its creator.
type Item struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Price       decimal.Decimal
	Location    string
	CategoryID  *uuid.UUID
	ImageURL    *string
	Status      ItemStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsFree reports whether the item is given away.
func (i *Item) IsFree() bool {
	return i.Price.IsZero()
}

// OwnerSummary is the public slice of the owner profile shown on an item page.
type OwnerSummary struct {
	Username  string
	FullName  *string
	Phone     *string
	AvatarURL *string
}

// ItemDetail is an item joined with its category name and owner profile.
type ItemDetail struct {
	Item
	CategoryName *string
	Owner        OwnerSummary
}

// ItemFilter narrows a listing query. All fields compose conjunctively.
type ItemFilter struct {
	CategoryID *uuid.UUID
	Search     *string
	Status     *ItemStatus
	OwnerID    *uuid.UUID
	// After keeps only items that sort after the cursor (older, or equally
	// old with a smaller id).
	After *ItemCursor
	Limit int
}

// ItemChanges carries the owner-editable fields of an item update.
type ItemChanges struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Location    string
	CategoryID  *uuid.UUID
	ImageURL    *string
	Status      ItemStatus
}
