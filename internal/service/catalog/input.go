package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/media"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 5000
	maxLocationLen    = 200
)

// Validation messages shown to users.
const (
	MsgTitleRequired       = "Title is required"
	MsgTitleTooLong        = "Title must be less than 200 characters"
	MsgDescriptionRequired = "Description is required"
	MsgDescriptionTooLong  = "Description must be less than 5000 characters"
	MsgPriceNegative       = "Price cannot be negative"
	MsgPriceTooHigh        = "Price too high"
	MsgLocationTooLong     = "Location must be less than 200 characters"
	MsgInvalidPhone        = "Invalid phone number format (e.g., +919876543210)"
	MsgCategoryNotFound    = "Category not found"
	MsgInvalidStatus       = "Invalid status"
)

// ItemInput holds the form fields for creating or editing an item.
type ItemInput struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Location    string
	CategoryID  *uuid.UUID
	Phone       *string
	// Status is honoured on update only. Nil keeps the current status.
	Status *domain.ItemStatus
	// Image is an optional new image. Nil keeps the current one.
	Image *media.File
}

// Validate checks the fields in form order and reports the first violation.
func (i ItemInput) Validate() error {
	title := strings.TrimSpace(i.Title)
	desc := strings.TrimSpace(i.Description)
	phone := domain.TrimPtr(i.Phone)

	c := &domain.Check{}
	c.Rule(title != "", "title", MsgTitleRequired).
		Rule(domain.Len(title) <= maxTitleLen, "title", MsgTitleTooLong).
		Rule(desc != "", "description", MsgDescriptionRequired).
		Rule(domain.Len(desc) <= maxDescriptionLen, "description", MsgDescriptionTooLong).
		Rule(!i.Price.LessThan(domain.MinPrice), "price", MsgPriceNegative).
		Rule(!i.Price.GreaterThan(domain.MaxPrice), "price", MsgPriceTooHigh).
		Rule(domain.Len(strings.TrimSpace(i.Location)) <= maxLocationLen, "location", MsgLocationTooLong).
		Rule(phone == nil || domain.ValidPhone(*phone), "phone", MsgInvalidPhone).
		Rule(i.Status == nil || i.Status.IsValid(), "status", MsgInvalidStatus)
	return c.Err()
}

// ListInput holds the listing filters supplied by a client.
type ListInput struct {
	CategoryID *uuid.UUID
	Search     *string
	Status     *domain.ItemStatus
	OwnerID    *uuid.UUID
	After      *domain.ItemCursor
	Limit      int
}
